package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"chainstay/internal/domain"
)

func (r *Repo) CreateRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.RoomNumber, rm.Price, rm.Amenities, valStr(rm.Problems),
		rm.Extendable, rm.ViewType, rm.Capacity, rm.HotelAddress)
	return storeErr(err)
}

func scanRoom(row interface{ Scan(...any) error }) (domain.Room, error) {
	var rm domain.Room
	var problems sql.NullString
	err := row.Scan(&rm.RoomNumber, &rm.Price, &rm.Amenities, &problems,
		&rm.Extendable, &rm.ViewType, &rm.Capacity, &rm.HotelAddress)
	rm.Problems = strPtr(problems)
	return rm, err
}

func (r *Repo) ListRooms(ctx context.Context, pg domain.Page) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}

func collectRooms(rows *sql.Rows) ([]domain.Room, error) {
	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) getRoom(ctx context.Context, number int64, hotelAddress string) (domain.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx, getRoomSQL, number, hotelAddress))
	if err == sql.ErrNoRows {
		return domain.Room{}, fmt.Errorf("%w: room %d at %q", domain.ErrNotFound, number, hotelAddress)
	}
	return rm, err
}

func (r *Repo) UpdateRoom(ctx context.Context, number int64, hotelAddress string, p domain.RoomPatch) (domain.Room, error) {
	if _, err := r.getRoom(ctx, number, hotelAddress); err != nil {
		return domain.Room{}, err
	}
	sets, args := make([]string, 0, 6), make([]any, 0, 8)
	if p.Price != nil {
		sets, args = append(sets, "price = ?"), append(args, *p.Price)
	}
	if p.Amenities != nil {
		sets, args = append(sets, "amenities = ?"), append(args, *p.Amenities)
	}
	if p.Problems != nil {
		sets, args = append(sets, "problems = ?"), append(args, *p.Problems)
	}
	if p.Extendable != nil {
		sets, args = append(sets, "extendable = ?"), append(args, *p.Extendable)
	}
	if p.ViewType != nil {
		sets, args = append(sets, "view_type = ?"), append(args, *p.ViewType)
	}
	if p.Capacity != nil {
		sets, args = append(sets, "capacity = ?"), append(args, *p.Capacity)
	}
	if len(sets) > 0 {
		q := "UPDATE room SET " + strings.Join(sets, ", ") + " WHERE room_number = ? AND hotel_address = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, number, hotelAddress)...); err != nil {
			return domain.Room{}, storeErr(err)
		}
	}
	return r.getRoom(ctx, number, hotelAddress)
}

func (r *Repo) DeleteRoom(ctx context.Context, number int64, hotelAddress string) error {
	res, err := r.db.ExecContext(ctx, deleteRoomSQL, number, hotelAddress)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: room %d at %q", domain.ErrNotFound, number, hotelAddress)
	}
	return nil
}

// SearchRooms ANDs whichever criteria are set; with none it returns every
// room in natural store order.
func (r *Repo) SearchRooms(ctx context.Context, q domain.RoomSearch) ([]domain.Room, error) {
	var where []string
	var args []any

	if q.StartDate != nil && q.EndDate != nil {
		where = append(where, searchBookedClause)
		args = append(args, *q.EndDate, *q.StartDate)
	}
	if q.Capacity != nil {
		where = append(where, "r.capacity >= ?")
		args = append(args, *q.Capacity)
	}
	if q.Area != nil {
		where = append(where, "LOWER(h.address) LIKE CONCAT('%', LOWER(?), '%')")
		args = append(args, *q.Area)
	}
	if q.HotelChain != nil {
		where = append(where, "h.chain_name = ?")
		args = append(args, *q.HotelChain)
	}
	if q.HotelRating != nil {
		where = append(where, "h.rating = ?")
		args = append(args, *q.HotelRating)
	}
	if q.MinPrice != nil {
		where = append(where, "r.price >= ?")
		args = append(args, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		where = append(where, "r.price <= ?")
		args = append(args, *q.MaxPrice)
	}
	if q.ViewType != nil {
		where = append(where, "r.view_type = ?")
		args = append(args, *q.ViewType)
	}

	sqlStr := searchRoomsBaseSQL
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRooms(rows)
}
