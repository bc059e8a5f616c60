package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"chainstay/internal/domain"
)

// CreateBooking runs the availability check and the insert in one
// transaction. The room row is locked first so two concurrent requests for
// the same room serialize here; the loser sees the winner's booking and
// gets ErrConflict instead of double-booking.
func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Booking{}, err
	}
	defer tx.Rollback()

	var locked int64
	if err := tx.QueryRowContext(ctx, lockRoomSQL, b.RoomNumber).Scan(&locked); err != nil {
		if err == sql.ErrNoRows {
			return domain.Booking{}, fmt.Errorf("%w: room %d", domain.ErrNotFound, b.RoomNumber)
		}
		return domain.Booking{}, err
	}

	rows, err := tx.QueryContext(ctx, bookingsForRoomSQL, b.RoomNumber)
	if err != nil {
		return domain.Booking{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var s, e domain.Date
		if err := rows.Scan(&s, &e); err != nil {
			return domain.Booking{}, err
		}
		if domain.Overlaps(b.StartDate, b.EndDate, s, e) {
			return domain.Booking{}, fmt.Errorf("%w: room %d is already booked %s..%s",
				domain.ErrConflict, b.RoomNumber, s, e)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.Booking{}, err
	}

	res, err := tx.ExecContext(ctx, insertBookingSQL, b.StartDate, b.EndDate, b.RoomNumber, b.CustomerID)
	if err != nil {
		return domain.Booking{}, storeErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Booking{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Booking{}, err
	}
	b.BookingID = id
	return b, nil
}

func scanBooking(row interface{ Scan(...any) error }) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.BookingID, &b.StartDate, &b.EndDate, &b.RoomNumber, &b.CustomerID)
	return b, err
}

func (r *Repo) ListBookings(ctx context.Context, pg domain.Page) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, getBookingSQL, id))
	if err == sql.ErrNoRows {
		return domain.Booking{}, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return b, err
}

func (r *Repo) UpdateBooking(ctx context.Context, id int64, p domain.BookingPatch) (domain.Booking, error) {
	if _, err := r.GetBooking(ctx, id); err != nil {
		return domain.Booking{}, err
	}
	sets, args := make([]string, 0, 4), make([]any, 0, 5)
	if p.StartDate != nil {
		sets, args = append(sets, "start_date = ?"), append(args, *p.StartDate)
	}
	if p.EndDate != nil {
		sets, args = append(sets, "end_date = ?"), append(args, *p.EndDate)
	}
	if p.RoomNumber != nil {
		sets, args = append(sets, "room_number = ?"), append(args, *p.RoomNumber)
	}
	if p.CustomerID != nil {
		sets, args = append(sets, "customer_id = ?"), append(args, *p.CustomerID)
	}
	if len(sets) > 0 {
		q := "UPDATE booking SET " + strings.Join(sets, ", ") + " WHERE booking_id = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, id)...); err != nil {
			return domain.Booking{}, storeErr(err)
		}
	}
	return r.GetBooking(ctx, id)
}

func (r *Repo) DeleteBooking(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteBookingSQL, id)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return nil
}

// ConvertBooking turns a reserved booking into an occupied renting. The
// booking's dates, room and customer are copied verbatim; only the payment
// information and the handling employee are new. The source booking stays.
func (r *Repo) ConvertBooking(ctx context.Context, bookingID int64, paymentInfo, employeeSSN string) (domain.Renting, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Renting{}, err
	}
	defer tx.Rollback()

	b, err := scanBooking(tx.QueryRowContext(ctx, getBookingForUpdateSQL, bookingID))
	if err == sql.ErrNoRows {
		return domain.Renting{}, fmt.Errorf("%w: booking %d", domain.ErrNotFound, bookingID)
	}
	if err != nil {
		return domain.Renting{}, err
	}

	var ssn string
	if err := tx.QueryRowContext(ctx, getEmployeeSQL, employeeSSN).Scan(&ssn, new(string), new(string), new(string), new(sql.NullString)); err != nil {
		if err == sql.ErrNoRows {
			return domain.Renting{}, fmt.Errorf("%w: employee %s", domain.ErrNotFound, employeeSSN)
		}
		return domain.Renting{}, err
	}

	rent := domain.Renting{
		PaymentInformation: paymentInfo,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		EmployeeID:         &ssn,
		CustomerID:         b.CustomerID,
		RoomNumber:         b.RoomNumber,
		BookingID:          &bookingID,
	}
	res, err := tx.ExecContext(ctx, insertRentingSQL,
		rent.PaymentInformation, rent.StartDate, rent.EndDate,
		ssn, rent.CustomerID, rent.RoomNumber, bookingID)
	if err != nil {
		e := storeErr(err)
		// the unique key on booking_id makes a second conversion a dup
		if errors.Is(e, domain.ErrConflict) {
			e = fmt.Errorf("%w: booking %d already converted", domain.ErrConflict, bookingID)
		}
		return domain.Renting{}, e
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Renting{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Renting{}, err
	}
	rent.RentingID = id
	return rent, nil
}

// CreateRenting is the walk-in path: no availability check is made against
// other rentings or bookings for the room.
func (r *Repo) CreateRenting(ctx context.Context, rent domain.Renting) (domain.Renting, error) {
	res, err := r.db.ExecContext(ctx, insertRentingSQL,
		rent.PaymentInformation, rent.StartDate, rent.EndDate,
		valStr(rent.EmployeeID), rent.CustomerID, rent.RoomNumber, valInt64(rent.BookingID))
	if err != nil {
		return domain.Renting{}, storeErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Renting{}, err
	}
	rent.RentingID = id
	return rent, nil
}

func scanRenting(row interface{ Scan(...any) error }) (domain.Renting, error) {
	var rent domain.Renting
	var emp sql.NullString
	var booking sql.NullInt64
	err := row.Scan(&rent.RentingID, &rent.PaymentInformation, &rent.StartDate, &rent.EndDate,
		&emp, &rent.CustomerID, &rent.RoomNumber, &booking)
	rent.EmployeeID = strPtr(emp)
	rent.BookingID = int64Ptr(booking)
	return rent, err
}

func (r *Repo) ListRentings(ctx context.Context, pg domain.Page) ([]domain.Renting, error) {
	rows, err := r.db.QueryContext(ctx, listRentingsSQL, pg.Limit, pg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Renting
	for rows.Next() {
		rent, err := scanRenting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, rows.Err()
}

func (r *Repo) getRenting(ctx context.Context, id int64) (domain.Renting, error) {
	rent, err := scanRenting(r.db.QueryRowContext(ctx, getRentingSQL, id))
	if err == sql.ErrNoRows {
		return domain.Renting{}, fmt.Errorf("%w: renting %d", domain.ErrNotFound, id)
	}
	return rent, err
}

func (r *Repo) UpdateRenting(ctx context.Context, id int64, p domain.RentingPatch) (domain.Renting, error) {
	if _, err := r.getRenting(ctx, id); err != nil {
		return domain.Renting{}, err
	}
	sets, args := make([]string, 0, 7), make([]any, 0, 8)
	if p.PaymentInformation != nil {
		sets, args = append(sets, "payment_information = ?"), append(args, *p.PaymentInformation)
	}
	if p.StartDate != nil {
		sets, args = append(sets, "start_date = ?"), append(args, *p.StartDate)
	}
	if p.EndDate != nil {
		sets, args = append(sets, "end_date = ?"), append(args, *p.EndDate)
	}
	if p.EmployeeID != nil {
		sets, args = append(sets, "employee_id = ?"), append(args, *p.EmployeeID)
	}
	if p.CustomerID != nil {
		sets, args = append(sets, "customer_id = ?"), append(args, *p.CustomerID)
	}
	if p.RoomNumber != nil {
		sets, args = append(sets, "room_number = ?"), append(args, *p.RoomNumber)
	}
	if p.BookingID != nil {
		sets, args = append(sets, "booking_id = ?"), append(args, *p.BookingID)
	}
	if len(sets) > 0 {
		q := "UPDATE renting SET " + strings.Join(sets, ", ") + " WHERE renting_id = ?"
		if _, err := r.db.ExecContext(ctx, q, append(args, id)...); err != nil {
			return domain.Renting{}, storeErr(err)
		}
	}
	return r.getRenting(ctx, id)
}

func (r *Repo) DeleteRenting(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteRentingSQL, id)
	if err != nil {
		return storeErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: renting %d", domain.ErrNotFound, id)
	}
	return nil
}
