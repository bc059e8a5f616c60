package mysql

import (
	"context"

	"chainstay/internal/domain"
)

func (r *Repo) AvailableRoomsPerArea(ctx context.Context) ([]domain.AreaAvailability, error) {
	rows, err := r.db.QueryContext(ctx, availableRoomsPerAreaSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AreaAvailability
	for rows.Next() {
		var a domain.AreaAvailability
		if err := rows.Scan(&a.Area, &a.AvailableRooms); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) HotelRoomCapacity(ctx context.Context) ([]domain.HotelCapacity, error) {
	rows, err := r.db.QueryContext(ctx, hotelRoomCapacitySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HotelCapacity
	for rows.Next() {
		var c domain.HotelCapacity
		if err := rows.Scan(&c.HotelAddress, &c.HotelChain, &c.TotalRooms, &c.TotalCapacity, &c.AverageRoomCapacity); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
