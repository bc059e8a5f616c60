package app

import (
	"context"
	"fmt"
	"time"

	"chainstay/internal/domain"
)

// SearchStore is the read-side slice of the relational port.
type SearchStore interface {
	domain.RoomStore
	domain.ReportStore
}

// QueryService serves the room search and the two reporting views; the
// views are cached with a TTL and invalidated by the write services.
type QueryService struct {
	store    SearchStore
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s SearchStore, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

// SearchRooms applies the supplied criteria, ANDed. The date pair only
// counts when both ends are given; a lone end is rejected rather than
// silently ignored.
func (s *QueryService) SearchRooms(ctx context.Context, q domain.RoomSearch) ([]domain.Room, error) {
	if (q.StartDate == nil) != (q.EndDate == nil) {
		return nil, fmt.Errorf("%w: start_date and end_date must be supplied together", domain.ErrValidation)
	}
	if q.StartDate != nil && q.EndDate.Before(q.StartDate.Time) {
		return nil, fmt.Errorf("%w: end_date precedes start_date", domain.ErrValidation)
	}
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MaxPrice < *q.MinPrice {
		return nil, fmt.Errorf("%w: max_price below min_price", domain.ErrValidation)
	}
	return s.store.SearchRooms(ctx, q)
}

func (s *QueryService) AvailableRoomsPerArea(ctx context.Context) ([]domain.AreaAvailability, error) {
	var out []domain.AreaAvailability
	if ok, _ := s.cache.Get(ctx, viewAreasKey, &out); ok {
		return out, nil
	}
	out, err := s.store.AvailableRoomsPerArea(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, viewAreasKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}

func (s *QueryService) HotelRoomCapacity(ctx context.Context) ([]domain.HotelCapacity, error) {
	var out []domain.HotelCapacity
	if ok, _ := s.cache.Get(ctx, viewCapacityKey, &out); ok {
		return out, nil
	}
	out, err := s.store.HotelRoomCapacity(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, viewCapacityKey, out, int(s.cacheTTL.Seconds()))
	return out, nil
}
