package app

import (
	"context"
	"errors"
	"fmt"

	"chainstay/internal/adapters/observability"
	"chainstay/internal/domain"
)

// BookingService owns the reservation lifecycle: booking creation with the
// availability check, the booking-to-renting conversion, and walk-in
// rentings.
type BookingService struct {
	store domain.BookingStore
	cache domain.Cache
}

func NewBookingService(s domain.BookingStore, c domain.Cache) *BookingService {
	return &BookingService{store: s, cache: c}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

func validStay(start, end domain.Date) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if end.Before(start.Time) {
		return fmt.Errorf("%w: end_date precedes start_date", domain.ErrValidation)
	}
	return nil
}

func (s *BookingService) CreateBooking(ctx context.Context, b domain.Booking) (out domain.Booking, err error) {
	defer func() { observability.ObserveBooking("create", outcome(err)) }()

	if b.RoomNumber <= 0 || b.CustomerID == "" {
		return domain.Booking{}, fmt.Errorf("%w: room_number and customer_id are required", domain.ErrValidation)
	}
	if err := validStay(b.StartDate, b.EndDate); err != nil {
		return domain.Booking{}, err
	}
	out, err = s.store.CreateBooking(ctx, b)
	if err != nil {
		return domain.Booking{}, err
	}
	invalidateViews(ctx, s.cache)
	return out, nil
}

func (s *BookingService) ListBookings(ctx context.Context, pg domain.Page) ([]domain.Booking, error) {
	return s.store.ListBookings(ctx, normalizePage(pg))
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, p domain.BookingPatch) (domain.Booking, error) {
	if p.StartDate != nil && p.EndDate != nil {
		if err := validStay(*p.StartDate, *p.EndDate); err != nil {
			return domain.Booking{}, err
		}
	}
	out, err := s.store.UpdateBooking(ctx, id, p)
	if err != nil {
		return domain.Booking{}, err
	}
	invalidateViews(ctx, s.cache)
	return out, nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

// ConvertToRenting checks in a booked customer. Stay dates, room and
// customer come from the booking; the caller supplies only the payment
// information and the handling employee.
func (s *BookingService) ConvertToRenting(ctx context.Context, bookingID int64, paymentInfo, employeeSSN string) (out domain.Renting, err error) {
	defer func() { observability.ObserveBooking("convert", outcome(err)) }()

	if paymentInfo == "" {
		return domain.Renting{}, fmt.Errorf("%w: payment_info is required", domain.ErrValidation)
	}
	if !domain.ValidSSN(employeeSSN) {
		return domain.Renting{}, fmt.Errorf("%w: employee_ssn must be exactly 9 digits", domain.ErrValidation)
	}
	return s.store.ConvertBooking(ctx, bookingID, paymentInfo, employeeSSN)
}

// CreateRenting records a walk-in (no prior booking). No availability check
// is made against other rentings or bookings for the room.
func (s *BookingService) CreateRenting(ctx context.Context, r domain.Renting) (out domain.Renting, err error) {
	defer func() { observability.ObserveBooking("rent", outcome(err)) }()

	if r.RoomNumber <= 0 || r.CustomerID == "" {
		return domain.Renting{}, fmt.Errorf("%w: room_number and customer_id are required", domain.ErrValidation)
	}
	if r.PaymentInformation == "" {
		return domain.Renting{}, fmt.Errorf("%w: payment_information is required", domain.ErrValidation)
	}
	if r.EmployeeID != nil && !domain.ValidSSN(*r.EmployeeID) {
		return domain.Renting{}, fmt.Errorf("%w: employee_id must be exactly 9 digits", domain.ErrValidation)
	}
	if err := validStay(r.StartDate, r.EndDate); err != nil {
		return domain.Renting{}, err
	}
	return s.store.CreateRenting(ctx, r)
}

func (s *BookingService) ListRentings(ctx context.Context, pg domain.Page) ([]domain.Renting, error) {
	return s.store.ListRentings(ctx, normalizePage(pg))
}

func (s *BookingService) UpdateRenting(ctx context.Context, id int64, p domain.RentingPatch) (domain.Renting, error) {
	if p.EmployeeID != nil && !domain.ValidSSN(*p.EmployeeID) {
		return domain.Renting{}, fmt.Errorf("%w: employee_id must be exactly 9 digits", domain.ErrValidation)
	}
	return s.store.UpdateRenting(ctx, id, p)
}

func (s *BookingService) DeleteRenting(ctx context.Context, id int64) error {
	return s.store.DeleteRenting(ctx, id)
}
