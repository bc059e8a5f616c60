package app

import (
	"context"
	"fmt"

	"chainstay/internal/domain"
)

// DirectoryService is plain persistence for chains, hotels, rooms,
// employees and customers, with input validation up front and reporting-view
// cache invalidation after writes.
type DirectoryService struct {
	store domain.DirectoryStore
	cache domain.Cache
}

func NewDirectoryService(s domain.DirectoryStore, c domain.Cache) *DirectoryService {
	return &DirectoryService{store: s, cache: c}
}

// ---- hotel chains ----

func (s *DirectoryService) CreateChain(ctx context.Context, c domain.HotelChain) error {
	if c.ChainName == "" {
		return fmt.Errorf("%w: chain_name is required", domain.ErrValidation)
	}
	if err := s.store.CreateChain(ctx, c); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

func (s *DirectoryService) ListChains(ctx context.Context, pg domain.Page) ([]domain.HotelChain, error) {
	return s.store.ListChains(ctx, normalizePage(pg))
}

func (s *DirectoryService) UpdateChain(ctx context.Context, name string, p domain.ChainPatch) (domain.HotelChain, error) {
	out, err := s.store.UpdateChain(ctx, name, p)
	if err != nil {
		return domain.HotelChain{}, err
	}
	invalidateViews(ctx, s.cache)
	return out, nil
}

func (s *DirectoryService) DeleteChain(ctx context.Context, name string) error {
	// cascades through hotels and rooms
	if err := s.store.DeleteChain(ctx, name); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

// ---- hotels ----

func (s *DirectoryService) CreateHotel(ctx context.Context, h domain.Hotel) error {
	if h.Address == "" || h.ChainName == "" {
		return fmt.Errorf("%w: address and chain_name are required", domain.ErrValidation)
	}
	if h.ManagerID != nil && !domain.ValidSSN(*h.ManagerID) {
		return fmt.Errorf("%w: manager_id must be exactly 9 digits", domain.ErrValidation)
	}
	if err := s.store.CreateHotel(ctx, h); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

func (s *DirectoryService) ListHotels(ctx context.Context, pg domain.Page) ([]domain.Hotel, error) {
	return s.store.ListHotels(ctx, normalizePage(pg))
}

func (s *DirectoryService) UpdateHotel(ctx context.Context, address string, p domain.HotelPatch) (domain.Hotel, error) {
	if p.ManagerID != nil && !domain.ValidSSN(*p.ManagerID) {
		return domain.Hotel{}, fmt.Errorf("%w: manager_id must be exactly 9 digits", domain.ErrValidation)
	}
	out, err := s.store.UpdateHotel(ctx, address, p)
	if err != nil {
		return domain.Hotel{}, err
	}
	invalidateViews(ctx, s.cache)
	return out, nil
}

func (s *DirectoryService) DeleteHotel(ctx context.Context, address string) error {
	// rooms cascade away, employees keep their row with hotel_id nulled
	if err := s.store.DeleteHotel(ctx, address); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

// ---- rooms ----

func (s *DirectoryService) CreateRoom(ctx context.Context, r domain.Room) error {
	if r.RoomNumber <= 0 || r.HotelAddress == "" {
		return fmt.Errorf("%w: room_number and hotel_address are required", domain.ErrValidation)
	}
	if err := s.store.CreateRoom(ctx, r); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

func (s *DirectoryService) ListRooms(ctx context.Context, pg domain.Page) ([]domain.Room, error) {
	return s.store.ListRooms(ctx, normalizePage(pg))
}

func (s *DirectoryService) UpdateRoom(ctx context.Context, number int64, hotelAddress string, p domain.RoomPatch) (domain.Room, error) {
	out, err := s.store.UpdateRoom(ctx, number, hotelAddress, p)
	if err != nil {
		return domain.Room{}, err
	}
	invalidateViews(ctx, s.cache)
	return out, nil
}

func (s *DirectoryService) DeleteRoom(ctx context.Context, number int64, hotelAddress string) error {
	if err := s.store.DeleteRoom(ctx, number, hotelAddress); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}

// ---- employees ----

func (s *DirectoryService) CreateEmployee(ctx context.Context, e domain.Employee) error {
	if !domain.ValidSSN(e.SSN) {
		return fmt.Errorf("%w: ssn must be exactly 9 digits", domain.ErrValidation)
	}
	if e.HotelID != nil {
		if _, err := s.store.GetHotel(ctx, *e.HotelID); err != nil {
			return err
		}
	}
	return s.store.CreateEmployee(ctx, e)
}

func (s *DirectoryService) ListEmployees(ctx context.Context, pg domain.Page) ([]domain.Employee, error) {
	return s.store.ListEmployees(ctx, normalizePage(pg))
}

// UpdateEmployee applies a partial update. The SSN itself is immutable.
func (s *DirectoryService) UpdateEmployee(ctx context.Context, ssn string, p domain.EmployeePatch) (domain.Employee, error) {
	if p.HotelID != nil {
		if _, err := s.store.GetHotel(ctx, *p.HotelID); err != nil {
			return domain.Employee{}, err
		}
	}
	return s.store.UpdateEmployee(ctx, ssn, p)
}

func (s *DirectoryService) DeleteEmployee(ctx context.Context, ssn string) error {
	// any hotel managed by this employee and any renting they handled keep
	// their rows with the reference nulled
	return s.store.DeleteEmployee(ctx, ssn)
}

// ---- customers ----

func (s *DirectoryService) CreateCustomer(ctx context.Context, c domain.Customer) error {
	if c.CustomerID == "" {
		return fmt.Errorf("%w: customer_id is required", domain.ErrValidation)
	}
	return s.store.CreateCustomer(ctx, c)
}

func (s *DirectoryService) ListCustomers(ctx context.Context, pg domain.Page) ([]domain.Customer, error) {
	return s.store.ListCustomers(ctx, normalizePage(pg))
}

func (s *DirectoryService) UpdateCustomer(ctx context.Context, id string, p domain.CustomerPatch) (domain.Customer, error) {
	return s.store.UpdateCustomer(ctx, id, p)
}

func (s *DirectoryService) DeleteCustomer(ctx context.Context, id string) error {
	// cascades to the customer's bookings and rentings
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	invalidateViews(ctx, s.cache)
	return nil
}
