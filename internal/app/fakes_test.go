package app_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"chainstay/internal/domain"
)

// fakeStore is an in-memory domain.Store honoring the same contract as the
// MySQL repo: overlap rejection on booking creation, field copy on
// conversion, one renting per booking.
type fakeStore struct {
	mu        sync.Mutex
	chains    map[string]domain.HotelChain
	hotels    map[string]domain.Hotel
	rooms     map[int64]domain.Room
	employees map[string]domain.Employee
	customers map[string]domain.Customer
	bookings  map[int64]domain.Booking
	rentings  map[int64]domain.Renting
	nextID    int64

	areas      []domain.AreaAvailability
	capacities []domain.HotelCapacity
	reportHits int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		chains:    map[string]domain.HotelChain{},
		hotels:    map[string]domain.Hotel{},
		rooms:     map[int64]domain.Room{},
		employees: map[string]domain.Employee{},
		customers: map[string]domain.Customer{},
		bookings:  map[int64]domain.Booking{},
		rentings:  map[int64]domain.Renting{},
	}
}

// ---- chains ----

func (f *fakeStore) CreateChain(_ context.Context, c domain.HotelChain) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chains[c.ChainName] = c
	return nil
}

func (f *fakeStore) ListChains(_ context.Context, _ domain.Page) ([]domain.HotelChain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.HotelChain
	for _, c := range f.chains {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) UpdateChain(_ context.Context, name string, p domain.ChainPatch) (domain.HotelChain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.chains[name]
	if !ok {
		return domain.HotelChain{}, fmt.Errorf("%w: hotel chain %q", domain.ErrNotFound, name)
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.NumberOfHotels != nil {
		c.NumberOfHotels = *p.NumberOfHotels
	}
	if p.ContactEmail != nil {
		c.ContactEmail = *p.ContactEmail
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	f.chains[name] = c
	return c, nil
}

func (f *fakeStore) DeleteChain(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.chains[name]; !ok {
		return fmt.Errorf("%w: hotel chain %q", domain.ErrNotFound, name)
	}
	delete(f.chains, name)
	return nil
}

// ---- hotels ----

func (f *fakeStore) CreateHotel(_ context.Context, h domain.Hotel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hotels[h.Address] = h
	return nil
}

func (f *fakeStore) ListHotels(_ context.Context, _ domain.Page) ([]domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Hotel
	for _, h := range f.hotels {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeStore) GetHotel(_ context.Context, address string) (domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[address]
	if !ok {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %q", domain.ErrNotFound, address)
	}
	return h, nil
}

func (f *fakeStore) UpdateHotel(_ context.Context, address string, p domain.HotelPatch) (domain.Hotel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hotels[address]
	if !ok {
		return domain.Hotel{}, fmt.Errorf("%w: hotel %q", domain.ErrNotFound, address)
	}
	if p.ContactEmail != nil {
		h.ContactEmail = *p.ContactEmail
	}
	if p.PhoneNumber != nil {
		h.PhoneNumber = *p.PhoneNumber
	}
	if p.NumberOfRooms != nil {
		h.NumberOfRooms = *p.NumberOfRooms
	}
	if p.Rating != nil {
		h.Rating = *p.Rating
	}
	if p.ChainName != nil {
		h.ChainName = *p.ChainName
	}
	if p.ManagerID != nil {
		h.ManagerID = p.ManagerID
	}
	f.hotels[address] = h
	return h, nil
}

func (f *fakeStore) DeleteHotel(_ context.Context, address string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.hotels[address]; !ok {
		return fmt.Errorf("%w: hotel %q", domain.ErrNotFound, address)
	}
	delete(f.hotels, address)
	return nil
}

// ---- rooms ----

func (f *fakeStore) CreateRoom(_ context.Context, r domain.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rooms[r.RoomNumber] = r
	return nil
}

func (f *fakeStore) ListRooms(_ context.Context, _ domain.Page) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.allRoomsLocked(), nil
}

func (f *fakeStore) allRoomsLocked() []domain.Room {
	out := make([]domain.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out
}

func (f *fakeStore) UpdateRoom(_ context.Context, number int64, hotelAddress string, p domain.RoomPatch) (domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[number]
	if !ok || r.HotelAddress != hotelAddress {
		return domain.Room{}, fmt.Errorf("%w: room %d", domain.ErrNotFound, number)
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Amenities != nil {
		r.Amenities = *p.Amenities
	}
	if p.Problems != nil {
		r.Problems = p.Problems
	}
	if p.Extendable != nil {
		r.Extendable = *p.Extendable
	}
	if p.ViewType != nil {
		r.ViewType = *p.ViewType
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	f.rooms[number] = r
	return r, nil
}

func (f *fakeStore) DeleteRoom(_ context.Context, number int64, hotelAddress string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[number]
	if !ok || r.HotelAddress != hotelAddress {
		return fmt.Errorf("%w: room %d", domain.ErrNotFound, number)
	}
	delete(f.rooms, number)
	return nil
}

func (f *fakeStore) SearchRooms(_ context.Context, q domain.RoomSearch) ([]domain.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Room
	for _, r := range f.allRoomsLocked() {
		h := f.hotels[r.HotelAddress]
		if q.StartDate != nil && q.EndDate != nil && f.bookedLocked(r.RoomNumber, *q.StartDate, *q.EndDate) {
			continue
		}
		if q.Capacity != nil && r.Capacity < *q.Capacity {
			continue
		}
		if q.Area != nil && !strings.Contains(strings.ToLower(h.Address), strings.ToLower(*q.Area)) {
			continue
		}
		if q.HotelChain != nil && h.ChainName != *q.HotelChain {
			continue
		}
		if q.HotelRating != nil && h.Rating != *q.HotelRating {
			continue
		}
		if q.MinPrice != nil && r.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && r.Price > *q.MaxPrice {
			continue
		}
		if q.ViewType != nil && r.ViewType != *q.ViewType {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) bookedLocked(room int64, start, end domain.Date) bool {
	for _, b := range f.bookings {
		if b.RoomNumber == room && domain.Overlaps(start, end, b.StartDate, b.EndDate) {
			return true
		}
	}
	return false
}

// ---- employees ----

func (f *fakeStore) CreateEmployee(_ context.Context, e domain.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.employees[e.SSN] = e
	return nil
}

func (f *fakeStore) ListEmployees(_ context.Context, _ domain.Page) ([]domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Employee
	for _, e := range f.employees {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeStore) GetEmployee(_ context.Context, ssn string) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[ssn]
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: employee %s", domain.ErrNotFound, ssn)
	}
	return e, nil
}

func (f *fakeStore) UpdateEmployee(_ context.Context, ssn string, p domain.EmployeePatch) (domain.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.employees[ssn]
	if !ok {
		return domain.Employee{}, fmt.Errorf("%w: employee %s", domain.ErrNotFound, ssn)
	}
	if p.FullName != nil {
		e.FullName = *p.FullName
	}
	if p.Address != nil {
		e.Address = *p.Address
	}
	if p.JobPosition != nil {
		e.JobPosition = *p.JobPosition
	}
	if p.HotelID != nil {
		e.HotelID = p.HotelID
	}
	f.employees[ssn] = e
	return e, nil
}

func (f *fakeStore) DeleteEmployee(_ context.Context, ssn string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.employees[ssn]; !ok {
		return fmt.Errorf("%w: employee %s", domain.ErrNotFound, ssn)
	}
	delete(f.employees, ssn)
	return nil
}

// ---- customers ----

func (f *fakeStore) CreateCustomer(_ context.Context, c domain.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.customers[c.CustomerID] = c
	return nil
}

func (f *fakeStore) ListCustomers(_ context.Context, _ domain.Page) ([]domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeStore) UpdateCustomer(_ context.Context, id string, p domain.CustomerPatch) (domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[id]
	if !ok {
		return domain.Customer{}, fmt.Errorf("%w: customer %q", domain.ErrNotFound, id)
	}
	if p.FullName != nil {
		c.FullName = *p.FullName
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	f.customers[id] = c
	return c, nil
}

func (f *fakeStore) DeleteCustomer(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.customers[id]; !ok {
		return fmt.Errorf("%w: customer %q", domain.ErrNotFound, id)
	}
	delete(f.customers, id)
	return nil
}

// ---- bookings / rentings ----

func (f *fakeStore) CreateBooking(_ context.Context, b domain.Booking) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rooms[b.RoomNumber]; !ok {
		return domain.Booking{}, fmt.Errorf("%w: room %d", domain.ErrNotFound, b.RoomNumber)
	}
	if f.bookedLocked(b.RoomNumber, b.StartDate, b.EndDate) {
		return domain.Booking{}, fmt.Errorf("%w: room %d is already booked", domain.ErrConflict, b.RoomNumber)
	}
	f.nextID++
	b.BookingID = f.nextID
	f.bookings[b.BookingID] = b
	return b, nil
}

func (f *fakeStore) ListBookings(_ context.Context, _ domain.Page) ([]domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BookingID < out[j].BookingID })
	return out, nil
}

func (f *fakeStore) GetBooking(_ context.Context, id int64) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	return b, nil
}

func (f *fakeStore) UpdateBooking(_ context.Context, id int64, p domain.BookingPatch) (domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	if p.RoomNumber != nil {
		b.RoomNumber = *p.RoomNumber
	}
	if p.CustomerID != nil {
		b.CustomerID = *p.CustomerID
	}
	f.bookings[id] = b
	return b, nil
}

func (f *fakeStore) DeleteBooking(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bookings[id]; !ok {
		return fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeStore) ConvertBooking(_ context.Context, bookingID int64, paymentInfo, employeeSSN string) (domain.Renting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return domain.Renting{}, fmt.Errorf("%w: booking %d", domain.ErrNotFound, bookingID)
	}
	if _, ok := f.employees[employeeSSN]; !ok {
		return domain.Renting{}, fmt.Errorf("%w: employee %s", domain.ErrNotFound, employeeSSN)
	}
	for _, r := range f.rentings {
		if r.BookingID != nil && *r.BookingID == bookingID {
			return domain.Renting{}, fmt.Errorf("%w: booking %d already converted", domain.ErrConflict, bookingID)
		}
	}
	ssn := employeeSSN
	f.nextID++
	rent := domain.Renting{
		RentingID:          f.nextID,
		PaymentInformation: paymentInfo,
		StartDate:          b.StartDate,
		EndDate:            b.EndDate,
		EmployeeID:         &ssn,
		CustomerID:         b.CustomerID,
		RoomNumber:         b.RoomNumber,
		BookingID:          &bookingID,
	}
	f.rentings[rent.RentingID] = rent
	return rent, nil
}

func (f *fakeStore) CreateRenting(_ context.Context, r domain.Renting) (domain.Renting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.RentingID = f.nextID
	f.rentings[r.RentingID] = r
	return r, nil
}

func (f *fakeStore) ListRentings(_ context.Context, _ domain.Page) ([]domain.Renting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Renting
	for _, r := range f.rentings {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RentingID < out[j].RentingID })
	return out, nil
}

func (f *fakeStore) UpdateRenting(_ context.Context, id int64, p domain.RentingPatch) (domain.Renting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rentings[id]
	if !ok {
		return domain.Renting{}, fmt.Errorf("%w: renting %d", domain.ErrNotFound, id)
	}
	if p.PaymentInformation != nil {
		r.PaymentInformation = *p.PaymentInformation
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.EmployeeID != nil {
		r.EmployeeID = p.EmployeeID
	}
	if p.CustomerID != nil {
		r.CustomerID = *p.CustomerID
	}
	if p.RoomNumber != nil {
		r.RoomNumber = *p.RoomNumber
	}
	if p.BookingID != nil {
		r.BookingID = p.BookingID
	}
	f.rentings[id] = r
	return r, nil
}

func (f *fakeStore) DeleteRenting(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rentings[id]; !ok {
		return fmt.Errorf("%w: renting %d", domain.ErrNotFound, id)
	}
	delete(f.rentings, id)
	return nil
}

// ---- reports ----

func (f *fakeStore) AvailableRoomsPerArea(_ context.Context) ([]domain.AreaAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reportHits++
	return f.areas, nil
}

func (f *fakeStore) HotelRoomCapacity(_ context.Context) ([]domain.HotelCapacity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reportHits++
	return f.capacities, nil
}

// ---- fake cache ----

type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
}

func newFakeCache() *fakeCache { return &fakeCache{store: map[string][]byte{}} }

func (c *fakeCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(_ context.Context, key string, v any, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	return nil
}
