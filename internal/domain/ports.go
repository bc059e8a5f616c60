package domain

import "context"

// Page is a simple offset/limit window over a listing.
type Page struct {
	Limit  int
	Offset int
}

type ChainStore interface {
	CreateChain(ctx context.Context, c HotelChain) error
	ListChains(ctx context.Context, pg Page) ([]HotelChain, error)
	UpdateChain(ctx context.Context, name string, p ChainPatch) (HotelChain, error)
	DeleteChain(ctx context.Context, name string) error
}

type HotelStore interface {
	CreateHotel(ctx context.Context, h Hotel) error
	ListHotels(ctx context.Context, pg Page) ([]Hotel, error)
	GetHotel(ctx context.Context, address string) (Hotel, error)
	UpdateHotel(ctx context.Context, address string, p HotelPatch) (Hotel, error)
	DeleteHotel(ctx context.Context, address string) error
}

type RoomStore interface {
	CreateRoom(ctx context.Context, r Room) error
	ListRooms(ctx context.Context, pg Page) ([]Room, error)
	UpdateRoom(ctx context.Context, number int64, hotelAddress string, p RoomPatch) (Room, error)
	DeleteRoom(ctx context.Context, number int64, hotelAddress string) error
	SearchRooms(ctx context.Context, q RoomSearch) ([]Room, error)
}

type EmployeeStore interface {
	CreateEmployee(ctx context.Context, e Employee) error
	ListEmployees(ctx context.Context, pg Page) ([]Employee, error)
	GetEmployee(ctx context.Context, ssn string) (Employee, error)
	UpdateEmployee(ctx context.Context, ssn string, p EmployeePatch) (Employee, error)
	DeleteEmployee(ctx context.Context, ssn string) error
}

type CustomerStore interface {
	CreateCustomer(ctx context.Context, c Customer) error
	ListCustomers(ctx context.Context, pg Page) ([]Customer, error)
	UpdateCustomer(ctx context.Context, id string, p CustomerPatch) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// DirectoryStore covers the five plain-CRUD entities.
type DirectoryStore interface {
	ChainStore
	HotelStore
	RoomStore
	EmployeeStore
	CustomerStore
}

type BookingStore interface {
	// CreateBooking locks the room row, rejects overlapping stays with
	// ErrConflict and inserts the booking in one transaction.
	CreateBooking(ctx context.Context, b Booking) (Booking, error)
	ListBookings(ctx context.Context, pg Page) ([]Booking, error)
	GetBooking(ctx context.Context, id int64) (Booking, error)
	UpdateBooking(ctx context.Context, id int64, p BookingPatch) (Booking, error)
	DeleteBooking(ctx context.Context, id int64) error

	// ConvertBooking writes a renting carrying the booking's dates, room and
	// customer; booking lookup, employee lookup and the insert are one
	// failure unit. A second conversion of the same booking is ErrConflict.
	ConvertBooking(ctx context.Context, bookingID int64, paymentInfo, employeeSSN string) (Renting, error)

	CreateRenting(ctx context.Context, r Renting) (Renting, error)
	ListRentings(ctx context.Context, pg Page) ([]Renting, error)
	UpdateRenting(ctx context.Context, id int64, p RentingPatch) (Renting, error)
	DeleteRenting(ctx context.Context, id int64) error
}

type AreaAvailability struct {
	Area           string `json:"area"`
	AvailableRooms int    `json:"available_rooms"`
}

type HotelCapacity struct {
	HotelAddress        string  `json:"hotel_address"`
	HotelChain          string  `json:"hotel_chain"`
	TotalRooms          int     `json:"total_rooms"`
	TotalCapacity       int     `json:"total_capacity"`
	AverageRoomCapacity float64 `json:"average_room_capacity"`
}

type ReportStore interface {
	AvailableRoomsPerArea(ctx context.Context) ([]AreaAvailability, error)
	HotelRoomCapacity(ctx context.Context) ([]HotelCapacity, error)
}

// Store is the full relational port implemented by the MySQL repo.
type Store interface {
	DirectoryStore
	BookingStore
	ReportStore
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
