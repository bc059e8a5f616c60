package domain

type Booking struct {
	BookingID  int64  `json:"booking_id"`
	StartDate  Date   `json:"start_date"`
	EndDate    Date   `json:"end_date"`
	RoomNumber int64  `json:"room_number"`
	CustomerID string `json:"customer_id"`
}

type BookingPatch struct {
	StartDate  *Date   `json:"start_date"`
	EndDate    *Date   `json:"end_date"`
	RoomNumber *int64  `json:"room_number"`
	CustomerID *string `json:"customer_id"`
}

type Renting struct {
	RentingID          int64   `json:"renting_id"`
	PaymentInformation string  `json:"payment_information"`
	StartDate          Date    `json:"start_date"`
	EndDate            Date    `json:"end_date"`
	EmployeeID         *string `json:"employee_id"` // handling employee SSN
	CustomerID         string  `json:"customer_id"`
	RoomNumber         int64   `json:"room_number"`
	BookingID          *int64  `json:"booking_id"` // set when the renting came from a booking
}

type RentingPatch struct {
	PaymentInformation *string `json:"payment_information"`
	StartDate          *Date   `json:"start_date"`
	EndDate            *Date   `json:"end_date"`
	EmployeeID         *string `json:"employee_id"`
	CustomerID         *string `json:"customer_id"`
	RoomNumber         *int64  `json:"room_number"`
	BookingID          *int64  `json:"booking_id"`
}
