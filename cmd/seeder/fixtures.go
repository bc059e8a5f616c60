package main

import (
	"time"

	"chainstay/internal/domain"
)

type seedHotel struct {
	hotel     domain.Hotel
	manager   domain.Employee
	employees []domain.Employee
	rooms     []domain.Room
	bookings  []domain.Booking // room/customer filled from the fixtures
}

func ptr[T any](v T) *T { return &v }

var seedChains = []domain.HotelChain{
	{ChainName: "Northern Lights Hotels", Address: "Ottawa, ON, K1P 5G4", NumberOfHotels: 3, ContactEmail: "contact@northernlights.example", PhoneNumber: "+1-613-555-0100"},
	{ChainName: "Lakeside Resorts", Address: "Toronto, ON, M5H 2N2", NumberOfHotels: 2, ContactEmail: "info@lakeside.example", PhoneNumber: "+1-416-555-0180"},
	{ChainName: "Prairie Inns", Address: "Winnipeg, MB, R3C 0V8", NumberOfHotels: 1, ContactEmail: "desk@prairieinns.example", PhoneNumber: "+1-204-555-0122"},
}

var seedCustomers = []domain.Customer{
	{CustomerID: "C-1001", FullName: "Ana Marques", Address: "12 Elm St, Ottawa", DateOfRegistration: ptr(time.Date(2023, 4, 12, 0, 0, 0, 0, time.UTC))},
	{CustomerID: "C-1002", FullName: "Jordan Blake", Address: "77 King St, Toronto", DateOfRegistration: ptr(time.Date(2023, 9, 3, 0, 0, 0, 0, time.UTC))},
	{CustomerID: "C-1003", FullName: "Priya Nair", Address: "5 Portage Ave, Winnipeg", DateOfRegistration: ptr(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC))},
}

var seedHotels = []seedHotel{
	{
		hotel:   domain.Hotel{Address: "Springfield, IL, 62701", ContactEmail: "springfield@northernlights.example", PhoneNumber: "+1-217-555-0142", NumberOfRooms: 3, Rating: 4, ChainName: "Northern Lights Hotels"},
		manager: domain.Employee{SSN: "100000001", FullName: "Marta Silva", Address: "9 Oak Ave, Springfield", JobPosition: "Manager"},
		employees: []domain.Employee{
			{SSN: "100000002", FullName: "Leo Tran", Address: "4 Pine Rd, Springfield", JobPosition: "Receptionist"},
		},
		rooms: []domain.Room{
			{RoomNumber: 101, Price: 100, Amenities: "wifi,tv", Extendable: true, ViewType: "sea", Capacity: 2},
			{RoomNumber: 102, Price: 150, Amenities: "wifi,tv,minibar", Extendable: false, ViewType: "mountain", Capacity: 3},
			{RoomNumber: 103, Price: 220, Amenities: "wifi,tv,minibar,balcony", Extendable: true, ViewType: "sea", Capacity: 4, Problems: ptr("balcony door sticks")},
		},
		bookings: []domain.Booking{
			{RoomNumber: 101, CustomerID: "C-1001", StartDate: domain.NewDate(2026, 9, 10), EndDate: domain.NewDate(2026, 9, 14)},
		},
	},
	{
		hotel:   domain.Hotel{Address: "Burlington, VT, 05401", ContactEmail: "burlington@northernlights.example", PhoneNumber: "+1-802-555-0175", NumberOfRooms: 2, Rating: 5, ChainName: "Northern Lights Hotels"},
		manager: domain.Employee{SSN: "100000003", FullName: "Ian Cole", Address: "2 Birch Ln, Burlington", JobPosition: "Manager"},
		rooms: []domain.Room{
			{RoomNumber: 201, Price: 180, Amenities: "wifi", Extendable: false, ViewType: "lake", Capacity: 2},
			{RoomNumber: 202, Price: 260, Amenities: "wifi,spa", Extendable: true, ViewType: "lake", Capacity: 5},
		},
	},
	{
		hotel:   domain.Hotel{Address: "Toronto, ON, M5V 3L9", ContactEmail: "toronto@lakeside.example", PhoneNumber: "+1-416-555-0133", NumberOfRooms: 2, Rating: 3, ChainName: "Lakeside Resorts"},
		manager: domain.Employee{SSN: "100000004", FullName: "Sofia Reyes", Address: "81 Queen St, Toronto", JobPosition: "Manager"},
		employees: []domain.Employee{
			{SSN: "100000005", FullName: "Derek Oduya", Address: "15 Bay St, Toronto", JobPosition: "Housekeeping"},
		},
		rooms: []domain.Room{
			{RoomNumber: 301, Price: 95, Amenities: "wifi,tv", Extendable: false, ViewType: "city", Capacity: 2},
			{RoomNumber: 302, Price: 140, Amenities: "wifi,tv", Extendable: true, ViewType: "city", Capacity: 3},
		},
		bookings: []domain.Booking{
			{RoomNumber: 301, CustomerID: "C-1002", StartDate: domain.NewDate(2026, 10, 1), EndDate: domain.NewDate(2026, 10, 5)},
		},
	},
	{
		hotel:   domain.Hotel{Address: "Winnipeg, MB, R3B 0N2", ContactEmail: "winnipeg@prairieinns.example", PhoneNumber: "+1-204-555-0199", NumberOfRooms: 1, Rating: 3, ChainName: "Prairie Inns"},
		manager: domain.Employee{SSN: "100000006", FullName: "Noah Katz", Address: "40 Main St, Winnipeg", JobPosition: "Manager"},
		rooms: []domain.Room{
			{RoomNumber: 401, Price: 80, Amenities: "wifi", Extendable: false, ViewType: "garden", Capacity: 2},
		},
	},
}
