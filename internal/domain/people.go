package domain

import (
	"regexp"
	"time"
)

var ssnRe = regexp.MustCompile(`^\d{9}$`)

// ValidSSN reports whether s is exactly nine digits.
func ValidSSN(s string) bool { return ssnRe.MatchString(s) }

type Employee struct {
	SSN         string  `json:"ssn"`
	FullName    string  `json:"full_name"`
	Address     string  `json:"address"`
	JobPosition string  `json:"job_position"`
	HotelID     *string `json:"hotel_id"` // hotel address; nulled when the hotel goes away
}

type EmployeePatch struct {
	FullName    *string `json:"full_name"`
	Address     *string `json:"address"`
	JobPosition *string `json:"job_position"`
	HotelID     *string `json:"hotel_id"`
}

type Customer struct {
	CustomerID         string     `json:"customer_id"`
	FullName           string     `json:"full_name"`
	Address            string     `json:"address"`
	DateOfRegistration *time.Time `json:"date_of_registration"`
}

type CustomerPatch struct {
	FullName *string `json:"full_name"`
	Address  *string `json:"address"`
}
