package domain

type HotelChain struct {
	ChainName      string `json:"chain_name"`
	Address        string `json:"address"`
	NumberOfHotels int    `json:"number_of_hotels"`
	ContactEmail   string `json:"contact_email"`
	PhoneNumber    string `json:"phone_number"`
}

// ChainPatch carries partial updates; nil fields are left untouched.
type ChainPatch struct {
	Address        *string `json:"address"`
	NumberOfHotels *int    `json:"number_of_hotels"`
	ContactEmail   *string `json:"contact_email"`
	PhoneNumber    *string `json:"phone_number"`
}

type Hotel struct {
	Address       string  `json:"address"`
	ContactEmail  string  `json:"contact_email"`
	PhoneNumber   string  `json:"phone_number"`
	NumberOfRooms int     `json:"number_of_rooms"`
	Rating        int     `json:"rating"`
	ChainName     string  `json:"chain_name"`
	ManagerID     *string `json:"manager_id"` // employee SSN; at most one hotel per manager
}

type HotelPatch struct {
	ContactEmail  *string `json:"contact_email"`
	PhoneNumber   *string `json:"phone_number"`
	NumberOfRooms *int    `json:"number_of_rooms"`
	Rating        *int    `json:"rating"`
	ChainName     *string `json:"chain_name"`
	ManagerID     *string `json:"manager_id"`
}
