package domain

// Room numbers are globally unique across the chain (the bare number is the
// primary key), but the write paths still address rooms by the
// (number, hotel address) pair the way the public API does.
type Room struct {
	RoomNumber   int64   `json:"room_number"`
	Price        float64 `json:"price"`
	Amenities    string  `json:"amenities"`
	Problems     *string `json:"problems"`
	Extendable   bool    `json:"extendable"`
	ViewType     string  `json:"view_type"`
	Capacity     int     `json:"capacity"`
	HotelAddress string  `json:"hotel_address"`
}

type RoomPatch struct {
	Price      *float64 `json:"price"`
	Amenities  *string  `json:"amenities"`
	Problems   *string  `json:"problems"`
	Extendable *bool    `json:"extendable"`
	ViewType   *string  `json:"view_type"`
	Capacity   *int     `json:"capacity"`
}

// RoomSearch holds the optional search criteria; supplied ones are ANDed.
// StartDate and EndDate only take effect together and exclude rooms with a
// booking overlapping the range. Area is a case-insensitive substring match
// against the owning hotel's full address.
type RoomSearch struct {
	StartDate   *Date    `json:"start_date"`
	EndDate     *Date    `json:"end_date"`
	Capacity    *int     `json:"capacity"`
	Area        *string  `json:"area"`
	HotelChain  *string  `json:"hotel_chain"`
	HotelRating *int     `json:"hotel_rating"`
	MinPrice    *float64 `json:"min_price"`
	MaxPrice    *float64 `json:"max_price"`
	ViewType    *string  `json:"view_type"`
}
