package models

// Booking is the receipt view of a booking record. Property fields are
// copied from the listing at booking time, not referenced.
type Booking struct {
	ID                 string  `json:"id"`
	ConfirmationNumber string  `json:"confirmationNumber"`
	Status             string  `json:"status"`
	PropertyType       string  `json:"propertyType"`
	PropertyID         string  `json:"propertyId"`
	PropertyName       string  `json:"propertyName"`
	CustomerName       string  `json:"customerName"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	CheckIn            string  `json:"checkIn"`
	CheckOut           string  `json:"checkOut"`
	Guests             int     `json:"guests"`
	TotalPrice         float64 `json:"totalPrice"`
	SpecialRequests    string  `json:"specialRequests"`
	CreatedAt          string  `json:"createdAt"`
}
