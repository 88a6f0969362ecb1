package models

// Bus is an intercity coach departure.
type Bus struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Operator       string   `json:"operator"`
	Type           string   `json:"type"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	DepartureTime  string   `json:"departureTime"`
	ArrivalTime    string   `json:"arrivalTime"`
	Duration       string   `json:"duration"`
	Price          float64  `json:"price"`
	Rating         float64  `json:"rating"`
	SeatsAvailable int      `json:"seatsAvailable"`
	Amenities      []string `json:"amenities"`
}

type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
}

type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	Location     string   `json:"location"`
	PriceRange   string   `json:"priceRange"`
	Rating       float64  `json:"rating"`
	OpeningHours string   `json:"openingHours"`
	Image        string   `json:"image"`
	Specialties  []string `json:"specialties"`
}

type PrivateCar struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Seats       int      `json:"seats"`
	PricePerDay float64  `json:"pricePerDay"`
	PricePerKm  float64  `json:"pricePerKm"`
	Rating      float64  `json:"rating"`
	Available   bool     `json:"available"`
	Image       string   `json:"image"`
	Features    []string `json:"features"`
}

type TravelPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Image       string   `json:"image"`
	Inclusions  []string `json:"inclusions"`
	Highlights  []string `json:"highlights"`
}

type Destination struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	State           string   `json:"state"`
	Description     string   `json:"description"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	Rating          float64  `json:"rating"`
	Image           string   `json:"image"`
	Attractions     []string `json:"attractions"`
}

// TripPlanner is a local guide who can be hired per day.
type TripPlanner struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Experience     string   `json:"experience"`
	PricePerDay    float64  `json:"pricePerDay"`
	Rating         float64  `json:"rating"`
	Image          string   `json:"image"`
	Languages      []string `json:"languages"`
}
