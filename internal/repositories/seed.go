package repositories

import (
	"fmt"

	"travelapi/internal/domain"
	"travelapi/internal/domain/models"
)

// SampleData returns the catalogue loaded into an empty store at start-up.
// Bookings start empty.
func SampleData() (map[domain.ResourceKind][]domain.Record, error) {
	out := map[domain.ResourceKind][]domain.Record{}

	add := func(kind domain.ResourceKind, items ...any) error {
		recs := make([]domain.Record, 0, len(items))
		for _, it := range items {
			rec, err := domain.ToRecord(it)
			if err != nil {
				return fmt.Errorf("sample %s: %w", kind, err)
			}
			recs = append(recs, rec)
		}
		out[kind] = recs
		return nil
	}

	steps := []struct {
		kind  domain.ResourceKind
		items []any
	}{
		{domain.KindBuses, sampleBuses()},
		{domain.KindHotels, sampleHotels()},
		{domain.KindRestaurants, sampleRestaurants()},
		{domain.KindPrivateCars, samplePrivateCars()},
		{domain.KindTravelPackages, sampleTravelPackages()},
		{domain.KindDestinations, sampleDestinations()},
		{domain.KindTripPlanners, sampleTripPlanners()},
	}
	for _, st := range steps {
		if err := add(st.kind, st.items...); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func sampleBuses() []any {
	return []any{
		models.Bus{
			ID: "bus-1", Name: "Volvo Multi-Axle Sleeper", Operator: "Konkan Travels", Type: "AC Sleeper",
			From: "Mumbai", To: "Goa", DepartureTime: "21:00", ArrivalTime: "08:30", Duration: "11h 30m",
			Price: 1450, Rating: 4.5, SeatsAvailable: 18, Amenities: []string{"WiFi", "Charging Point", "Blanket", "Water Bottle"},
		},
		models.Bus{
			ID: "bus-2", Name: "Scania Semi-Sleeper", Operator: "Deccan Express", Type: "AC Semi-Sleeper",
			From: "Pune", To: "Bangalore", DepartureTime: "19:30", ArrivalTime: "09:00", Duration: "13h 30m",
			Price: 1200, Rating: 4.2, SeatsAvailable: 24, Amenities: []string{"Charging Point", "Reading Light"},
		},
		models.Bus{
			ID: "bus-3", Name: "Himalayan Seater", Operator: "Himachal Roadways", Type: "Non-AC Seater",
			From: "Delhi", To: "Manali", DepartureTime: "17:00", ArrivalTime: "07:00", Duration: "14h",
			Price: 850, Rating: 3.9, SeatsAvailable: 31, Amenities: []string{"Water Bottle"},
		},
		models.Bus{
			ID: "bus-4", Name: "Coastal Volvo", Operator: "Southern Lines", Type: "AC Seater",
			From: "Chennai", To: "Pondicherry", DepartureTime: "07:15", ArrivalTime: "10:45", Duration: "3h 30m",
			Price: 450, Rating: 4.4, SeatsAvailable: 12, Amenities: []string{"WiFi", "Charging Point"},
		},
	}
}

func sampleHotels() []any {
	return []any{
		models.Hotel{
			ID: "hotel-1", Name: "Taj Lake Palace", Location: "Udaipur, Rajasthan",
			Description: "Marble palace on Lake Pichola with heritage suites.",
			Price: 32000, Rating: 4.9, Reviews: 2140, Image: "/images/hotels/taj-lake-palace.jpg",
			Amenities: []string{"Pool", "Spa", "Fine Dining", "Boat Transfer"},
		},
		models.Hotel{
			ID: "hotel-2", Name: "Beachside Retreat", Location: "Calangute, Goa",
			Description: "Sea-facing cottages a short walk from the beach.",
			Price: 6500, Rating: 4.3, Reviews: 870, Image: "/images/hotels/beachside-retreat.jpg",
			Amenities: []string{"Pool", "Free WiFi", "Breakfast"},
		},
		models.Hotel{
			ID: "hotel-3", Name: "Snow Valley Resort", Location: "Manali, Himachal Pradesh",
			Description: "Mountain resort with valley views and heated rooms.",
			Price: 4800, Rating: 4.1, Reviews: 512, Image: "/images/hotels/snow-valley.jpg",
			Amenities: []string{"Heating", "Restaurant", "Parking"},
		},
		models.Hotel{
			ID: "hotel-4", Name: "Backwater Houseboat Inn", Location: "Alleppey, Kerala",
			Description: "Traditional kettuvallam stays on the backwaters.",
			Price: 9000, Rating: 4.6, Reviews: 1033, Image: "/images/hotels/houseboat-inn.jpg",
			Amenities: []string{"All Meals", "Sundeck", "Guided Cruise"},
		},
	}
}

func sampleRestaurants() []any {
	return []any{
		models.Restaurant{
			ID: "restaurant-1", Name: "Karim's", Cuisine: "Mughlai", Location: "Old Delhi",
			PriceRange: "$$", Rating: 4.5, OpeningHours: "09:00 - 00:30", Image: "/images/restaurants/karims.jpg",
			Specialties: []string{"Mutton Korma", "Seekh Kebab"},
		},
		models.Restaurant{
			ID: "restaurant-2", Name: "Fisherman's Wharf", Cuisine: "Goan Seafood", Location: "Panjim, Goa",
			PriceRange: "$$$", Rating: 4.4, OpeningHours: "12:00 - 23:30", Image: "/images/restaurants/fishermans-wharf.jpg",
			Specialties: []string{"Prawn Balchão", "Fish Curry Rice"},
		},
		models.Restaurant{
			ID: "restaurant-3", Name: "Mavalli Tiffin Rooms", Cuisine: "South Indian", Location: "Bangalore",
			PriceRange: "$", Rating: 4.6, OpeningHours: "06:30 - 21:00", Image: "/images/restaurants/mtr.jpg",
			Specialties: []string{"Rava Idli", "Masala Dosa"},
		},
		models.Restaurant{
			ID: "restaurant-4", Name: "Johnson's Cafe", Cuisine: "Himachali", Location: "Manali",
			PriceRange: "$$", Rating: 4.2, OpeningHours: "08:00 - 22:30", Image: "/images/restaurants/johnsons.jpg",
			Specialties: []string{"Trout Fish", "Siddu"},
		},
	}
}

func samplePrivateCars() []any {
	return []any{
		models.PrivateCar{
			ID: "car-1", Name: "Toyota Innova Crysta", Type: "SUV", Seats: 7,
			PricePerDay: 3500, PricePerKm: 18, Rating: 4.7, Available: true, Image: "/images/cars/innova.jpg",
			Features: []string{"AC", "Music System", "Luggage Carrier"},
		},
		models.PrivateCar{
			ID: "car-2", Name: "Maruti Swift Dzire", Type: "Sedan", Seats: 4,
			PricePerDay: 2200, PricePerKm: 12, Rating: 4.3, Available: true, Image: "/images/cars/dzire.jpg",
			Features: []string{"AC", "Music System"},
		},
		models.PrivateCar{
			ID: "car-3", Name: "Tempo Traveller", Type: "Van", Seats: 12,
			PricePerDay: 5500, PricePerKm: 24, Rating: 4.1, Available: false, Image: "/images/cars/tempo.jpg",
			Features: []string{"AC", "Push-back Seats", "First Aid"},
		},
	}
}

func sampleTravelPackages() []any {
	return []any{
		models.TravelPackage{
			ID: "package-1", Name: "Golden Triangle Explorer", Destination: "Delhi - Agra - Jaipur", Duration: "6 Days / 5 Nights",
			Price: 24999, Rating: 4.6, Image: "/images/packages/golden-triangle.jpg",
			Inclusions: []string{"Hotels", "Breakfast", "Private Cab", "Guide"},
			Highlights: []string{"Taj Mahal at sunrise", "Amber Fort", "Qutub Minar"},
		},
		models.TravelPackage{
			ID: "package-2", Name: "Kerala Backwaters Escape", Destination: "Kochi - Munnar - Alleppey", Duration: "5 Days / 4 Nights",
			Price: 21499, Rating: 4.7, Image: "/images/packages/kerala.jpg",
			Inclusions: []string{"Hotels", "Houseboat Night", "Transfers"},
			Highlights: []string{"Tea gardens", "Houseboat cruise", "Kathakali show"},
		},
		models.TravelPackage{
			ID: "package-3", Name: "Himalayan Adventure", Destination: "Manali - Solang - Rohtang", Duration: "4 Days / 3 Nights",
			Price: 15999, Rating: 4.4, Image: "/images/packages/himalayan.jpg",
			Inclusions: []string{"Hotels", "Breakfast & Dinner", "Volvo Tickets"},
			Highlights: []string{"Paragliding", "Snow point", "Hadimba Temple"},
		},
	}
}

func sampleDestinations() []any {
	return []any{
		models.Destination{
			ID: "destination-1", Name: "Goa", State: "Goa", Rating: 4.6, BestTimeToVisit: "November - February",
			Description: "Beaches, Portuguese heritage and nightlife.", Image: "/images/destinations/goa.jpg",
			Attractions: []string{"Baga Beach", "Basilica of Bom Jesus", "Dudhsagar Falls"},
		},
		models.Destination{
			ID: "destination-2", Name: "Jaipur", State: "Rajasthan", Rating: 4.5, BestTimeToVisit: "October - March",
			Description: "The Pink City of forts and bazaars.", Image: "/images/destinations/jaipur.jpg",
			Attractions: []string{"Amber Fort", "Hawa Mahal", "City Palace"},
		},
		models.Destination{
			ID: "destination-3", Name: "Munnar", State: "Kerala", Rating: 4.7, BestTimeToVisit: "September - May",
			Description: "Rolling tea estates in the Western Ghats.", Image: "/images/destinations/munnar.jpg",
			Attractions: []string{"Eravikulam National Park", "Mattupetty Dam", "Tea Museum"},
		},
		models.Destination{
			ID: "destination-4", Name: "Leh", State: "Ladakh", Rating: 4.8, BestTimeToVisit: "May - September",
			Description: "High-altitude desert, monasteries and mountain passes.", Image: "/images/destinations/leh.jpg",
			Attractions: []string{"Pangong Lake", "Khardung La", "Thiksey Monastery"},
		},
	}
}

func sampleTripPlanners() []any {
	return []any{
		models.TripPlanner{
			ID: "planner-1", Name: "Ananya Sharma", Specialization: "Heritage Tours", Experience: "8 years",
			PricePerDay: 2500, Rating: 4.8, Image: "/images/planners/ananya.jpg",
			Languages: []string{"English", "Hindi", "French"},
		},
		models.TripPlanner{
			ID: "planner-2", Name: "Rahul Menon", Specialization: "Backwater & Nature Trails", Experience: "6 years",
			PricePerDay: 2000, Rating: 4.6, Image: "/images/planners/rahul.jpg",
			Languages: []string{"English", "Malayalam", "Tamil"},
		},
		models.TripPlanner{
			ID: "planner-3", Name: "Tenzin Dorje", Specialization: "High-Altitude Treks", Experience: "11 years",
			PricePerDay: 3200, Rating: 4.9, Image: "/images/planners/tenzin.jpg",
			Languages: []string{"English", "Hindi", "Ladakhi"},
		},
	}
}
