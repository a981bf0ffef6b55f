package domain

// Service is a bookable tourist service (cable car, guide, shuttle).
type Service struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// Event is a scheduled festival or happening.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// Tour is a guided itinerary.
type Tour struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Duration    string  `json:"duration,omitempty"`
	Schedule    string  `json:"schedule,omitempty"`
	Location    string  `json:"location,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// Restaurant is a dining venue around the mountain.
type Restaurant struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address,omitempty"`
	Specialty   string `json:"specialty,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Info is the application identity returned by the info endpoint.
type Info struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}
