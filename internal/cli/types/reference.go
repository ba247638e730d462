package types

// Event is a school event entry
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"eventDate"`
	Location    string `json:"location,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Professor is a faculty directory entry
type Professor struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Department     string `json:"department"`
	Position       string `json:"position,omitempty"`
	Email          string `json:"email,omitempty"`
	Office         string `json:"office,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}
