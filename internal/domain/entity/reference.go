package entity

import "time"

// Reference entities are read-only from the chat pipeline's perspective;
// the admin surface owns create/update/delete.

// Professor is a faculty member record.
type Professor struct {
	ID             string
	Name           string
	Department     string
	Position       string
	Email          string
	Office         string
	Specialization string
}

// Event is a campus event. An event is "upcoming" when EventDate >= now.
type Event struct {
	ID          string
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	Category    string
}

// Department is an academic department. Code is unique.
type Department struct {
	ID            string
	Name          string
	Code          string
	Description   string
	Building      string
	ContactPerson string
}

// Facility is a campus facility (lab, library, gym, ...).
type Facility struct {
	ID           string
	Name         string
	Type         string
	Location     string
	Capacity     int
	Availability string
	Description  string
}
