package dto

import "time"

// ProfessorRequest creates or updates a faculty entry.
type ProfessorRequest struct {
	Name           string `json:"name"`
	Department     string `json:"department"`
	Position       string `json:"position,omitempty"`
	Email          string `json:"email,omitempty"`
	Office         string `json:"office,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

// EventRequest creates or updates a school event.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"eventDate"`
	Location    string    `json:"location,omitempty"`
	Category    string    `json:"category,omitempty"`
}

// DepartmentRequest creates or updates a department entry.
type DepartmentRequest struct {
	Name          string `json:"name"`
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	Building      string `json:"building,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

// FacilityRequest creates or updates a campus facility entry.
type FacilityRequest struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Location     string `json:"location,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
	Availability string `json:"availability,omitempty"`
	Description  string `json:"description,omitempty"`
}

// SettingsRequest updates the kiosk settings.
type SettingsRequest struct {
	SchoolName   string `json:"schoolName"`
	SchoolMotto  string `json:"schoolMotto,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
}
