package entity

import "time"

// AdminSettings is the singleton kiosk configuration row edited from the
// admin console.
type AdminSettings struct {
	ID           string
	SchoolName   string
	SchoolMotto  string
	ContactEmail string
	ContactPhone string
	Address      string
	UpdatedAt    time.Time
}
