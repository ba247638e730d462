package entity

import "time"

// User is an admin console account (domain object, no JSON serialization).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	LastLoginAt  *time.Time
	DeletedAt    *time.Time // soft delete
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsDeleted reports whether the account was soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}
