package database

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessageModel is the chat_messages row.
type ChatMessageModel struct {
	ID        string    `gorm:"type:char(36);primaryKey"`
	SessionID string    `gorm:"type:char(36);index;not null"`
	Role      string    `gorm:"type:varchar(16);not null"`
	Content   string    `gorm:"type:text;not null"`
	Timestamp time.Time `gorm:"index;not null"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }

// FaqModel is the faqs row. NormalizedQuestion is the dedup key.
type FaqModel struct {
	ID                 string    `gorm:"type:char(36);primaryKey"`
	Question           string    `gorm:"type:text;not null"`
	NormalizedQuestion string    `gorm:"type:varchar(768);uniqueIndex;not null"`
	Count              int       `gorm:"not null;default:1"`
	LastAsked          time.Time `gorm:"not null"`
}

func (FaqModel) TableName() string { return "faqs" }

// ProfessorModel is the professors row.
type ProfessorModel struct {
	ID             string `gorm:"type:char(36);primaryKey"`
	Name           string `gorm:"type:varchar(255);not null"`
	Department     string `gorm:"type:varchar(255);not null"`
	Position       string `gorm:"type:varchar(255)"`
	Email          string `gorm:"type:varchar(255)"`
	Office         string `gorm:"type:varchar(255)"`
	Specialization string `gorm:"type:text"`
}

func (ProfessorModel) TableName() string { return "professors" }

// EventModel is the events row.
type EventModel struct {
	ID          string    `gorm:"type:char(36);primaryKey"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	EventDate   time.Time `gorm:"index;not null"`
	Location    string    `gorm:"type:varchar(255)"`
	Category    string    `gorm:"type:varchar(100)"`
}

func (EventModel) TableName() string { return "events" }

// DepartmentModel is the departments row.
type DepartmentModel struct {
	ID            string `gorm:"type:char(36);primaryKey"`
	Name          string `gorm:"type:varchar(255);not null"`
	Code          string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Description   string `gorm:"type:text"`
	Building      string `gorm:"type:varchar(255)"`
	ContactPerson string `gorm:"type:varchar(255)"`
}

func (DepartmentModel) TableName() string { return "departments" }

// FacilityModel is the facilities row.
type FacilityModel struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	Type         string `gorm:"type:varchar(100)"`
	Location     string `gorm:"type:varchar(255)"`
	Capacity     int
	Availability string `gorm:"type:varchar(100)"`
	Description  string `gorm:"type:text"`
}

func (FacilityModel) TableName() string { return "facilities" }

// AdminSettingsModel is the single-row admin_settings table.
type AdminSettingsModel struct {
	ID           string    `gorm:"type:char(36);primaryKey"`
	SchoolName   string    `gorm:"type:varchar(255);not null"`
	SchoolMotto  string    `gorm:"type:varchar(255)"`
	ContactEmail string    `gorm:"type:varchar(255)"`
	ContactPhone string    `gorm:"type:varchar(64)"`
	Address      string    `gorm:"type:text"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (AdminSettingsModel) TableName() string { return "admin_settings" }

// UserModel is the users row. DeletedAt gives soft deletes.
type UserModel struct {
	ID           string `gorm:"type:char(36);primaryKey"`
	Username     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (UserModel) TableName() string { return "users" }

// AllModels lists every model for auto migration.
func AllModels() []interface{} {
	return []interface{}{
		&ChatMessageModel{},
		&FaqModel{},
		&ProfessorModel{},
		&EventModel{},
		&DepartmentModel{},
		&FacilityModel{},
		&AdminSettingsModel{},
		&UserModel{},
	}
}
