package domain

import (
	"context"
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// ============ Repository interfaces ============

// ReferenceRepository is the data-access surface for school reference data.
// The chat pipeline only reads; the admin surface owns mutation.
type ReferenceRepository interface {
	ListProfessors(ctx context.Context) ([]*entity.Professor, error)
	CreateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error)
	UpdateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error)
	DeleteProfessor(ctx context.Context, id string) error

	// ListEvents returns all events ordered by event date ascending.
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	// UpcomingEvents returns events with eventDate >= now, ascending.
	UpcomingEvents(ctx context.Context, now time.Time) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error)
	UpdateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	GetDepartmentByCode(ctx context.Context, code string) (*entity.Department, error)
	CreateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error)
	UpdateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListFacilities(ctx context.Context) ([]*entity.Facility, error)
	CreateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error)
	UpdateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
}

// SettingsRepository stores the singleton admin settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AdminSettings, error)
	Upsert(ctx context.Context, s *entity.AdminSettings) (*entity.AdminSettings, error)
}

// ============ Usecase interfaces ============

// ReferenceUsecase is the business surface over reference data.
type ReferenceUsecase interface {
	ListProfessors(ctx context.Context) ([]*entity.Professor, error)
	CreateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error)
	UpdateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error)
	DeleteProfessor(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]*entity.Event, error)
	UpcomingEvents(ctx context.Context) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error)
	UpdateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListDepartments(ctx context.Context) ([]*entity.Department, error)
	CreateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error)
	UpdateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	ListFacilities(ctx context.Context) ([]*entity.Facility, error)
	CreateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error)
	UpdateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error)
	DeleteFacility(ctx context.Context, id string) error
}

// SettingsUsecase reads and updates the kiosk settings.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.AdminSettings, error)
	Update(ctx context.Context, s *entity.AdminSettings) (*entity.AdminSettings, error)
}
