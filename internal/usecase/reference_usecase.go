package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// referenceUsecase is the business surface over the kiosk reference tables.
// Mutation is admin-only, enforced at the router.
type referenceUsecase struct {
	referenceRepo domain.ReferenceRepository
	logger        *slog.Logger
}

// NewReferenceUsecase creates a new reference data usecase.
func NewReferenceUsecase(referenceRepo domain.ReferenceRepository, logger *slog.Logger) domain.ReferenceUsecase {
	return &referenceUsecase{
		referenceRepo: referenceRepo,
		logger:        logger,
	}
}

// ============ Professors ============

func (u *referenceUsecase) ListProfessors(ctx context.Context) ([]*entity.Professor, error) {
	return u.referenceRepo.ListProfessors(ctx)
}

func (u *referenceUsecase) CreateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: professor name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(p.Department) == "" {
		return nil, fmt.Errorf("%w: professor department is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.CreateProfessor(ctx, p)
}

func (u *referenceUsecase) UpdateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("%w: professor id is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.UpdateProfessor(ctx, p)
}

func (u *referenceUsecase) DeleteProfessor(ctx context.Context, id string) error {
	return u.referenceRepo.DeleteProfessor(ctx, id)
}

// ============ Events ============

func (u *referenceUsecase) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	return u.referenceRepo.ListEvents(ctx)
}

func (u *referenceUsecase) UpcomingEvents(ctx context.Context) ([]*entity.Event, error) {
	return u.referenceRepo.UpcomingEvents(ctx, time.Now())
}

func (u *referenceUsecase) CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	if strings.TrimSpace(e.Title) == "" {
		return nil, fmt.Errorf("%w: event title is required", domain.ErrInvalidInput)
	}
	if e.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event date is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.CreateEvent(ctx, e)
}

func (u *referenceUsecase) UpdateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.UpdateEvent(ctx, e)
}

func (u *referenceUsecase) DeleteEvent(ctx context.Context, id string) error {
	return u.referenceRepo.DeleteEvent(ctx, id)
}

// ============ Departments ============

func (u *referenceUsecase) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	return u.referenceRepo.ListDepartments(ctx)
}

func (u *referenceUsecase) CreateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(d.Code) == "" {
		return nil, fmt.Errorf("%w: department code is required", domain.ErrInvalidInput)
	}
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	return u.referenceRepo.CreateDepartment(ctx, d)
}

func (u *referenceUsecase) UpdateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("%w: department id is required", domain.ErrInvalidInput)
	}
	if d.Code != "" {
		d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	}
	return u.referenceRepo.UpdateDepartment(ctx, d)
}

func (u *referenceUsecase) DeleteDepartment(ctx context.Context, id string) error {
	return u.referenceRepo.DeleteDepartment(ctx, id)
}

// ============ Facilities ============

func (u *referenceUsecase) ListFacilities(ctx context.Context) ([]*entity.Facility, error) {
	return u.referenceRepo.ListFacilities(ctx)
}

func (u *referenceUsecase) CreateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, fmt.Errorf("%w: facility name is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.CreateFacility(ctx, f)
}

func (u *referenceUsecase) UpdateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	if f.ID == "" {
		return nil, fmt.Errorf("%w: facility id is required", domain.ErrInvalidInput)
	}
	return u.referenceRepo.UpdateFacility(ctx, f)
}

func (u *referenceUsecase) DeleteFacility(ctx context.Context, id string) error {
	return u.referenceRepo.DeleteFacility(ctx, id)
}
