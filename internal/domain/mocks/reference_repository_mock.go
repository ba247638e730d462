package mocks

import (
	"context"
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// MockReferenceRepository is a mock implementation of domain.ReferenceRepository.
type MockReferenceRepository struct {
	ListProfessorsFunc  func(ctx context.Context) ([]*entity.Professor, error)
	ListEventsFunc      func(ctx context.Context) ([]*entity.Event, error)
	UpcomingEventsFunc  func(ctx context.Context, now time.Time) ([]*entity.Event, error)
	ListDepartmentsFunc func(ctx context.Context) ([]*entity.Department, error)
	ListFacilitiesFunc  func(ctx context.Context) ([]*entity.Facility, error)
}

func (m *MockReferenceRepository) ListProfessors(ctx context.Context) ([]*entity.Professor, error) {
	if m.ListProfessorsFunc != nil {
		return m.ListProfessorsFunc(ctx)
	}
	return []*entity.Professor{}, nil
}

func (m *MockReferenceRepository) CreateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	return p, nil
}

func (m *MockReferenceRepository) UpdateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	return p, nil
}

func (m *MockReferenceRepository) DeleteProfessor(ctx context.Context, id string) error {
	return nil
}

func (m *MockReferenceRepository) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	if m.ListEventsFunc != nil {
		return m.ListEventsFunc(ctx)
	}
	return []*entity.Event{}, nil
}

func (m *MockReferenceRepository) UpcomingEvents(ctx context.Context, now time.Time) ([]*entity.Event, error) {
	if m.UpcomingEventsFunc != nil {
		return m.UpcomingEventsFunc(ctx, now)
	}
	return []*entity.Event{}, nil
}

func (m *MockReferenceRepository) CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	return e, nil
}

func (m *MockReferenceRepository) UpdateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	return e, nil
}

func (m *MockReferenceRepository) DeleteEvent(ctx context.Context, id string) error {
	return nil
}

func (m *MockReferenceRepository) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	if m.ListDepartmentsFunc != nil {
		return m.ListDepartmentsFunc(ctx)
	}
	return []*entity.Department{}, nil
}

func (m *MockReferenceRepository) GetDepartmentByCode(ctx context.Context, code string) (*entity.Department, error) {
	return nil, nil
}

func (m *MockReferenceRepository) CreateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	return d, nil
}

func (m *MockReferenceRepository) UpdateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	return d, nil
}

func (m *MockReferenceRepository) DeleteDepartment(ctx context.Context, id string) error {
	return nil
}

func (m *MockReferenceRepository) ListFacilities(ctx context.Context) ([]*entity.Facility, error) {
	if m.ListFacilitiesFunc != nil {
		return m.ListFacilitiesFunc(ctx)
	}
	return []*entity.Facility{}, nil
}

func (m *MockReferenceRepository) CreateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	return f, nil
}

func (m *MockReferenceRepository) UpdateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	return f, nil
}

func (m *MockReferenceRepository) DeleteFacility(ctx context.Context, id string) error {
	return nil
}
