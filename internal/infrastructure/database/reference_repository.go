package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// referenceRepository is the MySQL implementation of ReferenceRepository.
// It covers the four kiosk reference categories.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a new ReferenceRepository instance.
func NewReferenceRepository(db *gorm.DB) domain.ReferenceRepository {
	return &referenceRepository{
		db: db,
	}
}

// ============ Professors ============

func (r *referenceRepository) ListProfessors(ctx context.Context) ([]*entity.Professor, error) {
	var models []ProfessorModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, domain.NewInternalError("failed to list professors", err)
	}
	out := make([]*entity.Professor, 0, len(models))
	for i := range models {
		out = append(out, toEntityProfessor(&models[i]))
	}
	return out, nil
}

func (r *referenceRepository) CreateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	model := toModelProfessor(p)
	model.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, domain.NewInternalError("failed to create professor", err)
	}
	return toEntityProfessor(model), nil
}

func (r *referenceRepository) UpdateProfessor(ctx context.Context, p *entity.Professor) (*entity.Professor, error) {
	model := toModelProfessor(p)
	result := r.db.WithContext(ctx).Model(&ProfessorModel{}).Where("id = ?", p.ID).Updates(model)
	if result.Error != nil {
		return nil, domain.NewInternalError("failed to update professor", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("professor", p.ID)
	}
	return p, nil
}

func (r *referenceRepository) DeleteProfessor(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProfessorModel{})
	if result.Error != nil {
		return domain.NewInternalError("failed to delete professor", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("professor", id)
	}
	return nil
}

// ============ Events ============

func (r *referenceRepository) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	var models []EventModel
	if err := r.db.WithContext(ctx).Order("event_date ASC").Find(&models).Error; err != nil {
		return nil, domain.NewInternalError("failed to list events", err)
	}
	out := make([]*entity.Event, 0, len(models))
	for i := range models {
		out = append(out, toEntityEvent(&models[i]))
	}
	return out, nil
}

func (r *referenceRepository) UpcomingEvents(ctx context.Context, now time.Time) ([]*entity.Event, error) {
	var models []EventModel
	err := r.db.WithContext(ctx).
		Where("event_date >= ?", now).
		Order("event_date ASC").
		Find(&models).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to list upcoming events", err)
	}
	out := make([]*entity.Event, 0, len(models))
	for i := range models {
		out = append(out, toEntityEvent(&models[i]))
	}
	return out, nil
}

func (r *referenceRepository) CreateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	model := toModelEvent(e)
	model.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, domain.NewInternalError("failed to create event", err)
	}
	return toEntityEvent(model), nil
}

func (r *referenceRepository) UpdateEvent(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	model := toModelEvent(e)
	result := r.db.WithContext(ctx).Model(&EventModel{}).Where("id = ?", e.ID).Updates(model)
	if result.Error != nil {
		return nil, domain.NewInternalError("failed to update event", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("event", e.ID)
	}
	return e, nil
}

func (r *referenceRepository) DeleteEvent(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&EventModel{})
	if result.Error != nil {
		return domain.NewInternalError("failed to delete event", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("event", id)
	}
	return nil
}

// ============ Departments ============

func (r *referenceRepository) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	var models []DepartmentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, domain.NewInternalError("failed to list departments", err)
	}
	out := make([]*entity.Department, 0, len(models))
	for i := range models {
		out = append(out, toEntityDepartment(&models[i]))
	}
	return out, nil
}

func (r *referenceRepository) GetDepartmentByCode(ctx context.Context, code string) (*entity.Department, error) {
	var model DepartmentModel
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("department", code)
		}
		return nil, domain.NewInternalError("failed to get department", err)
	}
	return toEntityDepartment(&model), nil
}

func (r *referenceRepository) CreateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	model := toModelDepartment(d)
	model.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, domain.NewInternalError("failed to create department", err)
	}
	return toEntityDepartment(model), nil
}

func (r *referenceRepository) UpdateDepartment(ctx context.Context, d *entity.Department) (*entity.Department, error) {
	model := toModelDepartment(d)
	result := r.db.WithContext(ctx).Model(&DepartmentModel{}).Where("id = ?", d.ID).Updates(model)
	if result.Error != nil {
		return nil, domain.NewInternalError("failed to update department", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("department", d.ID)
	}
	return d, nil
}

func (r *referenceRepository) DeleteDepartment(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DepartmentModel{})
	if result.Error != nil {
		return domain.NewInternalError("failed to delete department", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("department", id)
	}
	return nil
}

// ============ Facilities ============

func (r *referenceRepository) ListFacilities(ctx context.Context) ([]*entity.Facility, error) {
	var models []FacilityModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, domain.NewInternalError("failed to list facilities", err)
	}
	out := make([]*entity.Facility, 0, len(models))
	for i := range models {
		out = append(out, toEntityFacility(&models[i]))
	}
	return out, nil
}

func (r *referenceRepository) CreateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	model := toModelFacility(f)
	model.ID = uuid.New().String()
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, domain.NewInternalError("failed to create facility", err)
	}
	return toEntityFacility(model), nil
}

func (r *referenceRepository) UpdateFacility(ctx context.Context, f *entity.Facility) (*entity.Facility, error) {
	model := toModelFacility(f)
	result := r.db.WithContext(ctx).Model(&FacilityModel{}).Where("id = ?", f.ID).Updates(model)
	if result.Error != nil {
		return nil, domain.NewInternalError("failed to update facility", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, domain.NewNotFoundError("facility", f.ID)
	}
	return f, nil
}

func (r *referenceRepository) DeleteFacility(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&FacilityModel{})
	if result.Error != nil {
		return domain.NewInternalError("failed to delete facility", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("facility", id)
	}
	return nil
}
