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

// settingsRepository stores the single admin settings row.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository instance.
func NewSettingsRepository(db *gorm.DB) domain.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the settings row, or ErrNotFound when nothing has been saved.
func (r *settingsRepository) Get(ctx context.Context) (*entity.AdminSettings, error) {
	var model AdminSettingsModel
	err := r.db.WithContext(ctx).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("settings", "admin")
		}
		return nil, domain.NewInternalError("failed to load settings", err)
	}
	return toEntitySettings(&model), nil
}

// Upsert replaces the settings row, creating it on first save.
func (r *settingsRepository) Upsert(ctx context.Context, s *entity.AdminSettings) (*entity.AdminSettings, error) {
	var model AdminSettingsModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&model).Error
		switch {
		case err == nil:
			model.SchoolName = s.SchoolName
			model.SchoolMotto = s.SchoolMotto
			model.ContactEmail = s.ContactEmail
			model.ContactPhone = s.ContactPhone
			model.Address = s.Address
			model.UpdatedAt = time.Now()
			return tx.Save(&model).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			model = AdminSettingsModel{
				ID:           uuid.New().String(),
				SchoolName:   s.SchoolName,
				SchoolMotto:  s.SchoolMotto,
				ContactEmail: s.ContactEmail,
				ContactPhone: s.ContactPhone,
				Address:      s.Address,
				UpdatedAt:    time.Now(),
			}
			return tx.Create(&model).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to save settings", err)
	}

	return toEntitySettings(&model), nil
}
