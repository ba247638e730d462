package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// settingsUsecase reads and updates the singleton kiosk settings row.
type settingsUsecase struct {
	settingsRepo domain.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsUsecase creates a new settings usecase.
func NewSettingsUsecase(settingsRepo domain.SettingsRepository, logger *slog.Logger) domain.SettingsUsecase {
	return &settingsUsecase{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*entity.AdminSettings, error) {
	return u.settingsRepo.Get(ctx)
}

func (u *settingsUsecase) Update(ctx context.Context, s *entity.AdminSettings) (*entity.AdminSettings, error) {
	if strings.TrimSpace(s.SchoolName) == "" {
		return nil, fmt.Errorf("%w: school name is required", domain.ErrInvalidInput)
	}
	saved, err := u.settingsRepo.Upsert(ctx, s)
	if err != nil {
		return nil, err
	}
	u.logger.Info("settings updated", "school_name", saved.SchoolName)
	return saved, nil
}
