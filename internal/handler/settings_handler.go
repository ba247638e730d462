package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler/dto"
)

// SettingsHandler handles the kiosk settings surface. Reads are public so
// the kiosk can show school contact details, updates are admin only.
type SettingsHandler struct {
	usecase domain.SettingsUsecase
	logger  *slog.Logger
}

// NewSettingsHandler creates a new settings handler.
func NewSettingsHandler(usecase domain.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// Get returns the kiosk settings.
// GET /api/v1/settings
func (h *SettingsHandler) Get(ctx context.Context, c *app.RequestContext) {
	settings, err := h.usecase.Get(ctx)
	if err != nil {
		if domain.IsNotFound(err) {
			// Nothing saved yet, the kiosk falls back to built-in details.
			SuccessResponse(c, nil)
			return
		}
		h.logger.Error("failed to load settings", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, settings)
}

// Update replaces the kiosk settings.
// PUT /api/v1/admin/settings
func (h *SettingsHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req dto.SettingsRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	settings, err := h.usecase.Update(ctx, &entity.AdminSettings{
		SchoolName:   req.SchoolName,
		SchoolMotto:  req.SchoolMotto,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
	})
	if err != nil {
		h.logger.Error("failed to update settings", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, settings)
}
