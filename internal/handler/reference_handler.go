package handler

import (
	"context"
	"log/slog"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler/dto"
)

// ReferenceHandler handles the school reference data surface. Reads are
// public for the kiosk, mutation sits behind the admin JWT group.
type ReferenceHandler struct {
	usecase domain.ReferenceUsecase
	logger  *slog.Logger
}

// NewReferenceHandler creates a new reference data handler.
func NewReferenceHandler(usecase domain.ReferenceUsecase, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		usecase: usecase,
		logger:  logger,
	}
}

// ============ Professors ============

// ListProfessors returns the faculty directory.
// GET /api/v1/professors
func (h *ReferenceHandler) ListProfessors(ctx context.Context, c *app.RequestContext) {
	professors, err := h.usecase.ListProfessors(ctx)
	if err != nil {
		h.logger.Error("failed to list professors", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, professors)
}

// CreateProfessor adds a faculty entry.
// POST /api/v1/admin/professors
func (h *ReferenceHandler) CreateProfessor(ctx context.Context, c *app.RequestContext) {
	var req dto.ProfessorRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	professor, err := h.usecase.CreateProfessor(ctx, &entity.Professor{
		Name:           req.Name,
		Department:     req.Department,
		Position:       req.Position,
		Email:          req.Email,
		Office:         req.Office,
		Specialization: req.Specialization,
	})
	if err != nil {
		h.logger.Error("failed to create professor", "error", err)
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, professor)
}

// UpdateProfessor updates a faculty entry.
// PUT /api/v1/admin/professors/:id
func (h *ReferenceHandler) UpdateProfessor(ctx context.Context, c *app.RequestContext) {
	var req dto.ProfessorRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	professor, err := h.usecase.UpdateProfessor(ctx, &entity.Professor{
		ID:             c.Param("id"),
		Name:           req.Name,
		Department:     req.Department,
		Position:       req.Position,
		Email:          req.Email,
		Office:         req.Office,
		Specialization: req.Specialization,
	})
	if err != nil {
		h.logger.Error("failed to update professor", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, professor)
}

// DeleteProfessor removes a faculty entry.
// DELETE /api/v1/admin/professors/:id
func (h *ReferenceHandler) DeleteProfessor(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.DeleteProfessor(ctx, c.Param("id")); err != nil {
		h.logger.Error("failed to delete professor", "error", err)
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}

// ============ Events ============

// ListEvents returns all events.
// GET /api/v1/events
func (h *ReferenceHandler) ListEvents(ctx context.Context, c *app.RequestContext) {
	events, err := h.usecase.ListEvents(ctx)
	if err != nil {
		h.logger.Error("failed to list events", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, events)
}

// UpcomingEvents returns events that have not happened yet.
// GET /api/v1/events/upcoming
func (h *ReferenceHandler) UpcomingEvents(ctx context.Context, c *app.RequestContext) {
	events, err := h.usecase.UpcomingEvents(ctx)
	if err != nil {
		h.logger.Error("failed to list upcoming events", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, events)
}

// CreateEvent adds a school event.
// POST /api/v1/admin/events
func (h *ReferenceHandler) CreateEvent(ctx context.Context, c *app.RequestContext) {
	var req dto.EventRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	event, err := h.usecase.CreateEvent(ctx, &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error("failed to create event", "error", err)
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, event)
}

// UpdateEvent updates a school event.
// PUT /api/v1/admin/events/:id
func (h *ReferenceHandler) UpdateEvent(ctx context.Context, c *app.RequestContext) {
	var req dto.EventRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	event, err := h.usecase.UpdateEvent(ctx, &entity.Event{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error("failed to update event", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, event)
}

// DeleteEvent removes a school event.
// DELETE /api/v1/admin/events/:id
func (h *ReferenceHandler) DeleteEvent(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.DeleteEvent(ctx, c.Param("id")); err != nil {
		h.logger.Error("failed to delete event", "error", err)
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}

// ============ Departments ============

// ListDepartments returns the department directory.
// GET /api/v1/departments
func (h *ReferenceHandler) ListDepartments(ctx context.Context, c *app.RequestContext) {
	departments, err := h.usecase.ListDepartments(ctx)
	if err != nil {
		h.logger.Error("failed to list departments", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, departments)
}

// CreateDepartment adds a department entry.
// POST /api/v1/admin/departments
func (h *ReferenceHandler) CreateDepartment(ctx context.Context, c *app.RequestContext) {
	var req dto.DepartmentRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	department, err := h.usecase.CreateDepartment(ctx, &entity.Department{
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		Building:      req.Building,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		h.logger.Error("failed to create department", "error", err)
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, department)
}

// UpdateDepartment updates a department entry.
// PUT /api/v1/admin/departments/:id
func (h *ReferenceHandler) UpdateDepartment(ctx context.Context, c *app.RequestContext) {
	var req dto.DepartmentRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	department, err := h.usecase.UpdateDepartment(ctx, &entity.Department{
		ID:            c.Param("id"),
		Name:          req.Name,
		Code:          req.Code,
		Description:   req.Description,
		Building:      req.Building,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		h.logger.Error("failed to update department", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, department)
}

// DeleteDepartment removes a department entry.
// DELETE /api/v1/admin/departments/:id
func (h *ReferenceHandler) DeleteDepartment(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.DeleteDepartment(ctx, c.Param("id")); err != nil {
		h.logger.Error("failed to delete department", "error", err)
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}

// ============ Facilities ============

// ListFacilities returns the campus facility directory.
// GET /api/v1/facilities
func (h *ReferenceHandler) ListFacilities(ctx context.Context, c *app.RequestContext) {
	facilities, err := h.usecase.ListFacilities(ctx)
	if err != nil {
		h.logger.Error("failed to list facilities", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, facilities)
}

// CreateFacility adds a facility entry.
// POST /api/v1/admin/facilities
func (h *ReferenceHandler) CreateFacility(ctx context.Context, c *app.RequestContext) {
	var req dto.FacilityRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	facility, err := h.usecase.CreateFacility(ctx, &entity.Facility{
		Name:         req.Name,
		Type:         req.Type,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Availability: req.Availability,
		Description:  req.Description,
	})
	if err != nil {
		h.logger.Error("failed to create facility", "error", err)
		ErrorResponse(c, err)
		return
	}
	CreatedResponse(c, facility)
}

// UpdateFacility updates a facility entry.
// PUT /api/v1/admin/facilities/:id
func (h *ReferenceHandler) UpdateFacility(ctx context.Context, c *app.RequestContext) {
	var req dto.FacilityRequest
	if err := c.BindJSON(&req); err != nil {
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	facility, err := h.usecase.UpdateFacility(ctx, &entity.Facility{
		ID:           c.Param("id"),
		Name:         req.Name,
		Type:         req.Type,
		Location:     req.Location,
		Capacity:     req.Capacity,
		Availability: req.Availability,
		Description:  req.Description,
	})
	if err != nil {
		h.logger.Error("failed to update facility", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, facility)
}

// DeleteFacility removes a facility entry.
// DELETE /api/v1/admin/facilities/:id
func (h *ReferenceHandler) DeleteFacility(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.DeleteFacility(ctx, c.Param("id")); err != nil {
		h.logger.Error("failed to delete facility", "error", err)
		ErrorResponse(c, err)
		return
	}
	NoContentResponse(c)
}
