package handler

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/handler/dto"
)

// ChatHandler handles the public kiosk chat surface plus the admin chat
// operations.
type ChatHandler struct {
	usecase domain.ChatUsecase
	faq     domain.FaqUsecase
	logger  *slog.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(usecase domain.ChatUsecase, faq domain.FaqUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		usecase: usecase,
		faq:     faq,
		logger:  logger,
	}
}

// Chat runs one kiosk conversation turn.
// POST /api/v1/chat
func (h *ChatHandler) Chat(ctx context.Context, c *app.RequestContext) {
	var req dto.ChatRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind chat request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	h.logger.Info("chat request received",
		"session_id", req.SessionID,
		"language", req.Language,
	)

	result, err := h.usecase.Chat(ctx, &domain.ChatRequest{
		SessionID: req.SessionID,
		Message:   req.Message,
		Language:  req.Language,
	})
	if err != nil {
		h.logger.Error("chat failed", "session_id", req.SessionID, "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.ChatResponse{
		Message:         toChatMessageDTO(result.Message),
		IsSchoolRelated: result.OnTopic,
	})
}

// History returns a session's transcript, oldest first.
// GET /api/v1/chat/history/:sessionId
func (h *ChatHandler) History(ctx context.Context, c *app.RequestContext) {
	sessionID := c.Param("sessionId")

	messages, err := h.usecase.History(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to load history", "session_id", sessionID, "error", err)
		ErrorResponse(c, err)
		return
	}

	out := make([]dto.ChatMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, toChatMessageDTO(msg))
	}
	SuccessResponse(c, out)
}

// Reset marks the end of a kiosk session.
// POST /api/v1/chat/reset
func (h *ChatHandler) Reset(ctx context.Context, c *app.RequestContext) {
	var req dto.ResetRequest
	if err := c.BindJSON(&req); err != nil {
		h.logger.Error("failed to bind reset request", "error", err)
		ErrorResponse(c, domain.ErrInvalidInput)
		return
	}

	if err := h.usecase.Reset(ctx, req.SessionID); err != nil {
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, map[string]string{"message": "session reset"})
}

// TopFaqs returns the most asked questions.
// GET /api/v1/faqs
func (h *ChatHandler) TopFaqs(ctx context.Context, c *app.RequestContext) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	faqs, err := h.faq.TopFaqs(ctx, limit)
	if err != nil {
		h.logger.Error("failed to load faqs", "error", err)
		ErrorResponse(c, err)
		return
	}

	out := make([]dto.FaqEntry, 0, len(faqs))
	for _, faq := range faqs {
		out = append(out, dto.FaqEntry{
			ID:        faq.ID,
			Question:  faq.Question,
			Count:     faq.Count,
			LastAsked: faq.LastAsked,
		})
	}
	SuccessResponse(c, out)
}

// ClearHistory wipes the whole message log. Admin only.
// DELETE /api/v1/admin/chat/history
func (h *ChatHandler) ClearHistory(ctx context.Context, c *app.RequestContext) {
	if err := h.usecase.ClearHistory(ctx); err != nil {
		h.logger.Error("failed to clear history", "error", err)
		ErrorResponse(c, err)
		return
	}
	SuccessResponse(c, map[string]string{"message": "chat history cleared"})
}

// Analytics returns aggregate message counts. Admin only.
// GET /api/v1/admin/analytics
func (h *ChatHandler) Analytics(ctx context.Context, c *app.RequestContext) {
	analytics, err := h.usecase.Analytics(ctx)
	if err != nil {
		h.logger.Error("failed to load analytics", "error", err)
		ErrorResponse(c, err)
		return
	}

	SuccessResponse(c, dto.AnalyticsResponse{
		TotalMessages:     analytics.TotalMessages,
		UserMessages:      analytics.UserMessages,
		AssistantMessages: analytics.AssistantMessages,
	})
}

func toChatMessageDTO(msg *entity.ChatMessage) dto.ChatMessage {
	return dto.ChatMessage{
		ID:        msg.ID,
		SessionID: msg.SessionID,
		Role:      msg.Role,
		Content:   msg.Content,
		Timestamp: msg.Timestamp,
	}
}
