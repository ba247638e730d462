package database

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// chatRepository is the MySQL implementation of ChatRepository.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new ChatRepository instance.
func NewChatRepository(db *gorm.DB) domain.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// CreateMessage persists a single chat turn.
func (r *chatRepository) CreateMessage(ctx context.Context, sessionID, role, content string) (*entity.ChatMessage, error) {
	model := ChatMessageModel{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, domain.NewInternalError("failed to save chat message", err)
	}

	return toEntityChatMessage(&model), nil
}

// RecentMessages returns the latest messages of a session in chronological
// order. The newest rows are selected first, then reversed.
func (r *chatRepository) RecentMessages(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error) {
	var models []ChatMessageModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to load recent messages", err)
	}

	for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
		models[i], models[j] = models[j], models[i]
	}

	return toEntityChatMessages(models), nil
}

// SessionHistory returns the full session transcript oldest first.
func (r *chatRepository) SessionHistory(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	var models []ChatMessageModel
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&models).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to load session history", err)
	}

	return toEntityChatMessages(models), nil
}

// ClearAll removes every chat message across all sessions.
func (r *chatRepository) ClearAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&ChatMessageModel{}).Error; err != nil {
		return domain.NewInternalError("failed to clear chat history", err)
	}
	return nil
}

// Analytics returns message counts split by role.
func (r *chatRepository) Analytics(ctx context.Context) (*entity.ChatAnalytics, error) {
	var total, user, assistant int64

	if err := r.db.WithContext(ctx).Model(&ChatMessageModel{}).Count(&total).Error; err != nil {
		return nil, domain.NewInternalError("failed to count messages", err)
	}
	if err := r.db.WithContext(ctx).Model(&ChatMessageModel{}).
		Where("role = ?", entity.RoleUser).Count(&user).Error; err != nil {
		return nil, domain.NewInternalError("failed to count user messages", err)
	}
	if err := r.db.WithContext(ctx).Model(&ChatMessageModel{}).
		Where("role = ?", entity.RoleAssistant).Count(&assistant).Error; err != nil {
		return nil, domain.NewInternalError("failed to count assistant messages", err)
	}

	return &entity.ChatAnalytics{
		TotalMessages:     int(total),
		UserMessages:      int(user),
		AssistantMessages: int(assistant),
	}, nil
}
