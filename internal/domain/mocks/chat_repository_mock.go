package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// MockChatRepository is a mock implementation of domain.ChatRepository.
type MockChatRepository struct {
	CreateMessageFunc  func(ctx context.Context, sessionID, role, content string) (*entity.ChatMessage, error)
	RecentMessagesFunc func(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error)
	SessionHistoryFunc func(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)
	ClearAllFunc       func(ctx context.Context) error
	AnalyticsFunc      func(ctx context.Context) (*entity.ChatAnalytics, error)

	// Created records every message persisted through the mock, in order.
	Created []*entity.ChatMessage
}

// CreateMessage mocks the CreateMessage method.
func (m *MockChatRepository) CreateMessage(ctx context.Context, sessionID, role, content string) (*entity.ChatMessage, error) {
	if m.CreateMessageFunc != nil {
		msg, err := m.CreateMessageFunc(ctx, sessionID, role, content)
		if err == nil && msg != nil {
			m.Created = append(m.Created, msg)
		}
		return msg, err
	}
	msg := &entity.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
	m.Created = append(m.Created, msg)
	return msg, nil
}

// RecentMessages mocks the RecentMessages method.
func (m *MockChatRepository) RecentMessages(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error) {
	if m.RecentMessagesFunc != nil {
		return m.RecentMessagesFunc(ctx, sessionID, limit)
	}
	return []*entity.ChatMessage{}, nil
}

// SessionHistory mocks the SessionHistory method.
func (m *MockChatRepository) SessionHistory(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	if m.SessionHistoryFunc != nil {
		return m.SessionHistoryFunc(ctx, sessionID)
	}
	return []*entity.ChatMessage{}, nil
}

// ClearAll mocks the ClearAll method.
func (m *MockChatRepository) ClearAll(ctx context.Context) error {
	if m.ClearAllFunc != nil {
		return m.ClearAllFunc(ctx)
	}
	return nil
}

// Analytics mocks the Analytics method.
func (m *MockChatRepository) Analytics(ctx context.Context) (*entity.ChatAnalytics, error) {
	if m.AnalyticsFunc != nil {
		return m.AnalyticsFunc(ctx)
	}
	return &entity.ChatAnalytics{}, nil
}
