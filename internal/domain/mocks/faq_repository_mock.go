package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// MockFaqRepository is a mock implementation of domain.FaqRepository.
// Without an UpsertFunc override it keeps an in-memory counter table so
// monotonicity tests can run against it directly.
type MockFaqRepository struct {
	UpsertFunc  func(ctx context.Context, question, normalizedQuestion string) (*entity.Faq, error)
	TopFaqsFunc func(ctx context.Context, limit int) ([]*entity.Faq, error)

	Entries map[string]*entity.Faq
}

// Upsert mocks the Upsert method.
func (m *MockFaqRepository) Upsert(ctx context.Context, question, normalizedQuestion string) (*entity.Faq, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, question, normalizedQuestion)
	}
	if m.Entries == nil {
		m.Entries = make(map[string]*entity.Faq)
	}
	if existing, ok := m.Entries[normalizedQuestion]; ok {
		existing.Count++
		existing.Question = question
		existing.LastAsked = time.Now()
		return existing, nil
	}
	faq := &entity.Faq{
		ID:                 uuid.New().String(),
		Question:           question,
		NormalizedQuestion: normalizedQuestion,
		Count:              1,
		LastAsked:          time.Now(),
	}
	m.Entries[normalizedQuestion] = faq
	return faq, nil
}

// TopFaqs mocks the TopFaqs method.
func (m *MockFaqRepository) TopFaqs(ctx context.Context, limit int) ([]*entity.Faq, error) {
	if m.TopFaqsFunc != nil {
		return m.TopFaqsFunc(ctx, limit)
	}
	return []*entity.Faq{}, nil
}
