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

// faqRepository is the MySQL implementation of FaqRepository.
type faqRepository struct {
	db *gorm.DB
}

// NewFaqRepository creates a new FaqRepository instance.
func NewFaqRepository(db *gorm.DB) domain.FaqRepository {
	return &faqRepository{
		db: db,
	}
}

// Upsert increments the counter for an existing normalized question or
// inserts a fresh row with count 1. The literal question text always
// follows the most recent phrasing.
func (r *faqRepository) Upsert(ctx context.Context, question, normalizedQuestion string) (*entity.Faq, error) {
	var model FaqModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("normalized_question = ?", normalizedQuestion).First(&model).Error
		switch {
		case err == nil:
			model.Count++
			model.Question = question
			model.LastAsked = time.Now()
			return tx.Save(&model).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			model = FaqModel{
				ID:                 uuid.New().String(),
				Question:           question,
				NormalizedQuestion: normalizedQuestion,
				Count:              1,
				LastAsked:          time.Now(),
			}
			return tx.Create(&model).Error
		default:
			return err
		}
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to upsert faq", err)
	}

	return toEntityFaq(&model), nil
}

// TopFaqs returns the most frequently asked questions, ties broken by
// recency.
func (r *faqRepository) TopFaqs(ctx context.Context, limit int) ([]*entity.Faq, error) {
	var models []FaqModel
	err := r.db.WithContext(ctx).
		Order("count DESC, last_asked DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domain.NewInternalError("failed to load top faqs", err)
	}

	out := make([]*entity.Faq, 0, len(models))
	for i := range models {
		out = append(out, toEntityFaq(&models[i]))
	}
	return out, nil
}
