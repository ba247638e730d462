package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// defaultTopFaqs is the list size when the caller does not ask for one.
const defaultTopFaqs = 10

// nonWord matches everything outside letters, digits and whitespace.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

// whitespaceRun collapses interior whitespace runs.
var whitespaceRun = regexp.MustCompile(`\s+`)

// faqUsecase tracks how often each distinct question is asked.
type faqUsecase struct {
	faqRepo domain.FaqRepository
	logger  *slog.Logger
}

// NewFaqUsecase creates a new FAQ tracker.
func NewFaqUsecase(faqRepo domain.FaqRepository, logger *slog.Logger) domain.FaqUsecase {
	return &faqUsecase{
		faqRepo: faqRepo,
		logger:  logger,
	}
}

// Normalize reduces a question to its dedup key: lowercase, punctuation
// stripped, whitespace collapsed. "What are the fees?" and "what ARE the
// fees" count as the same question.
func Normalize(question string) string {
	s := strings.ToLower(question)
	s = nonWord.ReplaceAllString(s, "")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Track bumps the counter for the normalized form of question. The literal
// text stored alongside always reflects the latest phrasing.
func (u *faqUsecase) Track(ctx context.Context, question string) (*entity.Faq, error) {
	normalized := Normalize(question)
	if normalized == "" {
		return nil, fmt.Errorf("%w: question is empty after normalization", domain.ErrInvalidInput)
	}
	return u.faqRepo.Upsert(ctx, question, normalized)
}

// TopFaqs returns the most asked questions, count descending.
func (u *faqUsecase) TopFaqs(ctx context.Context, limit int) ([]*entity.Faq, error) {
	if limit <= 0 {
		limit = defaultTopFaqs
	}
	return u.faqRepo.TopFaqs(ctx, limit)
}
