package usecase

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/mocks"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "What are the FEES?",
			want:  "what are the fees",
		},
		{
			name:  "collapses whitespace",
			input: "  what   are\tthe fees  ",
			want:  "what are the fees",
		},
		{
			name:  "same question different punctuation",
			input: "what, are the fees!!!",
			want:  "what are the fees",
		},
		{
			name:  "keeps unicode letters",
			input: "Magkano ang matrikula?",
			want:  "magkano ang matrikula",
		},
		{
			name:  "punctuation only reduces to empty",
			input: "?!...",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"What are the fees?",
		"HOW DO I ENROLL???",
		"saan ang library",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestTrackCountsMonotonically(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	repo := &mocks.MockFaqRepository{}
	uc := NewFaqUsecase(repo, logger)

	// Three phrasings of the same question.
	phrasings := []string{
		"What are the fees?",
		"what ARE the fees",
		"What, are the fees!",
	}

	var last *entity.Faq
	for i, phrasing := range phrasings {
		faq, err := uc.Track(context.Background(), phrasing)
		if err != nil {
			t.Fatalf("Track(%q) failed: %v", phrasing, err)
		}
		if faq.Count != i+1 {
			t.Errorf("after %d asks count = %d, want %d", i+1, faq.Count, i+1)
		}
		last = faq
	}

	// The stored literal text follows the latest phrasing.
	if last.Question != "What, are the fees!" {
		t.Errorf("literal question = %q, want latest phrasing", last.Question)
	}

	// All three phrasings collapsed into a single entry.
	if len(repo.Entries) != 1 {
		t.Errorf("entries = %d, want 1", len(repo.Entries))
	}
}

func TestTrackRejectsEmptyQuestion(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	uc := NewFaqUsecase(&mocks.MockFaqRepository{}, logger)

	if _, err := uc.Track(context.Background(), "?!?"); err == nil {
		t.Errorf("expected error for question that normalizes to empty")
	}
}

func TestTopFaqsDefaultLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	var gotLimit int
	repo := &mocks.MockFaqRepository{
		TopFaqsFunc: func(ctx context.Context, limit int) ([]*entity.Faq, error) {
			gotLimit = limit
			return []*entity.Faq{}, nil
		},
	}
	uc := NewFaqUsecase(repo, logger)

	if _, err := uc.TopFaqs(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != defaultTopFaqs {
		t.Errorf("limit = %d, want default %d", gotLimit, defaultTopFaqs)
	}
}
