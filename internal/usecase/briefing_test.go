package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/mocks"
)

// testSettingsRepository returns a fixed settings row.
type testSettingsRepository struct {
	settings *entity.AdminSettings
}

func (r *testSettingsRepository) Get(ctx context.Context) (*entity.AdminSettings, error) {
	if r.settings == nil {
		return nil, domain.NewNotFoundError("settings", "admin")
	}
	return r.settings, nil
}

func (r *testSettingsRepository) Upsert(ctx context.Context, s *entity.AdminSettings) (*entity.AdminSettings, error) {
	r.settings = s
	return s, nil
}

func TestAssembleIncludesReferenceData(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	refRepo := &mocks.MockReferenceRepository{
		ListProfessorsFunc: func(ctx context.Context) ([]*entity.Professor, error) {
			return []*entity.Professor{
				{Name: "Dr. Maria Santos", Position: "Dean", Department: "College of Engineering", Office: "Room 201"},
			}, nil
		},
		UpcomingEventsFunc: func(ctx context.Context, now time.Time) ([]*entity.Event, error) {
			return []*entity.Event{
				{Title: "Foundation Day", EventDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Location: "Main Gym"},
			}, nil
		},
	}
	settingsRepo := &testSettingsRepository{
		settings: &entity.AdminSettings{SchoolName: "Westmead International School", ContactPhone: "+63 908 655 5521"},
	}

	assembler := NewBriefingAssembler(refRepo, settingsRepo, 20, logger)
	briefing, err := assembler.Assemble(context.Background(), entity.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Westmead International School",
		"FACULTY DIRECTORY",
		"Dr. Maria Santos",
		"UPCOMING EVENTS",
		"Foundation Day",
		"September 15, 2026",
		"CURRENT SCHOOL CONTACT DETAILS",
	} {
		if !strings.Contains(briefing, want) {
			t.Errorf("briefing missing %q", want)
		}
	}

	// English briefings carry no language directive.
	if strings.Contains(briefing, "Answer in Tagalog") {
		t.Errorf("english briefing contains tagalog directive")
	}
}

func TestAssembleOmitsEmptyCategories(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	assembler := NewBriefingAssembler(&mocks.MockReferenceRepository{}, &testSettingsRepository{}, 20, logger)

	briefing, err := assembler.Assemble(context.Background(), entity.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, header := range []string{
		"FACULTY DIRECTORY",
		"UPCOMING EVENTS",
		"DEPARTMENT DIRECTORY",
		"CAMPUS FACILITIES",
		"CURRENT SCHOOL CONTACT DETAILS",
	} {
		if strings.Contains(briefing, header) {
			t.Errorf("empty category %q present in briefing", header)
		}
	}

	// The fixed knowledge base is always there.
	if !strings.Contains(briefing, "Westmead International School") {
		t.Errorf("briefing missing knowledge base")
	}
}

func TestAssembleCapsCategories(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	refRepo := &mocks.MockReferenceRepository{
		ListProfessorsFunc: func(ctx context.Context) ([]*entity.Professor, error) {
			professors := make([]*entity.Professor, 30)
			for i := range professors {
				professors[i] = &entity.Professor{
					Name:       fmt.Sprintf("Professor %02d", i),
					Position:   "Instructor",
					Department: "CAS",
				}
			}
			return professors, nil
		},
	}

	assembler := NewBriefingAssembler(refRepo, &testSettingsRepository{}, 5, logger)
	briefing, err := assembler.Assemble(context.Background(), entity.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := strings.Count(briefing, "Professor "); got != 5 {
		t.Errorf("briefing lists %d professors, want cap of 5", got)
	}
}

func TestAssembleTagalogDirective(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	assembler := NewBriefingAssembler(&mocks.MockReferenceRepository{}, &testSettingsRepository{}, 20, logger)

	briefing, err := assembler.Assemble(context.Background(), entity.LanguageTagalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(briefing, "Answer in Tagalog") {
		t.Errorf("tagalog briefing missing language directive")
	}
}

func TestAssembleSurvivesRepositoryFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	refRepo := &mocks.MockReferenceRepository{
		ListProfessorsFunc: func(ctx context.Context) ([]*entity.Professor, error) {
			return nil, fmt.Errorf("table lock timeout")
		},
	}

	assembler := NewBriefingAssembler(refRepo, &testSettingsRepository{}, 20, logger)
	briefing, err := assembler.Assemble(context.Background(), entity.LanguageEnglish)
	if err != nil {
		t.Fatalf("reference failure must not fail the turn: %v", err)
	}
	if !strings.Contains(briefing, "Westmead International School") {
		t.Errorf("briefing missing knowledge base after partial failure")
	}
}
