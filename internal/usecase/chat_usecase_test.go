package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/mocks"
)

func newTestChatUsecase(chatRepo *mocks.MockChatRepository, llm *mocks.MockLLMClient) domain.ChatUsecase {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	faq := NewFaqUsecase(&mocks.MockFaqRepository{}, logger)
	return NewChatUsecase(chatRepo, llm, &mocks.MockContextAssembler{}, faq, logger)
}

func TestChatOnTopic(t *testing.T) {
	chatRepo := &mocks.MockChatRepository{}
	llm := &mocks.MockLLMClient{
		GenerateFunc: func(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error) {
			return "Tuition is P1,500 per unit for A.Y. 2025-2026.", nil
		},
	}
	uc := newTestChatUsecase(chatRepo, llm)

	sessionID := uuid.New().String()
	result, err := uc.Chat(context.Background(), &domain.ChatRequest{
		SessionID: sessionID,
		Message:   "How much is the tuition fee?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.OnTopic {
		t.Errorf("expected on-topic result")
	}
	if result.Message.Role != entity.RoleAssistant {
		t.Errorf("result role = %q, want %q", result.Message.Role, entity.RoleAssistant)
	}
	if result.Message.Content != "Tuition is P1,500 per unit for A.Y. 2025-2026." {
		t.Errorf("unexpected answer: %q", result.Message.Content)
	}

	// Both sides of the turn must be in the log, user first.
	if len(chatRepo.Created) != 2 {
		t.Fatalf("persisted %d messages, want 2", len(chatRepo.Created))
	}
	if chatRepo.Created[0].Role != entity.RoleUser {
		t.Errorf("first persisted role = %q, want %q", chatRepo.Created[0].Role, entity.RoleUser)
	}
	if chatRepo.Created[1].Role != entity.RoleAssistant {
		t.Errorf("second persisted role = %q, want %q", chatRepo.Created[1].Role, entity.RoleAssistant)
	}

	if llm.ClassifyCalls != 1 || llm.GenerateCalls != 1 {
		t.Errorf("classify=%d generate=%d, want 1 and 1", llm.ClassifyCalls, llm.GenerateCalls)
	}
}

func TestChatOffTopicShortCircuit(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{name: "english redirect", language: entity.LanguageEnglish, want: redirectAnswers[entity.LanguageEnglish]},
		{name: "tagalog redirect", language: entity.LanguageTagalog, want: redirectAnswers[entity.LanguageTagalog]},
		{name: "default language is english", language: "", want: redirectAnswers[entity.LanguageEnglish]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatRepo := &mocks.MockChatRepository{}
			llm := &mocks.MockLLMClient{
				ClassifyFunc: func(ctx context.Context, message string) (entity.Verdict, error) {
					return entity.Verdict{OnTopic: false, Rationale: "weather question"}, nil
				},
			}
			faqRepo := &mocks.MockFaqRepository{}
			logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
			uc := NewChatUsecase(chatRepo, llm, &mocks.MockContextAssembler{}, NewFaqUsecase(faqRepo, logger), logger)

			result, err := uc.Chat(context.Background(), &domain.ChatRequest{
				SessionID: uuid.New().String(),
				Message:   "Will it rain tomorrow?",
				Language:  tt.language,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.OnTopic {
				t.Errorf("expected off-topic result")
			}
			if result.Message.Content != tt.want {
				t.Errorf("redirect = %q, want %q", result.Message.Content, tt.want)
			}

			// The generator must never run for off-topic questions, and the
			// question must not pollute the FAQ counters.
			if llm.GenerateCalls != 0 {
				t.Errorf("generate called %d times on off-topic question", llm.GenerateCalls)
			}
			if len(faqRepo.Entries) != 0 {
				t.Errorf("off-topic question was tracked as FAQ")
			}

			// The off-topic exchange is still persisted.
			if len(chatRepo.Created) != 2 {
				t.Errorf("persisted %d messages, want 2", len(chatRepo.Created))
			}
		})
	}
}

func TestChatGenerationWindow(t *testing.T) {
	sessionID := uuid.New().String()

	// Ten prior entries in the session; the generator may only see the
	// trailing six.
	var history []*entity.ChatMessage
	for i := 0; i < 10; i++ {
		role := entity.RoleUser
		if i%2 == 1 {
			role = entity.RoleAssistant
		}
		history = append(history, &entity.ChatMessage{
			ID:        uuid.New().String(),
			SessionID: sessionID,
			Role:      role,
			Content:   fmt.Sprintf("turn %d", i),
			Timestamp: time.Now(),
		})
	}

	chatRepo := &mocks.MockChatRepository{
		RecentMessagesFunc: func(ctx context.Context, sid string, limit int) ([]*entity.ChatMessage, error) {
			if limit != historyFetchLimit {
				t.Errorf("history fetch limit = %d, want %d", limit, historyFetchLimit)
			}
			return history, nil
		},
	}
	llm := &mocks.MockLLMClient{}
	uc := newTestChatUsecase(chatRepo, llm)

	_, err := uc.Chat(context.Background(), &domain.ChatRequest{
		SessionID: sessionID,
		Message:   "And the admission requirements?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(llm.LastHistory) != generationWindow {
		t.Fatalf("generator saw %d history entries, want %d", len(llm.LastHistory), generationWindow)
	}
	if llm.LastHistory[0].Content != "turn 4" {
		t.Errorf("window starts at %q, want %q", llm.LastHistory[0].Content, "turn 4")
	}
	if llm.LastHistory[5].Content != "turn 9" {
		t.Errorf("window ends at %q, want %q", llm.LastHistory[5].Content, "turn 9")
	}
}

func TestChatEmptyCompletionFallback(t *testing.T) {
	chatRepo := &mocks.MockChatRepository{}
	llm := &mocks.MockLLMClient{
		GenerateFunc: func(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error) {
			return "", nil
		},
	}
	uc := newTestChatUsecase(chatRepo, llm)

	result, err := uc.Chat(context.Background(), &domain.ChatRequest{
		SessionID: uuid.New().String(),
		Message:   "Tell me about the scholarships",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Message.Content != fallbackAnswer {
		t.Errorf("answer = %q, want fallback %q", result.Message.Content, fallbackAnswer)
	}
}

func TestChatClassifierFailureKeepsUserMessage(t *testing.T) {
	chatRepo := &mocks.MockChatRepository{}
	llm := &mocks.MockLLMClient{
		ClassifyFunc: func(ctx context.Context, message string) (entity.Verdict, error) {
			return entity.Verdict{}, domain.NewInternalError("classification request failed", fmt.Errorf("connection refused"))
		},
	}
	uc := newTestChatUsecase(chatRepo, llm)

	_, err := uc.Chat(context.Background(), &domain.ChatRequest{
		SessionID: uuid.New().String(),
		Message:   "What programs do you offer?",
	})
	if err == nil {
		t.Fatalf("expected error when classifier transport fails")
	}
	if !domain.IsInternalError(err) {
		t.Errorf("error = %v, want internal error", err)
	}

	// The question was persisted before the failure and must stay.
	if len(chatRepo.Created) != 1 {
		t.Fatalf("persisted %d messages, want 1", len(chatRepo.Created))
	}
	if chatRepo.Created[0].Role != entity.RoleUser {
		t.Errorf("persisted role = %q, want %q", chatRepo.Created[0].Role, entity.RoleUser)
	}
}

func TestChatValidation(t *testing.T) {
	tests := []struct {
		name        string
		req         *domain.ChatRequest
		errContains string
	}{
		{
			name:        "nil request",
			req:         nil,
			errContains: "invalid input",
		},
		{
			name:        "missing session id",
			req:         &domain.ChatRequest{Message: "hello"},
			errContains: "session_id is required",
		},
		{
			name:        "malformed session id",
			req:         &domain.ChatRequest{SessionID: "kiosk-1", Message: "hello"},
			errContains: "invalid session_id",
		},
		{
			name:        "blank message",
			req:         &domain.ChatRequest{SessionID: uuid.New().String(), Message: "   "},
			errContains: "message is required",
		},
		{
			name:        "oversized message",
			req:         &domain.ChatRequest{SessionID: uuid.New().String(), Message: strings.Repeat("a", maxMessageChars+1)},
			errContains: "message too long",
		},
		{
			name:        "unsupported language",
			req:         &domain.ChatRequest{SessionID: uuid.New().String(), Message: "hello", Language: "french"},
			errContains: "unsupported language",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chatRepo := &mocks.MockChatRepository{}
			llm := &mocks.MockLLMClient{}
			uc := newTestChatUsecase(chatRepo, llm)

			_, err := uc.Chat(context.Background(), tt.req)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error = %v, want it to contain %q", err, tt.errContains)
			}

			// Invalid requests never reach persistence or the model.
			if len(chatRepo.Created) != 0 {
				t.Errorf("invalid request persisted %d messages", len(chatRepo.Created))
			}
			if llm.ClassifyCalls != 0 {
				t.Errorf("invalid request reached the classifier")
			}
		})
	}
}

func TestHistoryRejectsMalformedSession(t *testing.T) {
	uc := newTestChatUsecase(&mocks.MockChatRepository{}, &mocks.MockLLMClient{})

	if _, err := uc.History(context.Background(), "not-a-uuid"); err == nil {
		t.Errorf("expected error for malformed session id")
	}
	if err := uc.Reset(context.Background(), "not-a-uuid"); err == nil {
		t.Errorf("expected error for malformed session id")
	}
}
