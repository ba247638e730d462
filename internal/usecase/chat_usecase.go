package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain"
	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

const (
	// historyFetchLimit bounds how much of a session is loaded per turn.
	historyFetchLimit = 20

	// generationWindow is how many trailing entries of the fetched history
	// the generator sees.
	generationWindow = 6

	// maxMessageChars caps a single kiosk question.
	maxMessageChars = 2000
)

// fallbackAnswer replaces an empty model completion.
const fallbackAnswer = "I apologize, but I couldn't generate a response. Please try again."

// redirectAnswers is the fixed reply for off-topic questions, per language.
var redirectAnswers = map[string]string{
	entity.LanguageEnglish: "I can only help with school-related questions about Westmead International School. Please ask about our courses, campus facilities, admission procedures, schedules, academic programs, or student services. You can also visit our website at westmead-is.edu.ph for more information.",
	entity.LanguageTagalog: "Makakatulong lamang ako sa mga tanong tungkol sa Westmead International School. Magtanong tungkol sa aming mga kurso, pasilidad ng campus, proseso ng admisyon, iskedyul, programang akademiko, o serbisyo para sa mga estudyante. Maaari ring bisitahin ang aming website sa westmead-is.edu.ph para sa karagdagang impormasyon.",
}

// chatUsecase orchestrates one kiosk conversation turn. It coordinates the
// message log, the topic classifier, the context assembler, the generator
// and FAQ tracking.
type chatUsecase struct {
	chatRepo  domain.ChatRepository
	llm       domain.LLMClient
	assembler domain.ContextAssembler
	faq       domain.FaqUsecase
	logger    *slog.Logger
}

// NewChatUsecase creates a new chat orchestrator.
func NewChatUsecase(
	chatRepo domain.ChatRepository,
	llm domain.LLMClient,
	assembler domain.ContextAssembler,
	faq domain.FaqUsecase,
	logger *slog.Logger,
) domain.ChatUsecase {
	return &chatUsecase{
		chatRepo:  chatRepo,
		llm:       llm,
		assembler: assembler,
		faq:       faq,
		logger:    logger,
	}
}

// Chat runs one full turn:
//  1. validate the request
//  2. load the session's recent history
//  3. persist the user message
//  4. classify the isolated question
//  5. off topic: fixed redirect; on topic: assemble briefing and generate
//  6. persist the assistant message
//  7. on topic only: track the question for FAQ analytics
//
// The user message stays in the log even when a later step fails, an
// operator can see what was asked.
func (u *chatUsecase) Chat(ctx context.Context, req *domain.ChatRequest) (*domain.ChatResult, error) {
	if err := u.validateChatRequest(req); err != nil {
		return nil, err
	}

	// 1. Load history before appending the new message so the generator
	// window never contains the question twice.
	history, err := u.chatRepo.RecentMessages(ctx, req.SessionID, historyFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	// 2. Persist the user message.
	if _, err := u.chatRepo.CreateMessage(ctx, req.SessionID, entity.RoleUser, req.Message); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	// 3. Classify the question on its own, without history. A follow-up like
	// "what about the fees?" stands or falls by its own wording.
	verdict, err := u.llm.Classify(ctx, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to classify message: %w", err)
	}

	var answer string
	if !verdict.OnTopic {
		u.logger.Info("off-topic question redirected",
			"session_id", req.SessionID,
			"rationale", verdict.Rationale,
		)
		answer = redirectAnswer(req.Language)
	} else {
		// 4. Assemble the briefing and generate.
		system, err := u.assembler.Assemble(ctx, req.Language)
		if err != nil {
			return nil, fmt.Errorf("failed to assemble context: %w", err)
		}

		window := history
		if len(window) > generationWindow {
			window = window[len(window)-generationWindow:]
		}

		answer, err = u.llm.Generate(ctx, system, window, req.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to generate answer: %w", err)
		}
		if answer == "" {
			answer = fallbackAnswer
		}
	}

	// 5. Persist the assistant message.
	saved, err := u.chatRepo.CreateMessage(ctx, req.SessionID, entity.RoleAssistant, answer)
	if err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	// 6. Track FAQ frequency for on-topic questions only. Tracking failures
	// never break the answer, the reply is already committed.
	if verdict.OnTopic {
		if _, err := u.faq.Track(ctx, req.Message); err != nil {
			u.logger.Warn("faq tracking failed",
				"session_id", req.SessionID,
				"error", err,
			)
		}
	}

	return &domain.ChatResult{
		Message: saved,
		OnTopic: verdict.OnTopic,
	}, nil
}

// History returns the session transcript, oldest first.
func (u *chatUsecase) History(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, fmt.Errorf("%w: invalid session_id format (must be UUID)", domain.ErrInvalidInput)
	}
	return u.chatRepo.SessionHistory(ctx, sessionID)
}

// Reset marks the end of a kiosk session. The log is kept for analytics,
// the client starts over with a fresh session id.
func (u *chatUsecase) Reset(ctx context.Context, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return fmt.Errorf("%w: invalid session_id format (must be UUID)", domain.ErrInvalidInput)
	}
	u.logger.Info("session reset", "session_id", sessionID)
	return nil
}

// ClearHistory wipes the entire message log. Admin only.
func (u *chatUsecase) ClearHistory(ctx context.Context) error {
	if err := u.chatRepo.ClearAll(ctx); err != nil {
		return err
	}
	u.logger.Info("chat history cleared")
	return nil
}

// Analytics returns aggregate message counts. Admin only.
func (u *chatUsecase) Analytics(ctx context.Context) (*entity.ChatAnalytics, error) {
	return u.chatRepo.Analytics(ctx)
}

func (u *chatUsecase) validateChatRequest(req *domain.ChatRequest) error {
	if req == nil {
		return domain.ErrInvalidInput
	}

	if req.SessionID == "" {
		return fmt.Errorf("%w: session_id is required", domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.SessionID); err != nil {
		return fmt.Errorf("%w: invalid session_id format (must be UUID)", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(req.Message) == "" {
		return fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if len(req.Message) > maxMessageChars {
		return fmt.Errorf("%w: message too long (max %d characters)", domain.ErrInvalidInput, maxMessageChars)
	}

	switch req.Language {
	case "":
		req.Language = entity.LanguageEnglish
	case entity.LanguageEnglish, entity.LanguageTagalog:
	default:
		return fmt.Errorf("%w: unsupported language %q", domain.ErrInvalidInput, req.Language)
	}

	return nil
}

func redirectAnswer(language string) string {
	if answer, ok := redirectAnswers[language]; ok {
		return answer
	}
	return redirectAnswers[entity.LanguageEnglish]
}
