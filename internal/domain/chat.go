package domain

import (
	"context"

	"github.com/westmead-kiosk/kiosk-apiserver/internal/domain/entity"
)

// ============ Usecase-internal DTOs ============

// ChatRequest is the internal chat request (usecase layer).
type ChatRequest struct {
	SessionID string
	Message   string
	Language  string // english (default) or tagalog
}

// ChatResult is the outcome of one orchestrated turn.
type ChatResult struct {
	Message *entity.ChatMessage // persisted assistant message
	OnTopic bool
}

// ============ Repository interfaces ============

// ChatRepository persists the append-only message log.
type ChatRepository interface {
	// CreateMessage appends a message with a generated id and timestamp.
	CreateMessage(ctx context.Context, sessionID, role, content string) (*entity.ChatMessage, error)

	// RecentMessages returns the most recent limit messages of a session,
	// newest first.
	RecentMessages(ctx context.Context, sessionID string, limit int) ([]*entity.ChatMessage, error)

	// SessionHistory returns all messages of a session, oldest first.
	SessionHistory(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)

	// ClearAll deletes the entire message log (admin bulk clear).
	ClearAll(ctx context.Context) error

	// Analytics returns aggregate message counts.
	Analytics(ctx context.Context) (*entity.ChatAnalytics, error)
}

// FaqRepository persists question frequency counters.
type FaqRepository interface {
	// Upsert bumps the counter for normalizedQuestion, overwriting the literal
	// question and advancing lastAsked; inserts with count=1 when missing.
	Upsert(ctx context.Context, question, normalizedQuestion string) (*entity.Faq, error)

	// TopFaqs returns the top limit entries by count descending.
	TopFaqs(ctx context.Context, limit int) ([]*entity.Faq, error)
}

// ============ Model client interface ============

// LLMClient is the outbound transport to the language model API.
type LLMClient interface {
	// Classify labels an isolated utterance as in-scope or out-of-scope for
	// the school domain. It never sees conversation history.
	Classify(ctx context.Context, message string) (entity.Verdict, error)

	// Generate produces the assistant reply from the assembled system context,
	// a bounded history window and the new user message.
	Generate(ctx context.Context, system string, history []*entity.ChatMessage, message string) (string, error)
}

// ContextAssembler builds the generator's system context.
type ContextAssembler interface {
	// Assemble composes the fixed knowledge base, the live reference briefing
	// and the language directive.
	Assemble(ctx context.Context, language string) (string, error)
}

// ============ Usecase interfaces ============

// ChatUsecase is the conversation orchestrator, the single entry point per
// user message.
type ChatUsecase interface {
	// Chat runs one full turn: history fetch, user persist, classification,
	// generation or redirect, assistant persist, FAQ tracking.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// History returns a session's transcript, oldest first.
	History(ctx context.Context, sessionID string) ([]*entity.ChatMessage, error)

	// Reset records a session checkpoint. The log is not purged; the client
	// starts a fresh session id.
	Reset(ctx context.Context, sessionID string) error

	// ClearHistory wipes the whole message log (admin only).
	ClearHistory(ctx context.Context) error

	// Analytics returns aggregate message counts (admin only).
	Analytics(ctx context.Context) (*entity.ChatAnalytics, error)
}

// FaqUsecase tracks question frequency.
type FaqUsecase interface {
	// Track normalizes the raw question and upserts its counter.
	Track(ctx context.Context, question string) (*entity.Faq, error)

	// TopFaqs returns the most asked questions, count descending.
	TopFaqs(ctx context.Context, limit int) ([]*entity.Faq, error)
}
