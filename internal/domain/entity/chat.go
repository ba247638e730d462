package entity

import "time"

// Message roles stored in the chat log.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Kiosk languages. English is the default locale; Tagalog is the alternate.
const (
	LanguageEnglish = "english"
	LanguageTagalog = "tagalog"
)

// ChatMessage is one persisted turn half (domain object, no JSON tags).
// Messages are immutable once created; ordering is creation-time monotonic.
type ChatMessage struct {
	ID        string
	SessionID string
	Role      string // user, assistant
	Content   string
	Timestamp time.Time
}

// Verdict is the relevance classifier's structured decision for one utterance.
type Verdict struct {
	OnTopic   bool
	Rationale string
}

// ChatAnalytics aggregates message counts for the admin dashboard.
type ChatAnalytics struct {
	TotalMessages     int
	UserMessages      int
	AssistantMessages int
}
