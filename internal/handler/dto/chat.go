package dto

import "time"

// ChatRequest is the kiosk chat request body.
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Language  string `json:"language,omitempty"` // english (default) or tagalog
}

// ChatMessage is one entry of a conversation transcript.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatResponse is the kiosk chat reply.
type ChatResponse struct {
	Message         ChatMessage `json:"message"`
	IsSchoolRelated bool        `json:"isSchoolRelated"`
}

// ResetRequest marks the end of a kiosk session.
type ResetRequest struct {
	SessionID string `json:"sessionId"`
}

// AnalyticsResponse reports aggregate message counts.
type AnalyticsResponse struct {
	TotalMessages     int `json:"totalMessages"`
	UserMessages      int `json:"userMessages"`
	AssistantMessages int `json:"assistantMessages"`
}

// FaqEntry is one tracked question with its frequency.
type FaqEntry struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Count     int       `json:"count"`
	LastAsked time.Time `json:"lastAsked"`
}
