package types

// ChatRequest is one kiosk question sent to the server
type ChatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
	Language  string `json:"language,omitempty"` // english or tagalog
}

// ChatMessage is one entry of a conversation transcript
type ChatMessage struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Role      string `json:"role"` // user or assistant
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// ChatData is the server's reply to a kiosk question
type ChatData struct {
	Message         ChatMessage `json:"message"`
	IsSchoolRelated bool        `json:"isSchoolRelated"`
}

// ResetRequest marks the end of a kiosk session
type ResetRequest struct {
	SessionID string `json:"sessionId"`
}

// FaqEntry is one tracked question with its frequency
type FaqEntry struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Count     int    `json:"count"`
	LastAsked string `json:"lastAsked"`
}
