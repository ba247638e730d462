package entity

import "time"

// Faq is a frequency counter for one distinct normalized question.
// Question always holds the most recent literal phrasing; NormalizedQuestion
// is the unique upsert key.
type Faq struct {
	ID                 string
	Question           string
	NormalizedQuestion string
	Count              int
	LastAsked          time.Time
}
