package model

import "time"

// EventType names a live form event
type EventType string

const (
	EventResponseSubmitted EventType = "response_submitted"
)

// ResponseSubmittedPayload is pushed to live subscribers of a form
type ResponseSubmittedPayload struct {
	FormID        string    `json:"formId"`
	ResponseID    string    `json:"responseId"`
	AnswerCount   int       `json:"answerCount"`
	ResponseCount int64     `json:"responseCount,omitempty"` // Responses stored for the form so far
	SubmittedAt   time.Time `json:"submittedAt"`
}
