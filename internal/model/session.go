package model

import "time"

// Session is the state of one walk through the questionnaire
type Session struct {
	ID        string    `json:"id"`
	Index     int       `json:"index"` // Position within the visible questions
	Answers   Answers   `json:"answers"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionView is what clients see of a session
type SessionView struct {
	ID        string    `json:"id"`
	Question  *Question `json:"question,omitempty"` // nil once completed
	Number    int       `json:"number"`             // 1-based
	Total     int       `json:"total"`
	Progress  float64   `json:"progress"` // 0-100
	Answers   Answers   `json:"answers"`
	CanGoBack bool      `json:"canGoBack"`
	CanSubmit bool      `json:"canSubmit"`
	Completed bool      `json:"completed"`
}
