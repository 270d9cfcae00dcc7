package models

import "time"

// IncorrectNote is one durably stored wrong answer, grouped by day.
type IncorrectNote struct {
	ID            int64     `json:"id"`
	Day           int       `json:"day"`
	Meaning       string    `json:"meaning"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	CreatedAt     time.Time `json:"created_at"`
}

// IncorrectAnswer is the in-memory triple produced by grading, before
// it is persisted as an IncorrectNote.
type IncorrectAnswer struct {
	Meaning       string `json:"meaning"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
}

// ScoreEntry is one session-scoped quiz result used for charting.
// History is deliberately not durable; it resets on restart.
type ScoreEntry struct {
	Day   int `json:"day"`
	Score int `json:"score"`
	Total int `json:"total"`
}
