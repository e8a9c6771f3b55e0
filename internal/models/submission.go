package models

import "time"

// Submission is an accepted submission draft. It is immutable once
// persisted; the only later mutation is deletion by an operator.
type Submission struct {
	ID        string            `json:"id"`
	Instagram string            `json:"instagram"`
	Format    string            `json:"format"`
	Subformat string            `json:"subformat,omitempty"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Answers   map[string]string `json:"answers"`
	CreatedAt time.Time         `json:"created_at"`
}

// SubmissionDraft is the wire shape of an incoming submission before
// validation. Only drafts that pass every intake predicate are persisted.
type SubmissionDraft struct {
	Instagram string            `json:"instagram" binding:"required"`
	Format    string            `json:"format" binding:"required"`
	Subformat string            `json:"subformat"`
	Date      string            `json:"date" binding:"required"`
	Answers   map[string]string `json:"answers"`
}

// BlockedDate is an operator-created record marking a publication day
// unavailable independent of any submission.
type BlockedDate struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
