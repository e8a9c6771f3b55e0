package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/le-brouillon/portal-api/internal/database"
	"github.com/le-brouillon/portal-api/internal/models"
)

// submissionRepo is the concrete implementation of SubmissionRepository
type submissionRepo struct {
	db *database.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *database.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

// Create inserts a new submission
func (r *submissionRepo) Create(ctx context.Context, sub *models.Submission) error {
	answersJSON, _ := json.Marshal(sub.Answers)
	if sub.Answers == nil {
		answersJSON = []byte("{}")
	}

	query := `
		INSERT INTO submissions (id, instagram, format, subformat, date, answers, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		sub.ID, sub.Instagram, sub.Format, nullString(sub.Subformat),
		sub.Date, answersJSON, sub.CreatedAt,
	)
	return err
}

// GetByID retrieves a submission by ID
func (r *submissionRepo) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	query := `
		SELECT id, instagram, format, subformat, date, answers, created_at
		FROM submissions WHERE id = $1
	`

	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// List retrieves all submissions, newest first
func (r *submissionRepo) List(ctx context.Context) ([]*models.Submission, error) {
	query := `
		SELECT id, instagram, format, subformat, date, answers, created_at
		FROM submissions ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// Delete removes a submission; deleting also releases its publication date
// on the next availability read.
func (r *submissionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM submissions WHERE id = $1", id)
	return err
}

// Count returns the total number of submissions
func (r *submissionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM submissions").Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row rowScanner) (*models.Submission, error) {
	var sub models.Submission
	var subformat sql.NullString
	var answersJSON []byte

	err := row.Scan(&sub.ID, &sub.Instagram, &sub.Format, &subformat,
		&sub.Date, &answersJSON, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	if subformat.Valid {
		sub.Subformat = subformat.String
	}
	json.Unmarshal(answersJSON, &sub.Answers)
	return &sub, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
