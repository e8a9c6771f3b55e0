package repository

import (
	"context"
	"errors"

	"github.com/le-brouillon/portal-api/internal/database"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/lib/pq"
)

// ErrDateBlocked is returned when an admin block already exists for a date.
// The unique index on blocked_dates.date enforces this even when two
// operators race past the advisory snapshot check.
var ErrDateBlocked = errors.New("date is already blocked")

// blockedDateRepo is the concrete implementation of BlockedDateRepository
type blockedDateRepo struct {
	db *database.DB
}

// NewBlockedDateRepo creates a new blocked-date repository
func NewBlockedDateRepo(db *database.DB) BlockedDateRepository {
	return &blockedDateRepo{db: db}
}

// Create inserts an admin block. Returns ErrDateBlocked if the date
// already carries a block.
func (r *blockedDateRepo) Create(ctx context.Context, block *models.BlockedDate) error {
	query := `
		INSERT INTO blocked_dates (id, date, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, block.ID, block.Date, block.CreatedAt)
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
		return ErrDateBlocked
	}
	return err
}

// List retrieves all admin blocks ordered by date
func (r *blockedDateRepo) List(ctx context.Context) ([]*models.BlockedDate, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, date, created_at FROM blocked_dates ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []*models.BlockedDate
	for rows.Next() {
		var b models.BlockedDate
		if err := rows.Scan(&b.ID, &b.Date, &b.CreatedAt); err != nil {
			return nil, err
		}
		blocks = append(blocks, &b)
	}
	return blocks, rows.Err()
}

// Delete removes an admin block by id
func (r *blockedDateRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM blocked_dates WHERE id = $1", id)
	return err
}
