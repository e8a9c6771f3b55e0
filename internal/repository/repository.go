package repository

import (
	"context"
	"encoding/json"

	"github.com/le-brouillon/portal-api/internal/database"
	"github.com/le-brouillon/portal-api/internal/models"
)

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, sub *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	List(ctx context.Context) ([]*models.Submission, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

// BlockedDateRepository defines the interface for admin-block data operations
type BlockedDateRepository interface {
	Create(ctx context.Context, block *models.BlockedDate) error
	List(ctx context.Context) ([]*models.BlockedDate, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository defines the interface for persisted configuration documents
type SettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Put(ctx context.Context, key string, doc json.RawMessage) error
}

// Repositories holds all repository interfaces
type Repositories struct {
	Submission  SubmissionRepository
	BlockedDate BlockedDateRepository
	Settings    SettingsRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Submission:  NewSubmissionRepo(db),
		BlockedDate: NewBlockedDateRepo(db),
		Settings:    NewSettingsRepo(db),
	}
}
