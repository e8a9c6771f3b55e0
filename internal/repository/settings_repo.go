package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/le-brouillon/portal-api/internal/database"
)

// settingsRepo stores configuration documents (currently the operator-edited
// format table) as JSONB keyed by name.
type settingsRepo struct {
	db *database.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

// Get fetches a settings document. Returns nil with no error when the
// document has never been saved.
func (r *settingsRepo) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx, "SELECT config FROM format_settings WHERE key = $1", key).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Put upserts a settings document
func (r *settingsRepo) Put(ctx context.Context, key string, doc json.RawMessage) error {
	query := `
		INSERT INTO format_settings (key, config, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET config = EXCLUDED.config, updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, []byte(doc), time.Now())
	return err
}
