package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/le-brouillon/portal-api/internal/formats"
	"github.com/le-brouillon/portal-api/internal/repository"
	"github.com/rs/zerolog"
)

// formatSettingsKey is the settings document holding the operator-edited
// format table.
const formatSettingsKey = "formats"

type formatService struct {
	settings repository.SettingsRepository
	log      zerolog.Logger
}

func newFormatService(settings repository.SettingsRepository, log zerolog.Logger) FormatService {
	return &formatService{
		settings: settings,
		log:      log.With().Str("service", "format").Logger(),
	}
}

// Table returns the active format table: the operator override when one
// has been saved, otherwise the seed table. A corrupt override falls back
// to the seed table with a warning so intake keeps working.
func (s *formatService) Table(ctx context.Context) (*formats.Table, error) {
	raw, err := s.settings.Get(ctx, formatSettingsKey)
	if err != nil {
		return nil, fmt.Errorf("load format settings: %w", err)
	}
	if raw == nil {
		return formats.Default(), nil
	}

	table, err := formats.ParseOverride(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("Ignoring corrupt format override, using defaults")
		return formats.Default(), nil
	}
	return table, nil
}

// SaveOverride validates and persists an operator-edited format table.
func (s *formatService) SaveOverride(ctx context.Context, doc json.RawMessage) error {
	if _, err := formats.ParseOverride(doc); err != nil {
		return err
	}
	if err := s.settings.Put(ctx, formatSettingsKey, doc); err != nil {
		return fmt.Errorf("save format settings: %w", err)
	}
	s.log.Info().Msg("Format settings updated")
	return nil
}
