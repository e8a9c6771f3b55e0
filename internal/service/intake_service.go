package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/calendar"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/le-brouillon/portal-api/internal/dates"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/repository"
	"github.com/le-brouillon/portal-api/internal/validation"
	"github.com/rs/zerolog"
)

type intakeService struct {
	submissions repository.SubmissionRepository
	formats     FormatService
	store       *availability.Store
	cache       *availability.Cache
	cfg         *config.Config
	log         zerolog.Logger
}

func newIntakeService(submissions repository.SubmissionRepository, formatSvc FormatService,
	store *availability.Store, cache *availability.Cache, cfg *config.Config, log zerolog.Logger) IntakeService {
	return &intakeService{
		submissions: submissions,
		formats:     formatSvc,
		store:       store,
		cache:       cache,
		cfg:         cfg,
		log:         log.With().Str("service", "intake").Logger(),
	}
}

// Submit turns a draft into a persisted submission. The returned slice
// carries per-field validation errors; a date conflict surfaces as a
// "date" field error so the contributor is sent back to the calendar.
//
// The date-conflict check is advisory: it runs against the snapshot
// refreshed on the caller's cadence, not inside a transaction with the
// write, so two drafts claiming the same day in the same window can both
// land. That race is accepted; the editorial team resolves it by hand.
func (s *intakeService) Submit(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, []validation.ValidationError, error) {
	table, err := s.formats.Table(ctx)
	if err != nil {
		return nil, nil, err
	}

	if errs := validation.ValidateDraft(draft, table); len(errs) > 0 {
		return nil, errs, nil
	}

	// Validation guarantees the date parses.
	day, err := dates.Parse(draft.Date)
	if err != nil {
		return nil, nil, fmt.Errorf("parse validated date: %w", err)
	}

	if err := s.cache.RefreshIfOlder(ctx, s.cfg.Availability.PollInterval); err != nil {
		return nil, nil, fmt.Errorf("refresh availability: %w", err)
	}
	if err := calendar.ClaimDate(day, s.cache.Occupied()); err != nil {
		return nil, []validation.ValidationError{{
			Field:   "date",
			Message: "this date has just been taken, please pick another",
		}}, nil
	}

	sub := &models.Submission{
		ID:        uuid.NewString(),
		Instagram: draft.Instagram,
		Format:    draft.Format,
		Subformat: draft.Subformat,
		Date:      draft.Date,
		Answers:   draft.Answers,
		CreatedAt: time.Now(),
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("persist submission: %w", err)
	}

	// The new submission occupies its date on the next read; refresh so
	// this instance stops offering the day immediately.
	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Availability refresh after submit failed")
	}

	s.log.Info().
		Str("id", sub.ID).
		Str("instagram", sub.Instagram).
		Str("format", sub.Format).
		Str("date", sub.Date).
		Msg("Submission accepted")
	return sub, nil, nil
}
