package service

import (
	"context"
	"fmt"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/calendar"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/le-brouillon/portal-api/internal/dates"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrUnknownFormat is returned for a month-view request naming a format
// the active table does not contain.
var ErrUnknownFormat = fmt.Errorf("unknown format")

// ScheduleStats summarizes the submission pipeline for the admin overview.
type ScheduleStats struct {
	TotalSubmissions int `json:"total_submissions"`
	Upcoming         int `json:"upcoming"`
	ThisWeek         int `json:"this_week"`
	BlockedDates     int `json:"blocked_dates"`
}

type scheduleService struct {
	repos   *repository.Repositories
	formats FormatService
	store   *availability.Store
	cache   *availability.Cache
	cfg     *config.Config
	log     zerolog.Logger
}

func newScheduleService(repos *repository.Repositories, formatSvc FormatService,
	store *availability.Store, cache *availability.Cache, cfg *config.Config, log zerolog.Logger) ScheduleService {
	return &scheduleService{
		repos:   repos,
		formats: formatSvc,
		store:   store,
		cache:   cache,
		cfg:     cfg,
		log:     log.With().Str("service", "schedule").Logger(),
	}
}

// MonthView classifies the days of a month for a format. The occupied
// snapshot is refreshed when older than the configured poll interval, so
// the public calendar sees mutations within that window at worst.
func (s *scheduleService) MonthView(ctx context.Context, formatKey string, year int, month time.Month) ([]calendar.DayCell, error) {
	table, err := s.formats.Table(ctx)
	if err != nil {
		return nil, err
	}
	format, ok := table.Get(formatKey)
	if !ok {
		return nil, ErrUnknownFormat
	}

	if err := s.cache.RefreshIfOlder(ctx, s.cfg.Availability.PollInterval); err != nil {
		return nil, fmt.Errorf("refresh availability: %w", err)
	}

	return calendar.ComputeMonthView(year, month, format.Days, s.cache.Occupied(), dates.Today()), nil
}

// Occupied returns the merged occupied set from a fresh read, sorted by
// date string. The admin console always sees current data.
func (s *scheduleService) Occupied(ctx context.Context) ([]availability.OccupiedDate, error) {
	occupied, err := s.store.ListOccupied(ctx)
	if err != nil {
		return nil, err
	}
	return occupied, nil
}

// BlockDate adds an admin block after the advisory duplicate check against
// the freshest snapshot this instance holds.
func (s *scheduleService) BlockDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	day, err := dates.Parse(date)
	if err != nil {
		return nil, err
	}

	if err := s.cache.RefreshIfOlder(ctx, s.cfg.Availability.PollInterval); err != nil {
		return nil, fmt.Errorf("refresh availability: %w", err)
	}

	id, err := s.store.AddBlock(ctx, day, s.cache.Occupied())
	if err != nil {
		return nil, err
	}

	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Availability refresh after block failed")
	}
	return &models.BlockedDate{ID: id, Date: day.String()}, nil
}

// UnblockDate releases an admin block.
func (s *scheduleService) UnblockDate(ctx context.Context, id string) error {
	if err := s.store.RemoveBlock(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Availability refresh after unblock failed")
	}
	return nil
}

// Submissions lists all submissions, newest first.
func (s *scheduleService) Submissions(ctx context.Context) ([]*models.Submission, error) {
	return s.repos.Submission.List(ctx)
}

// DeleteSubmission removes a submission; its date becomes available again
// on the next occupied read.
func (s *scheduleService) DeleteSubmission(ctx context.Context, id string) error {
	if err := s.repos.Submission.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.cache.Refresh(ctx); err != nil {
		s.log.Warn().Err(err).Msg("Availability refresh after delete failed")
	}
	s.log.Info().Str("id", id).Msg("Submission deleted")
	return nil
}

// Stats computes the admin overview counters.
func (s *scheduleService) Stats(ctx context.Context) (*ScheduleStats, error) {
	subs, err := s.repos.Submission.List(ctx)
	if err != nil {
		return nil, err
	}
	blocks, err := s.repos.BlockedDate.List(ctx)
	if err != nil {
		return nil, err
	}

	today := dates.Today()
	weekAhead := today.AddDays(7)

	stats := &ScheduleStats{
		TotalSubmissions: len(subs),
		BlockedDates:     len(blocks),
	}
	for _, sub := range subs {
		d, err := dates.Parse(sub.Date)
		if err != nil {
			continue
		}
		if !d.Before(today) {
			stats.Upcoming++
			if d.Before(weekAhead) || d == weekAhead {
				stats.ThisWeek++
			}
		}
	}
	return stats, nil
}
