package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/calendar"
	"github.com/le-brouillon/portal-api/internal/config"
	"github.com/le-brouillon/portal-api/internal/formats"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/repository"
	"github.com/le-brouillon/portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// FormatService resolves the active format table and persists operator
// overrides of it.
type FormatService interface {
	Table(ctx context.Context) (*formats.Table, error)
	SaveOverride(ctx context.Context, doc json.RawMessage) error
}

// IntakeService validates submission drafts and persists the accepted ones.
type IntakeService interface {
	Submit(ctx context.Context, draft *models.SubmissionDraft) (*models.Submission, []validation.ValidationError, error)
}

// ScheduleService serves calendar views and manages occupied dates.
type ScheduleService interface {
	MonthView(ctx context.Context, formatKey string, year int, month time.Month) ([]calendar.DayCell, error)
	Occupied(ctx context.Context) ([]availability.OccupiedDate, error)
	BlockDate(ctx context.Context, date string) (*models.BlockedDate, error)
	UnblockDate(ctx context.Context, id string) error
	Submissions(ctx context.Context) ([]*models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
	Stats(ctx context.Context) (*ScheduleStats, error)
}

// Services holds all service interfaces
type Services struct {
	Format   FormatService
	Intake   IntakeService
	Schedule ScheduleService
}

// NewServices creates all services over a shared availability store and
// snapshot cache. The cache is externally owned: handlers refresh it on
// the configured cadence, services refresh it after mutations.
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	store := availability.NewStore(repos.BlockedDate, repos.Submission, log)
	cache := availability.NewCache(store)

	formatSvc := newFormatService(repos.Settings, log)
	intakeSvc := newIntakeService(repos.Submission, formatSvc, store, cache, cfg, log)
	scheduleSvc := newScheduleService(repos, formatSvc, store, cache, cfg, log)

	return &Services{
		Format:   formatSvc,
		Intake:   intakeSvc,
		Schedule: scheduleSvc,
	}
}
