package availability

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/le-brouillon/portal-api/internal/dates"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/le-brouillon/portal-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrDuplicateBlock is returned when an operator tries to block a date that
// is already occupied by a block or a submission.
var ErrDuplicateBlock = errors.New("date is already blocked or booked")

// Store merges the two independently persisted collections - admin blocks
// and submissions - into the unified occupied set consumed by the calendar
// engine, and accepts block additions and removals.
//
// The merge is advisory with respect to concurrency: nothing stops two
// writers from claiming the same day between a read and a write. Only
// duplicate admin blocks are hard-rejected (unique index on the date
// column); a submission landing on a blocked day in that window is an
// accepted race.
type Store struct {
	blocks      repository.BlockedDateRepository
	submissions repository.SubmissionRepository
	log         zerolog.Logger
}

// NewStore creates an availability store over the two source repositories.
func NewStore(blocks repository.BlockedDateRepository, submissions repository.SubmissionRepository, log zerolog.Logger) *Store {
	return &Store{
		blocks:      blocks,
		submissions: submissions,
		log:         log.With().Str("component", "availability").Logger(),
	}
}

// ListOccupied fetches both collections and returns their union, sorted
// lexicographically by date string (equivalent to calendar order thanks to
// the zero-padded wire format). Records whose date no longer parses are
// skipped with a warning rather than failing the whole read.
func (s *Store) ListOccupied(ctx context.Context) ([]OccupiedDate, error) {
	blocks, err := s.blocks.List(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissions.List(ctx)
	if err != nil {
		return nil, err
	}

	occupied := make([]OccupiedDate, 0, len(blocks)+len(subs))
	for _, b := range blocks {
		d, err := dates.Parse(b.Date)
		if err != nil {
			s.log.Warn().Str("id", b.ID).Str("date", b.Date).Msg("Skipping blocked date with malformed date")
			continue
		}
		occupied = append(occupied, BlockEntry(b.ID, d))
	}
	for _, sub := range subs {
		d, err := dates.Parse(sub.Date)
		if err != nil {
			s.log.Warn().Str("id", sub.ID).Str("date", sub.Date).Msg("Skipping submission with malformed date")
			continue
		}
		occupied = append(occupied, SubmissionEntry(sub.ID, d, sub.Instagram))
	}

	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].Date.String() < occupied[j].Date.String()
	})
	return occupied, nil
}

// AddBlock records an admin block for the given date after an advisory
// check against the caller's snapshot of the occupied set. The snapshot is
// whatever the caller most recently fetched, not a fresh read; the unique
// index still rejects a concurrent duplicate block at write time.
func (s *Store) AddBlock(ctx context.Context, d dates.Date, snapshot []OccupiedDate) (string, error) {
	if Contains(snapshot, d) {
		return "", ErrDuplicateBlock
	}

	block := &models.BlockedDate{
		ID:        uuid.NewString(),
		Date:      d.String(),
		CreatedAt: time.Now(),
	}
	if err := s.blocks.Create(ctx, block); err != nil {
		if errors.Is(err, repository.ErrDateBlocked) {
			return "", ErrDuplicateBlock
		}
		return "", err
	}

	s.log.Info().Str("date", block.Date).Str("id", block.ID).Msg("Date blocked")
	return block.ID, nil
}

// RemoveBlock deletes an admin block. It has no effect on submission-origin
// occupied entries.
func (s *Store) RemoveBlock(ctx context.Context, sourceID string) error {
	if err := s.blocks.Delete(ctx, sourceID); err != nil {
		return err
	}
	s.log.Info().Str("id", sourceID).Msg("Date unblocked")
	return nil
}
