package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/dates"
	"github.com/le-brouillon/portal-api/internal/mocks"
	"github.com/le-brouillon/portal-api/internal/models"
	"github.com/rs/zerolog"
)

func newTestStore() (*availability.Store, *mocks.MockBlockedDateRepository, *mocks.MockSubmissionRepository) {
	blocks := mocks.NewMockBlockedDateRepository()
	subs := mocks.NewMockSubmissionRepository()
	return availability.NewStore(blocks, subs, zerolog.Nop()), blocks, subs
}

func TestListOccupiedMergesBothCollections(t *testing.T) {
	store, blocks, subs := newTestStore()
	ctx := context.Background()

	blocks.Blocks["b1"] = &models.BlockedDate{ID: "b1", Date: "2025-06-16"}
	subs.Submissions["s1"] = &models.Submission{ID: "s1", Instagram: "alice", Date: "2025-06-23"}
	subs.Submissions["s2"] = &models.Submission{ID: "s2", Instagram: "@bob", Date: "2025-06-09"}

	occupied, err := store.ListOccupied(ctx)
	if err != nil {
		t.Fatalf("ListOccupied failed: %v", err)
	}
	if len(occupied) != 3 {
		t.Fatalf("got %d occupied entries, want 3", len(occupied))
	}

	// Sorted by date string.
	wantDates := []string{"2025-06-09", "2025-06-16", "2025-06-23"}
	for i, want := range wantDates {
		if got := occupied[i].Date.String(); got != want {
			t.Errorf("entry %d date = %q, want %q", i, got, want)
		}
	}

	if occupied[0].Origin != availability.OriginSubmission || occupied[0].Label != "@bob" {
		t.Errorf("handle with @ prefix produced %q/%q", occupied[0].Origin, occupied[0].Label)
	}
	if occupied[1].Origin != availability.OriginAdminBlock || occupied[1].Label != availability.AdminBlockLabel {
		t.Errorf("admin block produced %q/%q", occupied[1].Origin, occupied[1].Label)
	}
	if occupied[1].SourceID != "b1" || !occupied[1].Releasable() {
		t.Error("admin block entry should be releasable and carry its record id")
	}
	if occupied[2].Label != "@alice" || occupied[2].Releasable() {
		t.Errorf("submission entry should be @alice and not releasable, got %q", occupied[2].Label)
	}
}

func TestListOccupiedSkipsMalformedDates(t *testing.T) {
	store, blocks, subs := newTestStore()

	blocks.Blocks["bad"] = &models.BlockedDate{ID: "bad", Date: "16/06/2025"}
	subs.Submissions["ok"] = &models.Submission{ID: "ok", Instagram: "alice", Date: "2025-06-23"}

	occupied, err := store.ListOccupied(context.Background())
	if err != nil {
		t.Fatalf("ListOccupied failed: %v", err)
	}
	if len(occupied) != 1 || occupied[0].SourceID != "ok" {
		t.Errorf("malformed record not skipped: %v", occupied)
	}
}

func TestListOccupiedPropagatesRepoErrors(t *testing.T) {
	store, blocks, _ := newTestStore()
	blocks.ListError = errors.New("connection refused")

	if _, err := store.ListOccupied(context.Background()); err == nil {
		t.Error("expected repository error to propagate")
	}
}

func TestDeletedSubmissionReleasesItsDate(t *testing.T) {
	store, _, subs := newTestStore()
	ctx := context.Background()

	subs.Submissions["s1"] = &models.Submission{ID: "s1", Instagram: "alice", Date: "2025-06-23"}

	occupied, err := store.ListOccupied(ctx)
	if err != nil {
		t.Fatalf("ListOccupied failed: %v", err)
	}
	if len(occupied) != 1 {
		t.Fatalf("got %d entries before deletion, want 1", len(occupied))
	}

	if err := subs.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	occupied, err = store.ListOccupied(ctx)
	if err != nil {
		t.Fatalf("ListOccupied failed: %v", err)
	}
	if len(occupied) != 0 {
		t.Errorf("deleted submission still occupies its date: %v", occupied)
	}
}

func TestAddBlock(t *testing.T) {
	day := dates.Date{Year: 2025, Month: time.June, Day: 16}

	t.Run("records the block", func(t *testing.T) {
		store, blocks, _ := newTestStore()
		id, err := store.AddBlock(context.Background(), day, nil)
		if err != nil {
			t.Fatalf("AddBlock failed: %v", err)
		}
		if id == "" {
			t.Error("AddBlock returned an empty id")
		}
		block, ok := blocks.Blocks[id]
		if !ok {
			t.Fatal("block not persisted")
		}
		if block.Date != "2025-06-16" {
			t.Errorf("persisted date = %q, want 2025-06-16", block.Date)
		}
	})

	t.Run("rejects a date in the snapshot", func(t *testing.T) {
		store, _, _ := newTestStore()
		snapshot := []availability.OccupiedDate{availability.SubmissionEntry("s", day, "alice")}
		if _, err := store.AddBlock(context.Background(), day, snapshot); !errors.Is(err, availability.ErrDuplicateBlock) {
			t.Errorf("got %v, want ErrDuplicateBlock", err)
		}
	})

	t.Run("stale snapshot caught by unique index", func(t *testing.T) {
		// The snapshot is empty but the repository already holds the
		// date; the write-time duplicate rejection maps to the same
		// error.
		store, blocks, _ := newTestStore()
		blocks.Blocks["b1"] = &models.BlockedDate{ID: "b1", Date: "2025-06-16"}
		if _, err := store.AddBlock(context.Background(), day, nil); !errors.Is(err, availability.ErrDuplicateBlock) {
			t.Errorf("got %v, want ErrDuplicateBlock", err)
		}
	})
}

func TestRemoveBlock(t *testing.T) {
	store, blocks, _ := newTestStore()
	blocks.Blocks["b1"] = &models.BlockedDate{ID: "b1", Date: "2025-06-16"}

	if err := store.RemoveBlock(context.Background(), "b1"); err != nil {
		t.Fatalf("RemoveBlock failed: %v", err)
	}
	if _, ok := blocks.Blocks["b1"]; ok {
		t.Error("block still present after removal")
	}
}
