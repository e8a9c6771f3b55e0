package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/dates"
)

// June 2025: the 1st is a Sunday, Mondays fall on 2, 9, 16, 23, 30.
var june10 = dates.Date{Year: 2025, Month: time.June, Day: 10}

func day(d int) dates.Date {
	return dates.Date{Year: 2025, Month: time.June, Day: d}
}

func TestComputeMonthView(t *testing.T) {
	occupied := []availability.OccupiedDate{
		availability.BlockEntry("block-1", day(16)),
		availability.SubmissionEntry("sub-1", day(23), "alice"),
	}

	cells := ComputeMonthView(2025, time.June, []time.Weekday{time.Monday}, occupied, june10)
	if len(cells) != 30 {
		t.Fatalf("June has %d cells, want 30", len(cells))
	}

	tests := []struct {
		day        int
		wantState  DayState
		wantOrigin availability.Origin
		wantLabel  string
	}{
		{2, StatePast, "", ""},
		{9, StatePast, "", ""},
		{10, StateWrongWeekday, "", ""},
		{11, StateWrongWeekday, "", ""},
		{16, StateOccupied, availability.OriginAdminBlock, "Administrator"},
		{23, StateOccupied, availability.OriginSubmission, "@alice"},
		{30, StateAvailable, "", ""},
	}

	for _, tt := range tests {
		cell := cells[tt.day-1]
		if cell.Day != tt.day {
			t.Fatalf("cell %d carries day %d", tt.day, cell.Day)
		}
		if cell.State != tt.wantState {
			t.Errorf("day %d state = %q, want %q", tt.day, cell.State, tt.wantState)
		}
		if cell.Origin != tt.wantOrigin {
			t.Errorf("day %d origin = %q, want %q", tt.day, cell.Origin, tt.wantOrigin)
		}
		if cell.Label != tt.wantLabel {
			t.Errorf("day %d label = %q, want %q", tt.day, cell.Label, tt.wantLabel)
		}
	}
}

func TestComputeMonthViewPrecedence(t *testing.T) {
	t.Run("past wins over occupied", func(t *testing.T) {
		occupied := []availability.OccupiedDate{availability.BlockEntry("b", day(2))}
		cells := ComputeMonthView(2025, time.June, []time.Weekday{time.Monday}, occupied, june10)
		if cells[1].State != StatePast {
			t.Errorf("occupied past Monday classified as %q, want past", cells[1].State)
		}
	})

	t.Run("past wins over wrong weekday", func(t *testing.T) {
		cells := ComputeMonthView(2025, time.June, []time.Weekday{time.Monday}, nil, june10)
		// June 3 is a Tuesday before the 10th.
		if cells[2].State != StatePast {
			t.Errorf("past Tuesday classified as %q, want past", cells[2].State)
		}
	})

	t.Run("wrong weekday wins over occupied", func(t *testing.T) {
		// June 11 is a Wednesday.
		occupied := []availability.OccupiedDate{availability.SubmissionEntry("s", day(11), "bob")}
		cells := ComputeMonthView(2025, time.June, []time.Weekday{time.Monday}, occupied, june10)
		if cells[10].State != StateWrongWeekday {
			t.Errorf("occupied Wednesday classified as %q, want wrong_weekday", cells[10].State)
		}
		if cells[10].Origin != "" || cells[10].Label != "" {
			t.Error("wrong_weekday cell should not carry origin or label")
		}
	})
}

func TestComputeMonthViewEmptyWeekdaysAllowsAll(t *testing.T) {
	cells := ComputeMonthView(2025, time.June, nil, nil, june10)
	for _, cell := range cells {
		if cell.State == StateWrongWeekday {
			t.Fatalf("day %d classified wrong_weekday with no weekday restriction", cell.Day)
		}
	}
	if cells[10].State != StateAvailable {
		t.Errorf("June 11 = %q, want available", cells[10].State)
	}
}

func TestComputeMonthViewPastMonth(t *testing.T) {
	cells := ComputeMonthView(2025, time.May, nil, nil, june10)
	if len(cells) != 31 {
		t.Fatalf("May has %d cells, want 31", len(cells))
	}
	for _, cell := range cells {
		if cell.State != StatePast {
			t.Fatalf("day %d of a fully past month = %q, want past", cell.Day, cell.State)
		}
	}
}

func TestClaimDate(t *testing.T) {
	occupied := []availability.OccupiedDate{availability.BlockEntry("b", day(16))}

	if err := ClaimDate(day(17), occupied); err != nil {
		t.Errorf("free date rejected: %v", err)
	}
	if err := ClaimDate(day(16), occupied); !errors.Is(err, ErrDateConflict) {
		t.Errorf("occupied date returned %v, want ErrDateConflict", err)
	}
}

func TestClaimDateStaleSnapshotAdmitsBoth(t *testing.T) {
	// Two claimants holding the same snapshot both pass; the check is
	// advisory and neither call mutates the snapshot.
	var snapshot []availability.OccupiedDate
	if err := ClaimDate(day(23), snapshot); err != nil {
		t.Fatalf("first claim rejected: %v", err)
	}
	if err := ClaimDate(day(23), snapshot); err != nil {
		t.Fatalf("second claim against the same snapshot rejected: %v", err)
	}
}
