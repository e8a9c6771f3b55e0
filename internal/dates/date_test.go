package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2025-06-16",
			want:  Date{Year: 2025, Month: time.June, Day: 16},
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  Date{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "leap day in non-leap year",
			input:   "2025-02-29",
			wantErr: true,
		},
		{
			name:    "day out of range",
			input:   "2025-02-30",
			wantErr: true,
		},
		{
			name:    "month not zero-padded",
			input:   "2025-6-16",
			wantErr: true,
		},
		{
			name:    "day not zero-padded",
			input:   "2025-06-1",
			wantErr: true,
		},
		{
			name:    "slashes instead of dashes",
			input:   "2025/06/16",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "trailing garbage",
			input:   "2025-06-16T00:00:00Z",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"2025-06-16", "2025-01-05", "2024-02-29", "1999-12-31"}
	for _, s := range inputs {
		d, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
		if d.String() != s {
			t.Errorf("round trip of %q produced %q", s, d.String())
		}
	}
}

func TestStringPadding(t *testing.T) {
	d := Date{Year: 2025, Month: time.January, Day: 5}
	if got := d.String(); got != "2025-01-05" {
		t.Errorf("String() = %q, want zero-padded 2025-01-05", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want bool
	}{
		{"real date", Date{2025, time.June, 16}, true},
		{"leap day", Date{2024, time.February, 29}, true},
		{"february 30", Date{2025, time.February, 30}, false},
		{"month zero", Date{2025, 0, 10}, false},
		{"month thirteen", Date{2025, 13, 10}, false},
		{"day zero", Date{2025, time.June, 0}, false},
		{"day overflow", Date{2025, time.June, 31}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	// 2025-06-16 was a Monday.
	d := Date{Year: 2025, Month: time.June, Day: 16}
	if got := d.Weekday(); got != time.Monday {
		t.Errorf("Weekday() = %v, want Monday", got)
	}
}

func TestBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Date
		want bool
	}{
		{"earlier year", Date{2024, time.December, 31}, Date{2025, time.January, 1}, true},
		{"earlier month", Date{2025, time.May, 31}, Date{2025, time.June, 1}, true},
		{"earlier day", Date{2025, time.June, 15}, Date{2025, time.June, 16}, true},
		{"equal", Date{2025, time.June, 16}, Date{2025, time.June, 16}, false},
		{"later", Date{2025, time.June, 17}, Date{2025, time.June, 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("%v.Before(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLexicographicOrderMatchesCalendarOrder(t *testing.T) {
	a := Date{Year: 2025, Month: time.September, Day: 30}
	b := Date{Year: 2025, Month: time.October, Day: 1}
	if !(a.String() < b.String()) {
		t.Errorf("expected %q < %q", a.String(), b.String())
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		d    Date
		n    int
		want Date
	}{
		{"within month", Date{2025, time.June, 10}, 5, Date{2025, time.June, 15}},
		{"crosses month", Date{2025, time.June, 28}, 7, Date{2025, time.July, 5}},
		{"crosses year", Date{2025, time.December, 30}, 3, Date{2026, time.January, 2}},
		{"negative", Date{2025, time.June, 1}, -1, Date{2025, time.May, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.AddDays(tt.n); got != tt.want {
				t.Errorf("AddDays(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestDaysIn(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.June, 30},
		{2025, time.July, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
	}

	for _, tt := range tests {
		if got := DaysIn(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysIn(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}
