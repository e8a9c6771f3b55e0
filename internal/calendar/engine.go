// Package calendar classifies the days of a month for a given content
// format and occupied-date snapshot. It is a pure function over its
// inputs: it holds no state and performs no I/O, so every caller decides
// how fresh its snapshot is.
package calendar

import (
	"errors"
	"time"

	"github.com/le-brouillon/portal-api/internal/availability"
	"github.com/le-brouillon/portal-api/internal/dates"
)

// DayState classifies one calendar cell.
type DayState string

const (
	StateAvailable    DayState = "available"
	StatePast         DayState = "past"
	StateWrongWeekday DayState = "wrong_weekday"
	StateOccupied     DayState = "occupied"
)

// DayCell is the availability classification of one day of the month.
// Origin and Label are set only when State is StateOccupied; the admin
// console uses them to decide whether the cell offers a release action.
type DayCell struct {
	Day     int                 `json:"day"`
	Weekday time.Weekday        `json:"weekday"`
	State   DayState            `json:"state"`
	Origin  availability.Origin `json:"origin,omitempty"`
	Label   string              `json:"label,omitempty"`
}

// ErrDateConflict is returned by ClaimDate for an already-occupied date.
var ErrDateConflict = errors.New("date is already occupied")

// ComputeMonthView classifies every day of the given month. Precedence is
// fixed: a day in the past classifies as past even when it is also on a
// wrong weekday or occupied; a wrong weekday wins over occupied. An empty
// allowedWeekdays set means every weekday is allowed.
func ComputeMonthView(year int, month time.Month, allowedWeekdays []time.Weekday, occupied []availability.OccupiedDate, today dates.Date) []DayCell {
	allowed := make(map[time.Weekday]bool, len(allowedWeekdays))
	for _, w := range allowedWeekdays {
		allowed[w] = true
	}

	n := dates.DaysIn(year, month)
	cells := make([]DayCell, 0, n)
	for day := 1; day <= n; day++ {
		d := dates.Date{Year: year, Month: month, Day: day}
		cell := DayCell{Day: day, Weekday: d.Weekday()}

		switch {
		case d.Before(today):
			cell.State = StatePast
		case len(allowed) > 0 && !allowed[cell.Weekday]:
			cell.State = StateWrongWeekday
		default:
			if entry, ok := availability.Find(occupied, d); ok {
				cell.State = StateOccupied
				cell.Origin = entry.Origin
				cell.Label = entry.Label
			} else {
				cell.State = StateAvailable
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// ClaimDate checks whether a date can be claimed against the given
// occupied snapshot. It never mutates state: rejection is advisory, based
// on whatever snapshot the caller holds, and two claimants reading the
// same stale snapshot can both pass (see the availability store contract).
func ClaimDate(d dates.Date, occupied []availability.OccupiedDate) error {
	if availability.Contains(occupied, d) {
		return ErrDateConflict
	}
	return nil
}
