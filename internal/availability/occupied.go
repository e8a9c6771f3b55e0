package availability

import (
	"strings"

	"github.com/le-brouillon/portal-api/internal/dates"
)

// Origin tags where an occupied day came from: an operator block or an
// accepted submission. Downstream code switches on the tag instead of
// probing label strings.
type Origin string

const (
	OriginAdminBlock Origin = "admin_block"
	OriginSubmission Origin = "submission"
)

// AdminBlockLabel is the display label carried by every admin block.
const AdminBlockLabel = "Administrator"

// OccupiedDate marks one calendar day as unavailable for new submissions.
// SourceID identifies the underlying record so the day can be released by
// deleting that record.
type OccupiedDate struct {
	Date     dates.Date `json:"date"`
	Origin   Origin     `json:"origin"`
	Label    string     `json:"label"`
	SourceID string     `json:"source_id"`
}

// BlockEntry builds the occupied entry for an admin block record.
func BlockEntry(sourceID string, d dates.Date) OccupiedDate {
	return OccupiedDate{
		Date:     d,
		Origin:   OriginAdminBlock,
		Label:    AdminBlockLabel,
		SourceID: sourceID,
	}
}

// SubmissionEntry builds the occupied entry derived from a submission.
// The label is the contributor handle prefixed with "@".
func SubmissionEntry(sourceID string, d dates.Date, handle string) OccupiedDate {
	return OccupiedDate{
		Date:     d,
		Origin:   OriginSubmission,
		Label:    "@" + strings.TrimPrefix(handle, "@"),
		SourceID: sourceID,
	}
}

// Releasable reports whether the entry can be removed directly from the
// calendar console. Submission-origin days are released by deleting the
// submission itself.
func (o OccupiedDate) Releasable() bool {
	return o.Origin == OriginAdminBlock
}

// Contains reports whether any occupied entry falls on the given day.
func Contains(occupied []OccupiedDate, d dates.Date) bool {
	for _, o := range occupied {
		if o.Date == d {
			return true
		}
	}
	return false
}

// Find returns the first occupied entry on the given day, if any.
func Find(occupied []OccupiedDate, d dates.Date) (OccupiedDate, bool) {
	for _, o := range occupied {
		if o.Date == d {
			return o, true
		}
	}
	return OccupiedDate{}, false
}
