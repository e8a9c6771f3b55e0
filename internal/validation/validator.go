package validation

import (
	"fmt"
	"strings"

	"github.com/le-brouillon/portal-api/internal/dates"
	"github.com/le-brouillon/portal-api/internal/formats"
	"github.com/le-brouillon/portal-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateDraft runs every intake predicate against a submission draft.
// An empty result means the draft may be persisted. Date availability is
// not checked here; the intake service performs that advisory check
// against its occupied snapshot just before the write.
func ValidateDraft(draft *models.SubmissionDraft, table *formats.Table) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(draft.Instagram) == "" {
		errs = append(errs, ValidationError{Field: "instagram", Message: "instagram handle is required"})
	}

	if draft.Format == "" {
		errs = append(errs, ValidationError{Field: "format", Message: "format is required"})
		return errs
	}
	format, ok := table.Get(draft.Format)
	if !ok {
		errs = append(errs, ValidationError{Field: "format", Message: fmt.Sprintf("unknown format %q", draft.Format)})
		return errs
	}

	if format.Kind == formats.KindComposite {
		if draft.Subformat == "" {
			errs = append(errs, ValidationError{Field: "subformat", Message: "subformat is required for this format"})
		} else if _, ok := format.Subformats[draft.Subformat]; !ok {
			errs = append(errs, ValidationError{Field: "subformat", Message: fmt.Sprintf("unknown subformat %q", draft.Subformat)})
		}
	}

	errs = append(errs, validateDate(draft.Date, format)...)
	errs = append(errs, validateAnswers(draft, format)...)
	return errs
}

// validateDate checks the publication date: present, well-formed, and on a
// weekday the format allows. The date is parsed as a plain (year, month,
// day) triple so the weekday can never drift across timezones.
func validateDate(raw string, format formats.Format) []ValidationError {
	if raw == "" {
		return []ValidationError{{Field: "date", Message: "publication date is required"}}
	}
	d, err := dates.Parse(raw)
	if err != nil {
		return []ValidationError{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}
	if !format.AllowsWeekday(d.Weekday()) {
		return []ValidationError{{
			Field:   "date",
			Message: fmt.Sprintf("%s cannot be published on a %s", format.Label, d.Weekday()),
		}}
	}
	return nil
}

// validateAnswers checks that every required question carries a non-empty
// trimmed answer. Image and checkbox questions are never required. For
// Behind the Brouillon, the cover and book-title questions are required
// only while the talks-about-book box is ticked (the checkbox answer is
// "true" when ticked and empty otherwise, so presence is the test).
func validateAnswers(draft *models.SubmissionDraft, format formats.Format) []ValidationError {
	questions := format.QuestionsFor(draft.Subformat)
	if len(questions) == 0 {
		return nil
	}

	talksAboutBook := strings.TrimSpace(draft.Answers[formats.QuestionTalksAboutBook]) != ""

	var errs []ValidationError
	for _, q := range questions {
		if q.Type == formats.TypeImage || q.Type == formats.TypeCheckbox {
			continue
		}
		if format.Key == formats.KeyBehindBrouillon &&
			(q.ID == formats.QuestionCover || q.ID == formats.QuestionBookTitle) &&
			!talksAboutBook {
			continue
		}
		if strings.TrimSpace(draft.Answers[q.ID]) == "" {
			errs = append(errs, ValidationError{
				Field:   q.ID,
				Message: fmt.Sprintf("answer to %q is required", q.Label),
			})
		}
	}
	return errs
}
