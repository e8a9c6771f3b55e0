package formats

import "time"

// QuestionType is the answer kind a question expects.
type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeTextarea QuestionType = "textarea"
	TypeImage    QuestionType = "image"
	TypeCheckbox QuestionType = "checkbox"
)

// Question describes one field of a format's question set.
type Question struct {
	ID          string       `json:"id"`
	Label       string       `json:"label"`
	Type        QuestionType `json:"type"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Kind distinguishes formats with a single flat question list from
// composite formats whose questions depend on a chosen subformat.
type Kind string

const (
	KindSimple    Kind = "simple"
	KindComposite Kind = "composite"
)

// SubformatConfig holds the question subset and display copy for one
// subformat of a composite format.
type SubformatConfig struct {
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Example     string     `json:"example"`
	Questions   []Question `json:"questions"`
}

// Format is a named content category: the weekdays it may be published
// on and the question set contributors answer. A format is either
// Simple (Questions only) or Composite (CommonQuestions shared by every
// subformat plus per-subformat question lists).
type Format struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Kind     Kind           `json:"kind"`
	Days     []time.Weekday `json:"days"` // empty means every weekday is allowed
	Consigne string         `json:"consigne"`

	// Simple formats only.
	Questions []Question `json:"questions,omitempty"`

	// Composite formats only.
	CommonQuestions []Question                 `json:"common_questions,omitempty"`
	Subformats      map[string]SubformatConfig `json:"subformats,omitempty"`
}

// AllowsWeekday reports whether the format may be published on the given
// weekday. An empty day list means every weekday is allowed.
func (f Format) AllowsWeekday(w time.Weekday) bool {
	if len(f.Days) == 0 {
		return true
	}
	for _, d := range f.Days {
		if d == w {
			return true
		}
	}
	return false
}

// QuestionsFor resolves the active question set. For composite formats
// the subformat-specific questions come first, followed by the common
// questions; an unknown subformat resolves to no questions. Simple
// formats ignore the subformat argument.
func (f Format) QuestionsFor(subformat string) []Question {
	if f.Kind != KindComposite {
		return f.Questions
	}
	cfg, ok := f.Subformats[subformat]
	if !ok {
		return nil
	}
	qs := make([]Question, 0, len(cfg.Questions)+len(f.CommonQuestions))
	qs = append(qs, cfg.Questions...)
	qs = append(qs, f.CommonQuestions...)
	return qs
}

// Table is an ordered collection of formats keyed by format key.
type Table struct {
	formats map[string]Format
	order   []string
}

// NewTable builds a table preserving the given order.
func NewTable(list []Format) *Table {
	t := &Table{formats: make(map[string]Format, len(list))}
	for _, f := range list {
		if _, dup := t.formats[f.Key]; dup {
			continue
		}
		t.formats[f.Key] = f
		t.order = append(t.order, f.Key)
	}
	return t
}

// Get looks up a format by key.
func (t *Table) Get(key string) (Format, bool) {
	f, ok := t.formats[key]
	return f, ok
}

// List returns the formats in table order.
func (t *Table) List() []Format {
	out := make([]Format, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.formats[key])
	}
	return out
}
