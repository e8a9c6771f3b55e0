package formats

import (
	"testing"
	"time"
)

func TestAllowsWeekday(t *testing.T) {
	mondayOnly := Format{Key: "m", Days: []time.Weekday{time.Monday}}
	if !mondayOnly.AllowsWeekday(time.Monday) {
		t.Error("expected Monday to be allowed")
	}
	if mondayOnly.AllowsWeekday(time.Tuesday) {
		t.Error("expected Tuesday to be refused")
	}

	anyDay := Format{Key: "a"}
	for w := time.Sunday; w <= time.Saturday; w++ {
		if !anyDay.AllowsWeekday(w) {
			t.Errorf("format with no day list should allow %v", w)
		}
	}
}

func TestQuestionsForSimple(t *testing.T) {
	f := Format{
		Key:       "simple",
		Kind:      KindSimple,
		Questions: []Question{{ID: "q1", Type: TypeText}},
	}

	qs := f.QuestionsFor("")
	if len(qs) != 1 || qs[0].ID != "q1" {
		t.Errorf("QuestionsFor returned %v, want the flat question list", qs)
	}

	// Simple formats ignore the subformat argument.
	if got := f.QuestionsFor("anything"); len(got) != 1 {
		t.Errorf("QuestionsFor with subformat returned %d questions, want 1", len(got))
	}
}

func TestQuestionsForComposite(t *testing.T) {
	f := Format{
		Key:             "composite",
		Kind:            KindComposite,
		CommonQuestions: []Question{{ID: "shared", Type: TypeText}},
		Subformats: map[string]SubformatConfig{
			"sub": {Questions: []Question{{ID: "own", Type: TypeText}}},
		},
	}

	qs := f.QuestionsFor("sub")
	if len(qs) != 2 {
		t.Fatalf("QuestionsFor returned %d questions, want 2", len(qs))
	}
	if qs[0].ID != "own" || qs[1].ID != "shared" {
		t.Errorf("expected subformat questions before common ones, got %v", qs)
	}

	if got := f.QuestionsFor("missing"); got != nil {
		t.Errorf("unknown subformat should resolve to no questions, got %v", got)
	}
}

func TestDefaultTable(t *testing.T) {
	table := Default()

	list := table.List()
	wantOrder := []string{KeyMeetAuthor, KeyStoryWeek, KeyBehindBrouillon, KeyOther}
	if len(list) != len(wantOrder) {
		t.Fatalf("Default() has %d formats, want %d", len(list), len(wantOrder))
	}
	for i, key := range wantOrder {
		if list[i].Key != key {
			t.Errorf("format %d is %q, want %q", i, list[i].Key, key)
		}
	}

	meetAuthor, ok := table.Get(KeyMeetAuthor)
	if !ok {
		t.Fatal("meet_author missing from default table")
	}
	if len(meetAuthor.Days) != 1 || meetAuthor.Days[0] != time.Monday {
		t.Errorf("meet_author days = %v, want Mondays only", meetAuthor.Days)
	}

	btb, ok := table.Get(KeyBehindBrouillon)
	if !ok {
		t.Fatal("behind_brouillon missing from default table")
	}
	if btb.Kind != KindComposite {
		t.Errorf("behind_brouillon kind = %q, want composite", btb.Kind)
	}
	if len(btb.Days) != 1 || btb.Days[0] != time.Saturday {
		t.Errorf("behind_brouillon days = %v, want Saturdays only", btb.Days)
	}
	for _, sub := range []string{"conseils", "confessions", "mythes", "sensible", "other"} {
		if _, ok := btb.Subformats[sub]; !ok {
			t.Errorf("behind_brouillon missing subformat %q", sub)
		}
	}
	if qs := btb.QuestionsFor("conseils"); len(qs) != 3+len(btb.CommonQuestions) {
		t.Errorf("conseils resolved to %d questions, want %d", len(qs), 3+len(btb.CommonQuestions))
	}
}

func TestNewTableSkipsDuplicateKeys(t *testing.T) {
	table := NewTable([]Format{
		{Key: "a", Label: "first"},
		{Key: "a", Label: "second"},
		{Key: "b"},
	})

	if len(table.List()) != 2 {
		t.Fatalf("table has %d formats, want 2", len(table.List()))
	}
	f, _ := table.Get("a")
	if f.Label != "first" {
		t.Errorf("duplicate key overwrote the first entry: got %q", f.Label)
	}
}

func TestParseOverride(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		raw := []byte(`[
			{"key": "flat", "label": "Flat", "questions": [{"id": "q", "type": "text"}]},
			{"key": "nested", "label": "Nested", "subformats": {"s": {"questions": []}}}
		]`)

		table, err := ParseOverride(raw)
		if err != nil {
			t.Fatalf("ParseOverride failed: %v", err)
		}

		flat, _ := table.Get("flat")
		if flat.Kind != KindSimple {
			t.Errorf("format without subformats inferred as %q, want simple", flat.Kind)
		}
		nested, _ := table.Get("nested")
		if nested.Kind != KindComposite {
			t.Errorf("format with subformats inferred as %q, want composite", nested.Kind)
		}
	})

	t.Run("explicit kind preserved", func(t *testing.T) {
		raw := []byte(`[{"key": "k", "kind": "composite"}]`)
		table, err := ParseOverride(raw)
		if err != nil {
			t.Fatalf("ParseOverride failed: %v", err)
		}
		f, _ := table.Get("k")
		if f.Kind != KindComposite {
			t.Errorf("explicit kind replaced by %q", f.Kind)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		if _, err := ParseOverride([]byte(`{not json`)); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})

	t.Run("empty list", func(t *testing.T) {
		if _, err := ParseOverride([]byte(`[]`)); err == nil {
			t.Error("expected error for empty format list")
		}
	})

	t.Run("missing key", func(t *testing.T) {
		if _, err := ParseOverride([]byte(`[{"label": "no key"}]`)); err == nil {
			t.Error("expected error for format without key")
		}
	})
}

func TestExportRoundTrip(t *testing.T) {
	raw := []byte(`[{"key": "one"}, {"key": "two"}]`)
	table, err := ParseOverride(raw)
	if err != nil {
		t.Fatalf("ParseOverride failed: %v", err)
	}

	exported := table.Export()
	if len(exported) != 2 || exported[0].Key != "one" || exported[1].Key != "two" {
		t.Errorf("Export() lost order or entries: %v", exported)
	}
}
