package formats

import (
	"encoding/json"
	"fmt"
)

// ParseOverride decodes an operator-edited format table saved from the
// question-settings screen. The document is a JSON array so that the
// display order survives the round-trip. A format without an explicit
// kind is classified by whether it carries subformats.
func ParseOverride(raw []byte) (*Table, error) {
	var list []Format
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode format table: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("format table is empty")
	}
	for i := range list {
		if list[i].Key == "" {
			return nil, fmt.Errorf("format at index %d has no key", i)
		}
		if list[i].Kind == "" {
			if len(list[i].Subformats) > 0 {
				list[i].Kind = KindComposite
			} else {
				list[i].Kind = KindSimple
			}
		}
	}
	return NewTable(list), nil
}

// Export returns the table as the JSON-serializable list accepted by
// ParseOverride.
func (t *Table) Export() []Format {
	return t.List()
}
