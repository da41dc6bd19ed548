package fundflow

import (
	"encoding/json"
	"fmt"
	"time"
)

// This file handles the import/export format: the full migrated document as
// pretty-printed JSON, human readable and diffable. Export and import
// round-trip losslessly.

// Export returns the current migrated document serialized as pretty-printed
// JSON.
func (s *Store) Export() ([]byte, error) {
	return EncodeDocument(s.Get())
}

// ExportFileName returns the conventional name for an export taken at t.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("fundflow-%s.json", t.Format("2006-01-02"))
}

// Import replaces the entire stored document with the one encoded in data.
//
// The payload must be a JSON object; anything else is rejected without
// touching the stored state. Within a valid object, a non-sequence incomes,
// containers or expenses field is coerced to an empty sequence, and unknown
// fields are dropped. On success every subscriber is notified.
func (s *Store) Import(data []byte) error {
	// Reject arrays, scalars and malformed JSON before anything is written.
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("could not parse import payload: %w", err)
	}
	if _, ok := probe.(map[string]any); !ok {
		return fmt.Errorf("import payload is not an object")
	}

	doc, err := DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("could not read import payload: %w", err)
	}
	doc, _ = Migrate(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}
