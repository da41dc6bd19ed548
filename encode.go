package fundflow

import (
	"encoding/json"
	"fmt"
)

// This file handles the persisted document format: one JSON object holding
// the whole document. Decoding is deliberately tolerant, field by field, so a
// document written by an older or sloppier version still loads: a field of
// the wrong shape falls back to its empty value instead of poisoning the
// whole read. Import relies on the same coercion rules.

// rawDocument splits the top-level object into raw fields so each one can be
// decoded independently.
type rawDocument struct {
	Income          json.RawMessage `json:"income"`
	Incomes         json.RawMessage `json:"incomes"`
	Containers      json.RawMessage `json:"containers"`
	Expenses        json.RawMessage `json:"expenses"`
	ClearedTithe    json.RawMessage `json:"clearedTithe"`
	ClearedOffering json.RawMessage `json:"clearedOffering"`
	ClearedCharity  json.RawMessage `json:"clearedCharity"`
}

// DecodeDocument decodes a persisted document. It fails only when data is not
// a JSON object at all; individual fields of the wrong shape are coerced to
// their defaults (empty slice, zero counter).
func DecodeDocument(data []byte) (Document, error) {
	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("could not decode document: %w", err)
	}

	doc := NewDocument()
	decodeSlice(raw.Incomes, &doc.Incomes)
	decodeSlice(raw.Containers, &doc.Containers)
	decodeSlice(raw.Expenses, &doc.Expenses)
	doc.ClearedTithe = decodeNumber(raw.ClearedTithe)
	doc.ClearedOffering = decodeNumber(raw.ClearedOffering)
	doc.ClearedCharity = decodeNumber(raw.ClearedCharity)

	if len(raw.Income) > 0 {
		var legacy float64
		if err := json.Unmarshal(raw.Income, &legacy); err == nil {
			doc.LegacyIncome = &legacy
		}
	}
	return doc, nil
}

// decodeSlice decodes raw into out, leaving out untouched (empty) when raw is
// absent, null, or not a sequence of the expected shape.
func decodeSlice[T any](raw json.RawMessage, out *[]T) {
	if len(raw) == 0 {
		return
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return
	}
	*out = items
}

// decodeNumber decodes a numeric counter, defaulting to 0 when the field is
// absent or not a number.
func decodeNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return v
}

// EncodeDocument encodes the document in its canonical pretty-printed form,
// the same form Export produces.
func EncodeDocument(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}
	return data, nil
}
