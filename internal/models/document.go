package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ClipsKey is the only response field the UI interprets
const ClipsKey = "clips"

// ErrNotJSON is returned when a body is not valid JSON
var ErrNotJSON = errors.New("body is not valid JSON")

// Field is a single top-level key of a Document
type Field struct {
	Key   string
	Value json.RawMessage
}

// Document is an open-ended JSON response. Top-level keys keep the order in
// which they arrived and every value is kept verbatim, so the document can be
// shown exactly as the workflow produced it. Bodies that are valid JSON but not
// an object are kept raw and have no fields.
type Document struct {
	raw    json.RawMessage
	fields []Field
	object bool
}

// ParseDocument parses a response body. An empty body is treated as {}.
func ParseDocument(body []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}
	if !json.Valid(trimmed) {
		return nil, ErrNotJSON
	}

	doc := &Document{raw: append(json.RawMessage(nil), trimmed...)}
	if trimmed[0] != '{' {
		return doc, nil
	}

	doc.object = true
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read object start: %w", err)
	}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to read value of %q: %w", key, err)
		}
		// a repeated key keeps its first position and its last value
		if i, seen := index[key]; seen {
			doc.fields[i].Value = value
			continue
		}
		index[key] = len(doc.fields)
		doc.fields = append(doc.fields, Field{Key: key, Value: value})
	}
	return doc, nil
}

// IsObject reports whether the body was a JSON object
func (d *Document) IsObject() bool {
	return d != nil && d.object
}

// Falsy reports whether the body is null, false, a zero number or an empty
// string. Such bodies carry no usable data.
func (d *Document) Falsy() bool {
	if d == nil {
		return true
	}
	switch raw := string(d.raw); raw {
	case "null", "false", `""`:
		return true
	default:
		if raw == "" || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
			return false
		}
		n, err := strconv.ParseFloat(raw, 64)
		return err == nil && n == 0
	}
}

// Fields returns the top-level fields in arrival order
func (d *Document) Fields() []Field {
	if d == nil {
		return nil
	}
	return d.fields
}

// Get returns the raw value stored under key
func (d *Document) Get(key string) (json.RawMessage, bool) {
	for _, f := range d.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Clips extracts the clip list. A missing key, a null or a value that is not
// an array all yield no clips. Array elements that are not objects become
// empty clips, and only string-valued fields are read from each record.
func (d *Document) Clips() []Clip {
	raw, ok := d.Get(ClipsKey)
	if !ok {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	clips := make([]Clip, 0, len(items))
	for _, item := range items {
		var record map[string]json.RawMessage
		if err := json.Unmarshal(item, &record); err != nil {
			clips = append(clips, Clip{})
			continue
		}
		clips = append(clips, Clip{
			File:     stringField(record, "file"),
			VideoURL: stringField(record, "videoUrl"),
			URL:      stringField(record, "url"),
			Caption:  stringField(record, "caption"),
			Text:     stringField(record, "text"),
		})
	}
	return clips
}

// MarshalJSON writes the document back with its original key order
func (d *Document) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	if !d.object {
		return d.raw, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON lets a Document round-trip through API payloads
func (d *Document) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDocument(data)
	if err != nil {
		return err
	}
	*d = *parsed
	return nil
}

// Pretty renders the document indented by two spaces
func (d *Document) Pretty() string {
	compact, err := d.MarshalJSON()
	if err != nil {
		return ""
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return string(compact)
	}
	return out.String()
}

func stringField(record map[string]json.RawMessage, key string) string {
	raw, ok := record[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
