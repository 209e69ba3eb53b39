// Package lexicon defines the Greek word records read from the concordance
// and lexicon datasets and the lookups performed over them.
package lexicon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Reserved lexicon field names.
const (
	// TransliterationKey is the field used as the lexicon lookup key.
	TransliterationKey = "Transliteration"

	// ReferencesKey is the field omitted from the details view.
	ReferencesKey = "References"

	// PlaceholderValue marks a field the dataset had no value for.
	PlaceholderValue = "N/A"
)

// ConcordanceEntry lists every scriptural occurrence of a Strong's-numbered word.
type ConcordanceEntry struct {
	// StrongsNumber identifies the word. Not guaranteed unique in a dataset.
	StrongsNumber int `json:"strongs_number"`

	// Heading is the display title, usually the word and its gloss.
	Heading string `json:"heading"`

	// Occurrences are kept in file order.
	Occurrences []Occurrence `json:"occurrences"`

	// missingNumber is set for decoded records without a strongs_number.
	// Such records never match a lookup.
	missingNumber bool
}

// UnmarshalJSON decodes an entry, noting whether strongs_number was present.
func (e *ConcordanceEntry) UnmarshalJSON(data []byte) error {
	type plain ConcordanceEntry
	var aux struct {
		plain
		StrongsNumber *int `json:"strongs_number"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*e = ConcordanceEntry(aux.plain)
	if aux.StrongsNumber == nil {
		e.missingNumber = true
		return nil
	}
	e.StrongsNumber = *aux.StrongsNumber
	return nil
}

// Occurrence is a single verse in which a concordance word appears.
type Occurrence struct {
	Reference string `json:"reference"`
	Greek     string `json:"greek"`
}

// Field is one key/value pair of a lexicon entry.
type Field struct {
	Key   string
	Value string
}

// LexiconEntry is a free-form record of descriptive attributes for a word.
// Fields keep the key order of the source JSON object and each key appears
// at most once.
type LexiconEntry struct {
	Fields []Field
}

// NewLexiconEntry builds an entry from alternating key, value arguments.
// A repeated key keeps its first position and takes the last value.
func NewLexiconEntry(kv ...string) LexiconEntry {
	var e LexiconEntry
	for i := 0; i+1 < len(kv); i += 2 {
		e.set(kv[i], kv[i+1])
	}
	return e
}

func (e *LexiconEntry) set(key, value string) {
	for i := range e.Fields {
		if e.Fields[i].Key == key {
			e.Fields[i].Value = value
			return
		}
	}
	e.Fields = append(e.Fields, Field{Key: key, Value: value})
}

// Get returns the value of the field named key.
func (e LexiconEntry) Get(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Transliteration returns the lookup key of the entry, if present.
func (e LexiconEntry) Transliteration() (string, bool) {
	return e.Get(TransliterationKey)
}

// DisplayFields returns the fields shown in the details view: everything
// except References, empty values and the N/A placeholder, in source order.
func (e LexiconEntry) DisplayFields() []Field {
	var out []Field
	for _, f := range e.Fields {
		if f.Key == ReferencesKey || f.Value == "" || f.Value == PlaceholderValue {
			continue
		}
		out = append(out, f)
	}
	return out
}

// UnmarshalJSON decodes a JSON object while preserving its key order.
// String values are taken as-is and other non-empty values keep their JSON
// text. null, false, numeric zero, [] and {} become "" so they stay hidden.
// A duplicated key keeps its first position with the last value.
func (e *LexiconEntry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("lexicon entry: expected JSON object, got %v", tok)
	}

	var entry LexiconEntry
	entry.Fields = make([]Field, 0, 8)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("lexicon entry: expected string key, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("lexicon entry: field %q: %w", key, err)
		}
		value, err := fieldValue(raw)
		if err != nil {
			return fmt.Errorf("lexicon entry: field %q: %w", key, err)
		}
		entry.set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	*e = entry
	return nil
}

// MarshalJSON encodes the entry as a JSON object in field order.
func (e LexiconEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range e.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func fieldValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case 'n', 'f':
		return "", nil
	case '[', '{':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		if buf.Len() == 2 {
			return "", nil
		}
		return buf.String(), nil
	default:
		if f, err := strconv.ParseFloat(string(trimmed), 64); err == nil && f == 0 {
			return "", nil
		}
		return string(trimmed), nil
	}
}
