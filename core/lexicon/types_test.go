package lexicon

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexiconEntryUnmarshalPreservesOrder(t *testing.T) {
	data := `{"Transliteration": "agape", "Definition": "love", "Part of Speech": "Noun, Feminine", "References": "John 3:16", "Usage": "N/A"}`

	var e LexiconEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []Field{
		{Key: "Transliteration", Value: "agape"},
		{Key: "Definition", Value: "love"},
		{Key: "Part of Speech", Value: "Noun, Feminine"},
		{Key: "References", Value: "John 3:16"},
		{Key: "Usage", Value: "N/A"},
	}
	if diff := cmp.Diff(want, e.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLexiconEntryUnmarshalNonStringValues(t *testing.T) {
	data := `{"Transliteration": "logos", "Strong": 3056, "Common": true, "Note": null, "Forms": ["logou", "logon"], "Meta": {"a": 1}}`

	var e LexiconEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []Field{
		{Key: "Transliteration", Value: "logos"},
		{Key: "Strong", Value: "3056"},
		{Key: "Common", Value: "true"},
		{Key: "Note", Value: ""},
		{Key: "Forms", Value: `["logou","logon"]`},
		{Key: "Meta", Value: `{"a":1}`},
	}
	if diff := cmp.Diff(want, e.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}

func TestLexiconEntryUnmarshalRejectsNonObject(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array", `["agape"]`},
		{"string", `"agape"`},
		{"number", `26`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e LexiconEntry
			if err := json.Unmarshal([]byte(tt.data), &e); err == nil {
				t.Errorf("Unmarshal(%s) should fail", tt.data)
			}
		})
	}
}

func TestLexiconEntryMarshalRoundTripOrder(t *testing.T) {
	e := NewLexiconEntry("Transliteration", "agape", "Definition", "love")
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(data), `{"Transliteration":"agape","Definition":"love"}`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestDisplayFields(t *testing.T) {
	e := NewLexiconEntry(
		"Transliteration", "agape",
		"Definition", "love",
		"References", "John 3:16; 1 Cor 13:4",
		"Phonetic", "",
		"Usage", "N/A",
		"Original Word", "ἀγάπη",
	)

	want := []Field{
		{Key: "Transliteration", Value: "agape"},
		{Key: "Definition", Value: "love"},
		{Key: "Original Word", Value: "ἀγάπη"},
	}
	if diff := cmp.Diff(want, e.DisplayFields()); diff != "" {
		t.Errorf("DisplayFields mismatch (-want +got):\n%s", diff)
	}
}

func TestGet(t *testing.T) {
	e := NewLexiconEntry("Transliteration", "agape", "Definition", "love")

	if v, ok := e.Get("Definition"); !ok || v != "love" {
		t.Errorf("Get(Definition) = %q, %v", v, ok)
	}
	if _, ok := e.Get("Missing"); ok {
		t.Error("Get(Missing) should report false")
	}

	empty := NewLexiconEntry("Definition", "love")
	if _, ok := empty.Transliteration(); ok {
		t.Error("Transliteration() should report false when the field is absent")
	}
}

func TestConcordanceEntryDecode(t *testing.T) {
	data := `{"strongs_number": 26, "heading": "Love", "occurrences": [{"reference": "John 3:16", "greek": "ἀγάπη"}]}`

	var e ConcordanceEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := ConcordanceEntry{
		StrongsNumber: 26,
		Heading:       "Love",
		Occurrences:   []Occurrence{{Reference: "John 3:16", Greek: "ἀγάπη"}},
	}
	if diff := cmp.Diff(want, e, cmp.AllowUnexported(ConcordanceEntry{})); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestConcordanceEntryDecodeWithoutNumber(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantMissing bool
	}{
		{"present", `{"strongs_number": 26, "heading": "Love"}`, false},
		{"explicit zero", `{"strongs_number": 0, "heading": "Zero"}`, false},
		{"absent", `{"heading": "Orphan"}`, true},
		{"null", `{"strongs_number": null, "heading": "Null"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ConcordanceEntry
			if err := json.Unmarshal([]byte(tt.data), &e); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if e.missingNumber != tt.wantMissing {
				t.Errorf("missingNumber = %v, want %v", e.missingNumber, tt.wantMissing)
			}
			if e.Heading == "" {
				t.Error("heading should still decode")
			}
		})
	}
}

func TestLexiconEntryUnmarshalFalsyValues(t *testing.T) {
	data := `{"Transliteration": "agape", "Count": 0, "Ratio": 0.0, "Flag": false, "Forms": [], "Meta": {}, "Strong": 26, "Common": true}`

	var e LexiconEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []Field{
		{Key: "Transliteration", Value: "agape"},
		{Key: "Strong", Value: "26"},
		{Key: "Common", Value: "true"},
	}
	if diff := cmp.Diff(want, e.DisplayFields()); diff != "" {
		t.Errorf("DisplayFields mismatch (-want +got):\n%s", diff)
	}
}

func TestLexiconEntryUnmarshalDuplicateKeys(t *testing.T) {
	data := `{"Transliteration": "agape", "Definition": "first", "Usage": "noun", "Definition": "last"}`

	var e LexiconEntry
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []Field{
		{Key: "Transliteration", Value: "agape"},
		{Key: "Definition", Value: "last"},
		{Key: "Usage", Value: "noun"},
	}
	if diff := cmp.Diff(want, e.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
	if v, _ := e.Get("Definition"); v != "last" {
		t.Errorf("Get(Definition) = %q, want last", v)
	}
}

func TestNewLexiconEntryDuplicateKeys(t *testing.T) {
	e := NewLexiconEntry("Definition", "first", "Transliteration", "agape", "Definition", "last")

	want := []Field{
		{Key: "Definition", Value: "last"},
		{Key: "Transliteration", Value: "agape"},
	}
	if diff := cmp.Diff(want, e.Fields); diff != "" {
		t.Errorf("Fields mismatch (-want +got):\n%s", diff)
	}
}
