package lexicon

import "strings"

// FindByStrongsNumber returns the first entry whose Strong's number equals
// number, scanning in file order. Records decoded without a strongs_number
// are skipped.
func FindByStrongsNumber(number int, entries []ConcordanceEntry) (*ConcordanceEntry, bool) {
	for i := range entries {
		if entries[i].missingNumber {
			continue
		}
		if entries[i].StrongsNumber == number {
			return &entries[i], true
		}
	}
	return nil, false
}

// FindByTransliteration returns the first entry whose Transliteration field
// matches text case-insensitively. Entries without the field never match.
func FindByTransliteration(text string, entries []LexiconEntry) (*LexiconEntry, bool) {
	want := foldKey(text)
	for i := range entries {
		got, ok := entries[i].Transliteration()
		if !ok {
			continue
		}
		if foldKey(got) == want {
			return &entries[i], true
		}
	}
	return nil, false
}

func foldKey(s string) string {
	return strings.ToLower(s)
}

// KeyCounts returns the number of distinct Strong's numbers and distinct
// transliterations (case-folded) that the datasets can answer.
func KeyCounts(concordance []ConcordanceEntry, lexicon []LexiconEntry) (numbers, transliterations int) {
	seenNumbers := make(map[int]struct{}, len(concordance))
	for _, e := range concordance {
		if e.missingNumber {
			continue
		}
		seenNumbers[e.StrongsNumber] = struct{}{}
	}

	seenTranslits := make(map[string]struct{}, len(lexicon))
	for _, e := range lexicon {
		if t, ok := e.Transliteration(); ok {
			seenTranslits[foldKey(t)] = struct{}{}
		}
	}

	return len(seenNumbers), len(seenTranslits)
}
