package session

import (
	"context"
	"time"

	"github.com/FocuswithJustin/JuniperLexicon/core/dataset"
	"github.com/FocuswithJustin/JuniperLexicon/core/lexicon"
	"github.com/FocuswithJustin/JuniperLexicon/internal/logging"
)

// Loader supplies the datasets a session searches. Each call loads fresh data.
type Loader interface {
	LoadConcordance(ctx context.Context) ([]lexicon.ConcordanceEntry, error)
	LoadLexicon(ctx context.Context) ([]lexicon.LexiconEntry, error)

	// Paths reports the concordance and lexicon files backing the loader.
	Paths() (concordancePath, lexiconPath string)
}

// FileLoader loads datasets from files on disk.
type FileLoader struct {
	ConcordancePath string
	LexiconPath     string
}

// Paths returns the configured dataset paths.
func (l FileLoader) Paths() (concordancePath, lexiconPath string) {
	return l.ConcordancePath, l.LexiconPath
}

// LoadConcordance loads the Strong's-number dataset.
func (l FileLoader) LoadConcordance(ctx context.Context) ([]lexicon.ConcordanceEntry, error) {
	start := time.Now()
	entries, err := dataset.LoadConcordance(l.ConcordancePath)
	if err != nil {
		return nil, err
	}
	logging.DatasetLoaded(ctx, "concordance", l.ConcordancePath, len(entries), time.Since(start))
	if len(entries) == 0 {
		logging.WarnContext(ctx, "dataset is empty", "kind", "concordance", "path", l.ConcordancePath)
	}
	return entries, nil
}

// LoadLexicon loads the transliteration dataset.
func (l FileLoader) LoadLexicon(ctx context.Context) ([]lexicon.LexiconEntry, error) {
	start := time.Now()
	entries, err := dataset.LoadLexicon(l.LexiconPath)
	if err != nil {
		return nil, err
	}
	logging.DatasetLoaded(ctx, "lexicon", l.LexiconPath, len(entries), time.Since(start))
	if len(entries) == 0 {
		logging.WarnContext(ctx, "dataset is empty", "kind", "lexicon", "path", l.LexiconPath)
	}
	return entries, nil
}
