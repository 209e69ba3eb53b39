// Package session drives a single lookup: it prompts for a mode and key,
// loads the matching dataset and renders the result. A session runs once and
// holds no state afterwards.
package session

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/FocuswithJustin/JuniperLexicon/core/dataset"
	"github.com/FocuswithJustin/JuniperLexicon/core/errors"
	"github.com/FocuswithJustin/JuniperLexicon/core/lexicon"
	"github.com/FocuswithJustin/JuniperLexicon/internal/logging"
	"github.com/FocuswithJustin/JuniperLexicon/internal/render"
)

// Console prompts.
const (
	PromptMode            = "Choose operation mode ( s for Strong's Number / t for Transliteration): "
	PromptStrongsNumber   = "Enter Strong's Number: "
	PromptTransliteration = "Enter Transliteration you want to search for: "
)

// Operation modes.
const (
	ModeStrongs         = "s"
	ModeTransliteration = "t"
)

// Session is one run of the lookup tool.
type Session struct {
	in        *bufio.Reader
	presenter *render.Presenter
	loader    Loader
}

// New creates a session reading answers from in and rendering to out.
func New(in io.Reader, out io.Writer, loader Loader) *Session {
	return &Session{
		in:        bufio.NewReader(in),
		presenter: render.New(out),
		loader:    loader,
	}
}

// Run performs the interactive flow. Soft outcomes (no match, unknown mode)
// are rendered and returned as *errors.NotFoundError or
// *errors.InvalidModeError; use errors.IsSoft to tell them from failures.
func (s *Session) Run(ctx context.Context) error {
	if err := s.presenter.Prompt(PromptMode, true); err != nil {
		return err
	}
	mode, err := s.readLine()
	if err != nil {
		return s.fail(err)
	}

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeStrongs:
		entries, err := s.loader.LoadConcordance(ctx)
		if err != nil {
			return s.fail(err)
		}
		if err := s.presenter.Prompt(PromptStrongsNumber, false); err != nil {
			return err
		}
		raw, err := s.readLine()
		if err != nil {
			return s.fail(err)
		}
		number, err := lexicon.ParseStrongsNumber(raw)
		if err != nil {
			return s.fail(err)
		}
		return s.showReferences(ctx, number, entries)

	case ModeTransliteration:
		entries, err := s.loader.LoadLexicon(ctx)
		if err != nil {
			return s.fail(err)
		}
		if err := s.presenter.Prompt(PromptTransliteration, false); err != nil {
			return err
		}
		text, err := s.readLine()
		if err != nil {
			return s.fail(err)
		}
		return s.showEntry(ctx, text, entries)

	default:
		logging.InfoContext(ctx, "invalid mode", "mode", mode)
		if err := s.presenter.InvalidMode(); err != nil {
			return err
		}
		return errors.NewInvalidMode(mode)
	}
}

// LookupStrongs loads the concordance and renders the entry for raw, which
// is parsed as a Strong's number.
func (s *Session) LookupStrongs(ctx context.Context, raw string) error {
	number, err := lexicon.ParseStrongsNumber(raw)
	if err != nil {
		return s.fail(err)
	}
	entries, err := s.loader.LoadConcordance(ctx)
	if err != nil {
		return s.fail(err)
	}
	return s.showReferences(ctx, number, entries)
}

// LookupTransliteration loads the lexicon and renders the entry for text.
func (s *Session) LookupTransliteration(ctx context.Context, text string) error {
	entries, err := s.loader.LoadLexicon(ctx)
	if err != nil {
		return s.fail(err)
	}
	return s.showEntry(ctx, text, entries)
}

func (s *Session) showReferences(ctx context.Context, number int, entries []lexicon.ConcordanceEntry) error {
	entry, found := lexicon.FindByStrongsNumber(number, entries)
	logging.LookupResult(ctx, ModeStrongs, strconv.Itoa(number), found)

	if err := s.presenter.References(number, entry); err != nil {
		return err
	}
	if !found {
		return errors.NewNotFound("strong's number", strconv.Itoa(number))
	}
	return nil
}

func (s *Session) showEntry(ctx context.Context, text string, entries []lexicon.LexiconEntry) error {
	entry, found := lexicon.FindByTransliteration(text, entries)
	logging.LookupResult(ctx, ModeTransliteration, text, found)

	if err := s.presenter.EntryDetails(entry); err != nil {
		return err
	}
	if !found {
		return errors.NewNotFound("transliteration", text)
	}
	return nil
}

// Info loads both datasets and renders their sizes and digests.
func (s *Session) Info(ctx context.Context) error {
	concordancePath, lexiconPath := s.loader.Paths()

	concordance, err := s.loader.LoadConcordance(ctx)
	if err != nil {
		return s.fail(err)
	}
	lex, err := s.loader.LoadLexicon(ctx)
	if err != nil {
		return s.fail(err)
	}

	concordanceDigest, err := dataset.Digest(concordancePath)
	if err != nil {
		return s.fail(err)
	}
	lexiconDigest, err := dataset.Digest(lexiconPath)
	if err != nil {
		return s.fail(err)
	}

	numbers, translits := lexicon.KeyCounts(concordance, lex)
	return s.presenter.DatasetInfo([]render.DatasetSummary{
		{Kind: "concordance", Path: concordancePath, Records: len(concordance), Keys: numbers, Digest: concordanceDigest},
		{Kind: "lexicon", Path: lexiconPath, Records: len(lex), Keys: translits, Digest: lexiconDigest},
	})
}

// fail renders err as an error panel and returns it unchanged.
func (s *Session) fail(err error) error {
	_ = s.presenter.Error(render.TitleError, err.Error())
	return err
}

// readLine reads one line of console input without its line terminator.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", errors.NewInputParse("", "no input received", err)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
