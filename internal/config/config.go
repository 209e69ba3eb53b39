// Package config holds the lexicon tool's runtime configuration: where the
// datasets live and how to log.
//
// Values come from, in increasing priority: built-in defaults, a .env file in
// the working directory, process environment variables, and command-line flags.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	lexerrors "github.com/FocuswithJustin/JuniperLexicon/core/errors"
	"github.com/FocuswithJustin/JuniperLexicon/core/dataset"
	"github.com/FocuswithJustin/JuniperLexicon/internal/logging"
	"github.com/FocuswithJustin/JuniperLexicon/internal/validation"
)

// Environment variable names.
const (
	EnvDataDir     = "LEXICON_DATA_DIR"
	EnvConcordance = "LEXICON_CONCORDANCE"
	EnvLexicon     = "LEXICON_LEXICON"
	EnvLogLevel    = "LEXICON_LOG_LEVEL"
	EnvLogFormat   = "LEXICON_LOG_FORMAT"
)

// Config holds all application configuration
type Config struct {
	// DataDir is joined with relative dataset file names.
	DataDir string

	// ConcordanceFile is the Strong's-number dataset (ref.json).
	ConcordanceFile string

	// LexiconFile is the transliteration dataset (biblehub_data.json).
	LexiconFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is text or json.
	LogFormat string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		DataDir:         ".",
		ConcordanceFile: dataset.DefaultConcordanceFile,
		LexiconFile:     dataset.DefaultLexiconFile,
		LogLevel:        "warn",
		LogFormat:       "text",
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return lexerrors.Wrapf(err, "load %s", name)
		}
	}
	return nil
}

// FromEnv returns Default overlaid with any LEXICON_* environment variables.
func FromEnv() Config {
	def := Default()
	return Config{
		DataDir:         getEnv(EnvDataDir, def.DataDir),
		ConcordanceFile: getEnv(EnvConcordance, def.ConcordanceFile),
		LexiconFile:     getEnv(EnvLexicon, def.LexiconFile),
		LogLevel:        getEnv(EnvLogLevel, def.LogLevel),
		LogFormat:       getEnv(EnvLogFormat, def.LogFormat),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate checks every field without touching the filesystem.
func (c Config) Validate() error {
	if err := validation.ValidatePath(c.DataDir); err != nil {
		return &lexerrors.ValidationError{Field: "data-dir", Value: c.DataDir, Message: err.Error(), Err: err}
	}
	if err := validation.ValidateDatasetPath(c.ConcordanceFile); err != nil {
		return &lexerrors.ValidationError{Field: "concordance", Value: c.ConcordanceFile, Message: err.Error(), Err: err}
	}
	if err := validation.ValidateDatasetPath(c.LexiconFile); err != nil {
		return &lexerrors.ValidationError{Field: "lexicon", Value: c.LexiconFile, Message: err.Error(), Err: err}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return lexerrors.NewValidation("log-level", c.LogLevel, err.Error())
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return lexerrors.NewValidation("log-format", c.LogFormat, err.Error())
	}
	return nil
}

// ConcordancePath resolves the concordance dataset against DataDir.
func (c Config) ConcordancePath() string {
	return c.resolve(c.ConcordanceFile)
}

// LexiconPath resolves the lexicon dataset against DataDir.
func (c Config) LexiconPath() string {
	return c.resolve(c.LexiconFile)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) || c.DataDir == "" {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// InitLogging installs the global logger described by the config, writing to w.
// Call Validate first; unparseable values fall back to the logging defaults.
func (c Config) InitLogging(w io.Writer) {
	level, _ := logging.ParseLevel(c.LogLevel)
	format, _ := logging.ParseFormat(c.LogFormat)
	logging.InitLogger(w, level, format)
}
