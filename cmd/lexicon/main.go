// Command lexicon looks up Greek words by Strong's number or transliteration.
// Run without a command it prompts for a mode and a search term.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/JuniperLexicon/core/errors"
	"github.com/FocuswithJustin/JuniperLexicon/internal/config"
	"github.com/FocuswithJustin/JuniperLexicon/internal/logging"
	"github.com/FocuswithJustin/JuniperLexicon/internal/session"
)

const version = "0.1.0"

// Process exit codes. Usage errors match kong's own exit code.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 80
)

// CLI defines the command-line interface for lexicon.
type CLI struct {
	// Global flags
	DataDir     string `name:"data-dir" short:"d" help:"Directory holding the datasets" default:"${data_dir}"`
	Concordance string `help:"Strong's concordance dataset, relative to --data-dir" default:"${concordance}"`
	Lexicon     string `help:"Lexicon dataset, relative to --data-dir" default:"${lexicon}"`
	LogLevel    string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"${log_level}"`
	LogFormat   string `name:"log-format" help:"Log format (text, json)" default:"${log_format}"`

	Interactive InteractiveCmd `cmd:"" default:"1" help:"Prompt for a mode and a search term"`
	Strongs     StrongsCmd     `cmd:"" help:"Show the references for a Strong's number"`
	Translit    TranslitCmd    `cmd:"" help:"Show the lexicon entry for a transliteration"`
	Info        InfoCmd        `cmd:"" help:"Summarize the configured datasets"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

func (c *CLI) config() config.Config {
	return config.Config{
		DataDir:         c.DataDir,
		ConcordanceFile: c.Concordance,
		LexiconFile:     c.Lexicon,
		LogLevel:        c.LogLevel,
		LogFormat:       c.LogFormat,
	}
}

// app is bound into every command's Run method.
type app struct {
	ctx     context.Context
	session *session.Session
	stdout  io.Writer
}

// InteractiveCmd runs the prompt-driven lookup.
type InteractiveCmd struct{}

func (c *InteractiveCmd) Run(a *app) error {
	return a.session.Run(a.ctx)
}

// StrongsCmd looks up a Strong's number given on the command line.
type StrongsCmd struct {
	Number string `arg:"" help:"Strong's number, e.g. 26 or G26"`
}

func (c *StrongsCmd) Run(a *app) error {
	return a.session.LookupStrongs(a.ctx, c.Number)
}

// TranslitCmd looks up a transliteration given on the command line.
type TranslitCmd struct {
	Text []string `arg:"" help:"Transliteration; multiple words are joined with spaces"`
}

func (c *TranslitCmd) Run(a *app) error {
	return a.session.LookupTransliteration(a.ctx, strings.Join(c.Text, " "))
}

// InfoCmd prints record counts and digests for both datasets.
type InfoCmd struct{}

func (c *InfoCmd) Run(a *app) error {
	return a.session.Info(a.ctx)
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	_, err := fmt.Fprintf(a.stdout, "lexicon version %s\n", version)
	return err
}

// exitCode carries a kong exit request out of Parse.
type exitCode int

// run parses args, executes the selected command and returns the process
// exit code. Not-found results and unknown modes are rendered and exit 0.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(stderr, "lexicon: error: %v\n", err)
		return exitError
	}
	env := config.FromEnv()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("lexicon"),
		kong.Description("Juniper Lexicon - Greek word lookup by Strong's number or transliteration"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
		kong.Vars{
			"data_dir":    env.DataDir,
			"concordance": env.ConcordanceFile,
			"lexicon":     env.LexiconFile,
			"log_level":   env.LogLevel,
			"log_format":  env.LogFormat,
		},
	)
	if err != nil {
		fmt.Fprintf(stderr, "lexicon: error: %v\n", err)
		return exitError
	}

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		var perr *kong.ParseError
		if errors.As(err, &perr) {
			_ = perr.Context.PrintUsage(true)
		}
		return exitUsage
	}

	cfg := cli.config()
	if err := cfg.Validate(); err != nil {
		parser.Errorf("%s", err)
		return exitError
	}
	cfg.InitLogging(stderr)

	ctx, _ := logging.StartRun(context.Background())
	logging.DebugContext(ctx, "run started",
		"command", kctx.Command(),
		"concordance", cfg.ConcordancePath(),
		"lexicon", cfg.LexiconPath(),
	)

	loader := session.FileLoader{
		ConcordancePath: cfg.ConcordancePath(),
		LexiconPath:     cfg.LexiconPath(),
	}
	a := &app{
		ctx:     ctx,
		session: session.New(stdin, stdout, loader),
		stdout:  stdout,
	}

	if err := kctx.Run(a); err != nil {
		if errors.IsSoft(err) {
			logging.DebugContext(ctx, "run finished", "outcome", err.Error())
			return exitOK
		}
		logging.ErrorContext(ctx, "run failed", "error", err)
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
