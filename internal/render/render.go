// Package render draws lookup results as bordered console panels and tables.
//
// Every Render method is a pure function of its arguments; the matching
// unprefixed method writes the same text followed by a newline. Colours are
// chosen by the renderer bound to the output writer, so plain buffers and
// pipes get uncoloured output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/FocuswithJustin/JuniperLexicon/core/lexicon"
)

// Fixed user-facing messages.
const (
	MsgInvalidMode          = "Invalid mode selection. Choose 's' or 't'."
	MsgNoTransliteration    = "No data found for the given transliteration."
	TitleWordInformation    = "Word Information"
	TitleError              = "Error"
	TitleDatasets           = "Datasets"
	ColumnReference         = "Reference"
	ColumnGreek             = "Greek Text"
	referencesNotFoundFmt   = "No references found for Strong's number: %d"
	referencesPanelTitleFmt = "Strong's Number: %d"
)

// ANSI colour indexes matching the classic 16-colour palette.
var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
	colorCyan   = lipgloss.Color("6")
)

// Presenter renders panels for one output stream.
type Presenter struct {
	out io.Writer
	r   *lipgloss.Renderer
}

// New returns a Presenter writing to w.
func New(w io.Writer) *Presenter {
	return &Presenter{
		out: w,
		r:   lipgloss.NewRenderer(w),
	}
}

// panel wraps body in a rounded border, with an optional bold title line.
func (p *Presenter) panel(title, body string, border lipgloss.TerminalColor) string {
	content := body
	if title != "" {
		heading := p.r.NewStyle().Bold(true).Render(title)
		content = lipgloss.JoinVertical(lipgloss.Center, heading, body)
	}
	return p.r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(content)
}

// errorPanel is the red panel used for every soft failure.
func (p *Presenter) errorPanel(title, message string) string {
	body := p.r.NewStyle().Bold(true).Foreground(colorRed).Render(message)
	return p.panel(title, body, colorRed)
}

// RenderReferences renders the concordance view for a Strong's number. A nil
// entry renders the not-found panel.
func (p *Presenter) RenderReferences(number int, entry *lexicon.ConcordanceEntry) string {
	if entry == nil {
		return p.errorPanel("", NotFoundMessage(number))
	}

	headerStyle := p.r.NewStyle().Bold(true).Padding(0, 1)
	refStyle := p.r.NewStyle().Bold(true).Padding(0, 1)
	greekStyle := p.r.NewStyle().Foreground(colorCyan).Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.r.NewStyle().Foreground(colorBlue)).
		Headers(ColumnReference, ColumnGreek).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return refStyle
			default:
				return greekStyle
			}
		})
	for _, occ := range entry.Occurrences {
		t.Row(occ.Reference, occ.Greek)
	}

	title := p.r.NewStyle().Italic(true).Render(entry.Heading)
	body := lipgloss.JoinVertical(lipgloss.Center, title, t.Render())
	return p.panel(fmt.Sprintf(referencesPanelTitleFmt, number), body, colorBlue)
}

// NotFoundMessage is the text shown when a Strong's number has no entry.
func NotFoundMessage(number int) string {
	return fmt.Sprintf(referencesNotFoundFmt, number)
}

// RenderEntryDetails renders a lexicon entry as a key/value table. A nil
// entry renders the fixed not-found panel.
func (p *Presenter) RenderEntryDetails(entry *lexicon.LexiconEntry) string {
	if entry == nil {
		return p.errorPanel(TitleError, MsgNoTransliteration)
	}

	fields := entry.DisplayFields()
	keyWidth := 0
	for _, f := range fields {
		keyWidth = max(keyWidth, lipgloss.Width(f.Key))
	}

	keyStyle := p.r.NewStyle().Foreground(colorCyan).Width(keyWidth + 2)
	valueStyle := p.r.NewStyle().Foreground(colorYellow)

	rows := make([]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			keyStyle.Render(f.Key),
			valueStyle.Render(f.Value),
		))
	}

	return p.panel(TitleWordInformation, lipgloss.JoinVertical(lipgloss.Left, rows...), colorBlue)
}

// RenderError renders a red error panel.
func (p *Presenter) RenderError(title, message string) string {
	return p.errorPanel(title, message)
}

// RenderInvalidMode renders the panel shown for an unknown operation mode.
func (p *Presenter) RenderInvalidMode() string {
	return p.errorPanel("", MsgInvalidMode)
}

// DatasetSummary describes one loaded dataset for the info view.
type DatasetSummary struct {
	Kind    string
	Path    string
	Records int
	Keys    int
	Digest  string
}

// RenderDatasetInfo renders one table row per dataset.
func (p *Presenter) RenderDatasetInfo(summaries []DatasetSummary) string {
	headerStyle := p.r.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := p.r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.r.NewStyle().Foreground(colorGreen)).
		Headers("Dataset", "Path", "Records", "Keys", "BLAKE3").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range summaries {
		t.Row(s.Kind, s.Path, strconv.Itoa(s.Records), strconv.Itoa(s.Keys), s.Digest)
	}

	return p.panel(TitleDatasets, t.Render(), colorGreen)
}

// References prints RenderReferences.
func (p *Presenter) References(number int, entry *lexicon.ConcordanceEntry) error {
	return p.println(p.RenderReferences(number, entry))
}

// EntryDetails prints RenderEntryDetails.
func (p *Presenter) EntryDetails(entry *lexicon.LexiconEntry) error {
	return p.println(p.RenderEntryDetails(entry))
}

// Error prints RenderError.
func (p *Presenter) Error(title, message string) error {
	return p.println(p.RenderError(title, message))
}

// InvalidMode prints RenderInvalidMode.
func (p *Presenter) InvalidMode() error {
	return p.println(p.RenderInvalidMode())
}

// DatasetInfo prints RenderDatasetInfo.
func (p *Presenter) DatasetInfo(summaries []DatasetSummary) error {
	return p.println(p.RenderDatasetInfo(summaries))
}

// Prompt writes a styled prompt without a trailing newline.
func (p *Presenter) Prompt(text string, emphasize bool) error {
	if emphasize {
		// Style only the visible text so the trailing space survives rendering.
		body := strings.TrimRight(text, " ")
		text = p.r.NewStyle().Bold(true).Foreground(colorGreen).Render(body) + text[len(body):]
	}
	_, err := io.WriteString(p.out, text)
	return err
}

func (p *Presenter) println(s string) error {
	_, err := fmt.Fprintln(p.out, s)
	return err
}
