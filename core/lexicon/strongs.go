package lexicon

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/JuniperLexicon/core/errors"
)

// strongsGrammar is the participle grammar for a typed Strong's number.
// Examples: "26", "G26", "g0026", " 3056 ". The prefix must touch the digits.
type strongsGrammar struct {
	Prefix string `parser:"@Prefix?"`
	Number string `parser:"@Int"`
}

// strongsLexer defines the lexer for Strong's numbers.
var strongsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Prefix", Pattern: `[Gg]`},
	{Name: "Int", Pattern: `[0-9]+`},
})

var strongsParser = participle.MustBuild[strongsGrammar](
	participle.Lexer(strongsLexer),
)

// ParseStrongsNumber parses a Strong's number typed by the user. An optional
// Greek "G" prefix is accepted; the rest must be an unsigned integer literal.
func ParseStrongsNumber(s string) (int, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, errors.NewInputParse(s, "a Strong's number is required", nil)
	}

	parsed, err := strongsParser.ParseString("", trimmed)
	if err != nil {
		return 0, errors.NewInputParse(s, "not a Strong's number", err)
	}

	n, err := strconv.Atoi(parsed.Number)
	if err != nil {
		return 0, errors.NewInputParse(s, "Strong's number out of range", err)
	}
	return n, nil
}
