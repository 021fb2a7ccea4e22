package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/csspipe/internal/core/domain"
	"go.trai.ch/csspipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// CompactName is the plugin name of the whitespace compactor.
const CompactName = "compact"

var _ ports.Processor = (*Compact)(nil)

// Compact collapses insignificant whitespace. Comments, and therefore guarded
// placeholders, are kept verbatim.
type Compact struct{}

// NewCompact creates a Compact plugin.
func NewCompact() *Compact {
	return &Compact{}
}

// Process tokenizes css and rewrites it with minimal whitespace.
// Malformed strings and urls are copied through and reported as a warning.
func (c *Compact) Process(_ context.Context, src string) (domain.Result, error) {
	lexer := css.NewLexer(parse.NewInputString(src))

	var (
		out      strings.Builder
		warnings []string
		pending  bool
		prevGT   bool
	)
	prev := css.ErrorToken
	line := 1

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return domain.Result{}, domain.NewTransformError(
					zerr.With(zerr.Wrap(err, "compact"), "line", line).Error(),
				)
			}
			break
		}

		switch tt {
		case css.WhitespaceToken:
			pending = true
		case css.BadStringToken, css.BadURLToken:
			warnings = append(warnings, fmt.Sprintf("compact: malformed %s on line %d", badKind(tt), line))
			fallthrough
		default:
			if pending && out.Len() > 0 && !tightAfter(prev, prevGT) && !tightBefore(tt, data) {
				out.WriteByte(' ')
			}
			out.Write(data)
			prev = tt
			prevGT = isChild(tt, data)
			pending = false
		}

		line += bytes.Count(data, []byte{'\n'})
	}

	return domain.Result{CSS: out.String(), Warning: strings.Join(warnings, "\n")}, nil
}

func badKind(tt css.TokenType) string {
	if tt == css.BadURLToken {
		return "url"
	}
	return "string"
}

// tightBefore reports whether whitespace in front of the token is insignificant.
func tightBefore(tt css.TokenType, data []byte) bool {
	switch tt {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken:
		return true
	case css.DelimToken:
		return isChild(tt, data)
	}
	return false
}

func isChild(tt css.TokenType, data []byte) bool {
	return tt == css.DelimToken && len(data) == 1 && data[0] == '>'
}

// tightAfter reports whether whitespace following the previous token is insignificant.
// A colon only tightens its right side: "a :hover" and "a:hover" select different elements.
func tightAfter(prev css.TokenType, child bool) bool {
	switch prev {
	case css.LeftBraceToken, css.RightBraceToken, css.SemicolonToken, css.CommaToken, css.ColonToken:
		return true
	}
	return child
}
