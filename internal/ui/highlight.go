package ui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
)

// highlighter renders source lines with ANSI colors using the chroma lexer
// matched from a file name. A nil highlighter passes lines through.
type highlighter struct {
	lexer     chroma.Lexer
	formatter chroma.Formatter
	style     *chroma.Style
}

// newHighlighter returns a highlighter for the given file name, or nil
// when no lexer matches.
func newHighlighter(path string) *highlighter {
	lexer := lexers.Match(path)
	if lexer == nil {
		return nil
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &highlighter{
		lexer:     chroma.Coalesce(lexer),
		formatter: formatter,
		style:     chromastyles.Get("monokai"),
	}
}

// Line highlights a single source line, falling back to the raw text on
// any tokenizer or formatter error.
func (h *highlighter) Line(content string) string {
	if h == nil || content == "" {
		return content
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return content
	}
	return strings.TrimRight(buf.String(), "\n")
}
