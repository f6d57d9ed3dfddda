// Package diagnostics renders Lumen compile/runtime errors the way a user
// sees them: a bold red header, a file:line:column pointer, and two lines
// of source context with a caret under the offending token.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/lumen-lang/lumen/internal/token"
)

// Category groups errors by the pipeline stage that raised them.
type Category string

const (
	Lexical   Category = "L"
	Syntactic Category = "P"
	Semantic  Category = "T"
	Runtime   Category = "R"
	Loader    Category = "M"
)

// Error is a single diagnostic: a category, the offending token (for
// position), a message, and the file it came from.
type Error struct {
	Category Category
	Token    token.Token
	Message  string
	File     string
}

func New(cat Category, tok token.Token, format string, args ...any) *Error {
	return &Error{Category: cat, Token: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: error: %s", e.File, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("%d:%d: error: %s", e.Token.Line, e.Token.Column, e.Message)
}

const (
	ansiRed   = "\x1b[1;31m"
	ansiReset = "\x1b[0m"
)

// useColor decides whether ANSI color escapes should be emitted, mirroring
// the teacher's TTY-detection idiom (internal/evaluator/builtins_term.go):
// never color piped or redirected output.
func useColor(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Render produces the full multi-line user-visible diagnostic for e, given
// the original source text it was raised against. fd is the file descriptor
// of the stream the output will be written to (used only for color
// detection); pass 0 or any non-terminal fd to force plain output.
func Render(e *Error, source string, fd uintptr) string {
	var b strings.Builder

	header := fmt.Sprintf("error: %s", e.Message)
	if useColor(fd) {
		header = ansiRed + header + ansiReset
	}
	b.WriteString(header)
	b.WriteByte('\n')

	file := e.File
	if file == "" {
		file = "<input>"
	}
	fmt.Fprintf(&b, "  --> %s:%d:%d\n", file, e.Token.Line, e.Token.Column)

	lines := strings.Split(source, "\n")
	lineIdx := e.Token.Line - 1
	if lineIdx >= 0 && lineIdx < len(lines) {
		if lineIdx > 0 {
			fmt.Fprintf(&b, "%4d | %s\n", lineIdx, lines[lineIdx-1])
		}
		fmt.Fprintf(&b, "%4d | %s\n", lineIdx+1, lines[lineIdx])
		col := e.Token.Column
		if col < 1 {
			col = 1
		}
		width := len(e.Token.Literal)
		if width < 1 {
			width = 1
		}
		b.WriteString("     | ")
		b.WriteString(strings.Repeat(" ", col-1))
		b.WriteString(strings.Repeat("^", width))
		b.WriteByte('\n')
	}
	return b.String()
}
