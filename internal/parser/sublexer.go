package parser

import "github.com/lumen-lang/lumen/internal/lexer"

// newSubLexer creates a fresh lexer over an interpolation fragment's source
// text, used to re-parse the expression embedded in a "${...}" segment.
func newSubLexer(src string) *lexer.Lexer { return lexer.New(src) }
