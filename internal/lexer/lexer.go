// Package lexer converts Lumen source text into a stream of tokens,
// tracking 1-based line/column positions. Grounded on the teacher's
// character-at-a-time scanner (internal/lexer/lexer.go): readChar/peekChar,
// longest-match operator dispatch, and a dedicated newline bump for column
// resets.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/lumen-lang/lumen/internal/token"
)

type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		l.readPosition++
		l.column++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPosition
	for i := 0; i < offset; i++ {
		if pos >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t', '\r', ' ':
			l.readChar()
			continue
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
			continue
		}
		return
	}
}

func newToken(kind token.Kind, ch rune, line, col int) token.Token {
	return token.Token{Kind: kind, Literal: string(ch), Line: line, Column: col}
}

// NextToken scans and returns the next token, never failing: an
// unrecognized character becomes an ILLEGAL token and lexing continues.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	line, col := l.line, l.column
	var tok token.Token

	switch l.ch {
	case '\n':
		tok = newToken(token.NEWLINE, l.ch, line, col)
	case 0:
		tok = token.Token{Kind: token.EOF, Literal: "", Line: line, Column: col}
	case '+':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.PLUS_ASSIGN, Literal: "+=", Line: line, Column: col}
		} else {
			tok = newToken(token.PLUS, l.ch, line, col)
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Kind: token.ARROW, Literal: "->", Line: line, Column: col}
		} else {
			tok = newToken(token.MINUS, l.ch, line, col)
		}
	case '*':
		tok = newToken(token.ASTERISK, l.ch, line, col)
	case '/':
		tok = newToken(token.SLASH, l.ch, line, col)
	case '%':
		tok = newToken(token.PERCENT, l.ch, line, col)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.EQ, Literal: "==", Line: line, Column: col}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Kind: token.FAT_ARROW, Literal: "=>", Line: line, Column: col}
		} else {
			tok = newToken(token.ASSIGN, l.ch, line, col)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.NOT_EQ, Literal: "!=", Line: line, Column: col}
		} else {
			tok = newToken(token.BANG, l.ch, line, col)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.LT_EQ, Literal: "<=", Line: line, Column: col}
		} else {
			tok = newToken(token.LT, l.ch, line, col)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Kind: token.GT_EQ, Literal: ">=", Line: line, Column: col}
		} else {
			tok = newToken(token.GT, l.ch, line, col)
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = token.Token{Kind: token.AND, Literal: "&&", Line: line, Column: col}
		} else {
			tok = newToken(token.AMP, l.ch, line, col)
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = token.Token{Kind: token.OR, Literal: "||", Line: line, Column: col}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Kind: token.PIPE, Literal: "|>", Line: line, Column: col}
		} else {
			tok = newToken(token.BAR, l.ch, line, col)
		}
	case '?':
		tok = newToken(token.QUESTION, l.ch, line, col)
	case '.':
		if l.peekChar() == '.' && l.peekCharAt(1) == '.' {
			l.readChar()
			l.readChar()
			tok = token.Token{Kind: token.ELLIPSIS, Literal: "...", Line: line, Column: col}
		} else {
			tok = newToken(token.DOT, l.ch, line, col)
		}
	case ',':
		tok = newToken(token.COMMA, l.ch, line, col)
	case ':':
		tok = newToken(token.COLON, l.ch, line, col)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, line, col)
	case '(':
		tok = newToken(token.LPAREN, l.ch, line, col)
	case ')':
		tok = newToken(token.RPAREN, l.ch, line, col)
	case '[':
		tok = newToken(token.LBRACKET, l.ch, line, col)
	case ']':
		tok = newToken(token.RBRACKET, l.ch, line, col)
	case '{':
		tok = newToken(token.LBRACE, l.ch, line, col)
	case '}':
		tok = newToken(token.RBRACE, l.ch, line, col)
	case '"':
		return l.readString(line, col)
	default:
		if isLetter(l.ch) {
			return l.readIdentifier(line, col)
		}
		if isDigit(l.ch) {
			return l.readNumber(line, col)
		}
		tok = token.Token{Kind: token.ILLEGAL, Literal: string(l.ch), Line: line, Column: col}
	}
	l.readChar()
	return tok
}

func isLetter(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.position]
	if lit == "_" {
		return token.Token{Kind: token.WILDCARD, Literal: lit, Line: line, Column: col}
	}
	return token.Token{Kind: token.LookupIdent(lit), Literal: lit, Line: line, Column: col}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	isDouble := false
	if l.ch == '.' && isDigit(l.peekChar()) {
		isDouble = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lit := l.input[start:l.position]
	if isDouble {
		return token.Token{Kind: token.DOUBLE, Literal: lit, Line: line, Column: col}
	}
	return token.Token{Kind: token.INT, Literal: lit, Line: line, Column: col}
}

// readString scans a double-quoted or triple-quoted string, applying the
// documented escapes, and classifies the result as STRING or, when it
// contains ${...} interpolation, INTERP_STRING. Literal holds the unescaped
// text with any ${...} markers still in place; the parser's
// parseInterpStringLiteral splits it into the segment list.
func (l *Lexer) readString(line, col int) token.Token {
	// Triple-quoted: """ ... """, raw, preserves newlines, no escapes.
	if l.peekChar() == '"' && l.peekCharAt(1) == '"' {
		l.readChar() // second "
		l.readChar() // third "
		l.readChar() // first char of content
		var b strings.Builder
		for !(l.ch == '"' && l.peekChar() == '"' && l.peekCharAt(1) == '"') && l.ch != 0 {
			b.WriteRune(l.ch)
			l.readChar()
		}
		if l.ch != 0 {
			l.readChar()
			l.readChar()
			l.readChar()
		}
		return token.Token{Kind: token.STRING, Literal: b.String(), Line: line, Column: col}
	}

	l.readChar() // consume opening quote
	var b strings.Builder
	hasInterp := false
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			switch l.peekChar() {
			case '"':
				b.WriteByte('"')
				l.readChar()
			case '\\':
				b.WriteByte('\\')
				l.readChar()
			case 'n':
				b.WriteByte('\n')
				l.readChar()
			case 't':
				b.WriteByte('\t')
				l.readChar()
			case 'r':
				b.WriteByte('\r')
				l.readChar()
			default:
				// Unknown escape passes through literally, backslash included.
				b.WriteRune(l.ch)
			}
			l.readChar()
			continue
		}
		if l.ch == '$' && l.peekChar() == '{' {
			hasInterp = true
			b.WriteRune(l.ch)
			l.readChar()
			b.WriteRune(l.ch)
			l.readChar()
			depth := 1
			for depth > 0 && l.ch != 0 {
				if l.ch == '{' {
					depth++
				} else if l.ch == '}' {
					depth--
					if depth == 0 {
						b.WriteRune(l.ch)
						l.readChar()
						break
					}
				}
				b.WriteRune(l.ch)
				l.readChar()
			}
			continue
		}
		b.WriteRune(l.ch)
		l.readChar()
	}
	if l.ch == '"' {
		l.readChar()
	}
	kind := token.STRING
	if hasInterp {
		kind = token.INTERP_STRING
	}
	return token.Token{Kind: kind, Literal: b.String(), Line: line, Column: col}
}
