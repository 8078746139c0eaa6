package assembler

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ezrec/asm8/isa"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_WHITESPACE = TokenKind(0) // Whitespace
	TOKEN_COMMENT    = TokenKind(1) // Comment
	TOKEN_COMMA      = TokenKind(2) // Comma
	TOKEN_COLON      = TokenKind(3) // Colon
	TOKEN_DIGITS     = TokenKind(4) // Digits
	TOKEN_REGISTER   = TokenKind(5) // Register
	TOKEN_ADDRESS    = TokenKind(6) // Address
	TOKEN_STRING     = TokenKind(7) // String
	TOKEN_UNKNOWN    = TokenKind(8) // Unknown
)

// Token is a lexical token.
type Token struct {
	Kind  TokenKind
	Value string // Normalized text: brackets and quotes removed, upper cased.
	Raw   string // Source text.
	Range SourceRange
}

// matcher returns the length, in runes, of the token of its kind at the
// start of input, or 0 if there is none.
type matcher struct {
	kind  TokenKind
	match func(lex *lexer, input []rune) int
}

// matchers are tried in order; the first match wins.
var matchers = []matcher{
	{TOKEN_WHITESPACE, matchWhitespace},
	{TOKEN_COMMENT, matchComment},
	{TOKEN_COMMA, matchRune(',')},
	{TOKEN_COLON, matchRune(':')},
	{TOKEN_DIGITS, matchDigits},
	{TOKEN_REGISTER, matchRegister},
	{TOKEN_ADDRESS, matchDelimited('[', ']')},
	{TOKEN_STRING, matchDelimited('"', '"')},
	{TOKEN_UNKNOWN, matchUnknown},
}

func isWord(r rune) bool {
	return r == '_' || (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isSpace also counts a byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// isBoundary is true at the end of input or before a non-word character.
func isBoundary(input []rune, n int) bool {
	return n >= len(input) || !isWord(input[n])
}

// isDelimiter is true at the end of input or before a token separator.
func isDelimiter(input []rune, n int) bool {
	if n >= len(input) {
		return true
	}
	r := input[n]
	return isSpace(r) || r == ';' || r == ',' || r == ':'
}

func matchWhitespace(lex *lexer, input []rune) (n int) {
	for n < len(input) && isSpace(input[n]) {
		n++
	}
	return
}

func matchComment(lex *lexer, input []rune) (n int) {
	if input[0] != ';' {
		return
	}
	n = 1
	for n < len(input) && !isLineBreak(input[n]) {
		n++
	}
	return
}

func matchRune(r rune) func(*lexer, []rune) int {
	return func(lex *lexer, input []rune) int {
		if input[0] == r {
			return 1
		}
		return 0
	}
}

func matchDigits(lex *lexer, input []rune) (n int) {
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}
	if n > 0 && !isBoundary(input, n) {
		n = 0
	}
	return
}

func matchRegister(lex *lexer, input []rune) int {
	if len(input) < 2 || input[0] > unicode.MaxASCII || input[1] > unicode.MaxASCII {
		return 0
	}
	if !isBoundary(input, 2) {
		return 0
	}
	if _, ok := lex.set.Register(strings.ToUpper(string(input[:2]))); !ok {
		return 0
	}
	return 2
}

// matchDelimited matches the shortest left...right run whose right is
// followed by a delimiter. Addresses may not contain whitespace, strings
// may not contain line breaks.
func matchDelimited(left, right rune) func(*lexer, []rune) int {
	stop := isSpace
	if left == '"' {
		stop = isLineBreak
	}
	return func(lex *lexer, input []rune) int {
		if input[0] != left {
			return 0
		}
		for n := 1; n < len(input) && !stop(input[n]); n++ {
			if input[n] == right && isDelimiter(input, n+1) {
				return n + 1
			}
		}
		return 0
	}
}

func matchUnknown(lex *lexer, input []rune) (n int) {
	for n < len(input) && !isDelimiter(input, n) {
		n++
	}
	return
}

// normalize computes the Value of a token from its source text.
func normalize(kind TokenKind, raw string) string {
	switch kind {
	case TOKEN_ADDRESS:
		return strings.ToUpper(raw[1 : len(raw)-1])
	case TOKEN_STRING:
		return raw[1 : len(raw)-1]
	case TOKEN_REGISTER, TOKEN_UNKNOWN:
		return strings.ToUpper(raw)
	default:
		return raw
	}
}

type lexer struct {
	set    *isa.InstructionSet
	input  []rune
	index  int
	line   int
	column int
}

// next scans the token at the current position and advances past it.
func (lex *lexer) next() (token Token) {
	input := lex.input[lex.index:]
	for _, m := range matchers {
		n := m.match(lex, input)
		if n == 0 {
			continue
		}
		raw := string(input[:n])
		token = Token{
			Kind:  m.kind,
			Value: normalize(m.kind, raw),
			Raw:   raw,
			Range: SourceRange{
				From:  lex.index,
				To:    lex.index + n,
				Start: Position{Line: lex.line, Column: lex.column},
			},
		}
		lex.advance(input[:n])
		token.Range.End = Position{Line: lex.line, Column: lex.column}
		return
	}

	// Unreachable: every rune starts a whitespace, comment, comma, colon
	// or unknown token.
	panic(fmt.Sprintf("asm8: no token at offset %d", lex.index))
}

// advance moves the position past the text, counting line breaks. A "\r\n"
// pair is a single line break.
func (lex *lexer) advance(text []rune) {
	lex.index += len(text)
	for _, r := range text {
		if r == '\n' {
			lex.line++
			lex.column = 0
		} else {
			lex.column++
		}
	}
}

// Tokenize converts source text into tokens, dropping whitespace and
// comments. Scanning stops after the first token whose value is the
// terminator mnemonic; anything after it is ignored.
func Tokenize(source string, set *isa.InstructionSet) (tokens []Token) {
	if set == nil {
		set = isa.Default()
	}

	lex := &lexer{
		set:   set,
		input: []rune(source),
		line:  1,
	}

	terminator := string(set.Terminator())
	for lex.index < len(lex.input) {
		token := lex.next()
		if token.Kind == TOKEN_WHITESPACE || token.Kind == TOKEN_COMMENT {
			continue
		}
		tokens = append(tokens, token)
		if token.Value == terminator {
			break
		}
	}

	return
}
