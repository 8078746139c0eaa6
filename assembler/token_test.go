package assembler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm8/isa"
)

type tokenBrief struct {
	Kind  TokenKind
	Value string
}

func brief(tokens []Token) (out []tokenBrief) {
	for _, token := range tokens {
		out = append(out, tokenBrief{token.Kind, token.Value})
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	source := "start:\n  mov al, 01\n  jmp start\nend\n"

	tokens := Tokenize(source, nil)

	expected := []tokenBrief{
		{TOKEN_UNKNOWN, "START"},
		{TOKEN_COLON, ":"},
		{TOKEN_UNKNOWN, "MOV"},
		{TOKEN_REGISTER, "AL"},
		{TOKEN_COMMA, ","},
		{TOKEN_DIGITS, "01"},
		{TOKEN_UNKNOWN, "JMP"},
		{TOKEN_UNKNOWN, "START"},
		{TOKEN_UNKNOWN, "END"},
	}
	assert.Equal(expected, brief(tokens))

	assert.Equal("start", tokens[0].Raw)
	assert.Equal(SourceRange{From: 0, To: 5, Start: Position{1, 0}, End: Position{1, 5}}, tokens[0].Range)
	assert.Equal(SourceRange{From: 5, To: 6, Start: Position{1, 5}, End: Position{1, 6}}, tokens[1].Range)
	assert.Equal(SourceRange{From: 9, To: 12, Start: Position{2, 2}, End: Position{2, 5}}, tokens[2].Range)
	assert.Equal(SourceRange{From: 13, To: 15, Start: Position{2, 6}, End: Position{2, 8}}, tokens[3].Range)
	assert.Equal(SourceRange{From: 17, To: 19, Start: Position{2, 10}, End: Position{2, 12}}, tokens[5].Range)
	assert.Equal(SourceRange{From: 26, To: 31, Start: Position{3, 6}, End: Position{3, 11}}, tokens[7].Range)
	assert.Equal(SourceRange{From: 32, To: 35, Start: Position{4, 0}, End: Position{4, 3}}, tokens[8].Range)
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []tokenBrief
	}{
		{
			name:     "comment dropped",
			source:   "inc al ; increment\ninc bl",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "INC"}, {TOKEN_REGISTER, "AL"}, {TOKEN_UNKNOWN, "INC"}, {TOKEN_REGISTER, "BL"}},
		},
		{
			name:     "address",
			source:   "[c0] [bl],[ff]",
			expected: []tokenBrief{{TOKEN_ADDRESS, "C0"}, {TOKEN_ADDRESS, "BL"}, {TOKEN_COMMA, ","}, {TOKEN_ADDRESS, "FF"}},
		},
		{
			name:     "address shortest match",
			source:   "[a]b] x",
			expected: []tokenBrief{{TOKEN_ADDRESS, "A]B"}, {TOKEN_UNKNOWN, "X"}},
		},
		{
			name:     "unterminated address",
			source:   "[c0 x",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "[C0"}, {TOKEN_UNKNOWN, "X"}},
		},
		{
			name:     "string keeps case",
			source:   `db "Hello, World!"`,
			expected: []tokenBrief{{TOKEN_UNKNOWN, "DB"}, {TOKEN_STRING, "Hello, World!"}},
		},
		{
			name:     "unterminated string",
			source:   "db \"abc\ninc al",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "DB"}, {TOKEN_UNKNOWN, `"ABC`}, {TOKEN_UNKNOWN, "INC"}, {TOKEN_REGISTER, "AL"}},
		},
		{
			name:     "digits need a word boundary",
			source:   "01 0a 10,",
			expected: []tokenBrief{{TOKEN_DIGITS, "01"}, {TOKEN_UNKNOWN, "0A"}, {TOKEN_DIGITS, "10"}, {TOKEN_COMMA, ","}},
		},
		{
			name:     "register needs a word boundary",
			source:   "al ALX dl",
			expected: []tokenBrief{{TOKEN_REGISTER, "AL"}, {TOKEN_UNKNOWN, "ALX"}, {TOKEN_REGISTER, "DL"}},
		},
		{
			name:     "not a register",
			source:   "el",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "EL"}},
		},
		{
			name:     "single quote",
			source:   "'a'",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "'A'"}},
		},
		{
			name:     "stops at end",
			source:   "inc al\nEnd\ngarbage [ \" ' here",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "INC"}, {TOKEN_REGISTER, "AL"}, {TOKEN_UNKNOWN, "END"}},
		},
		{
			name:     "byte order mark",
			source:   "\ufeffmov al, 01\ufeffinc",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "MOV"}, {TOKEN_REGISTER, "AL"}, {TOKEN_COMMA, ","}, {TOKEN_DIGITS, "01"}, {TOKEN_UNKNOWN, "INC"}},
		},
		{
			name:     "address ends at byte order mark",
			source:   "[c0\ufeff]",
			expected: []tokenBrief{{TOKEN_UNKNOWN, "[C0"}, {TOKEN_UNKNOWN, "]"}},
		},
		{
			name:     "empty",
			source:   "  \n\t; nothing\n",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tt.expected, brief(Tokenize(tt.source, nil)))
		})
	}
}

func TestTokenizeLines(t *testing.T) {
	assert := assert.New(t)

	tokens := Tokenize("inc al\r\n\r\n  ; comment\r\n   dec bl", nil)
	assert.Len(tokens, 4)

	assert.Equal(Position{1, 0}, tokens[0].Range.Start)
	assert.Equal(Position{4, 3}, tokens[2].Range.Start)
	assert.Equal(Position{4, 7}, tokens[3].Range.Start)
	assert.Equal(Position{4, 9}, tokens[3].Range.End)
}

func TestTokenizeRunes(t *testing.T) {
	assert := assert.New(t)

	// Offsets count characters, not bytes.
	tokens := Tokenize(`db "日本" inc`, nil)
	assert.Len(tokens, 3)
	assert.Equal(SourceRange{From: 3, To: 7, Start: Position{1, 3}, End: Position{1, 7}}, tokens[1].Range)
	assert.Equal(8, tokens[2].Range.From)
}

func TestTokenizeRegisterSet(t *testing.T) {
	assert := assert.New(t)

	set, err := isa.Default().WithRegisters([]string{"RA", "RB", "RC", "RD"})
	assert.NoError(err)

	tokens := Tokenize("ra al", set)
	assert.Equal([]tokenBrief{{TOKEN_REGISTER, "RA"}, {TOKEN_UNKNOWN, "AL"}}, brief(tokens))
}

func TestTokenKindString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Colon", TOKEN_COLON.String())
	assert.Equal("TokenKind(42)", TokenKind(42).String())
}
