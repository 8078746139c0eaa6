package assembler

import (
	"fmt"
)

// Position is a line and column in the source text.
type Position struct {
	Line   int `json:"line"`   // 1-based line.
	Column int `json:"column"` // 0-based column, in characters.
}

// SourceRange is a half open span of source characters.
type SourceRange struct {
	From  int      `json:"from"` // Character offset of the first character.
	To    int      `json:"to"`   // Character offset past the last character.
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// String returns the start of the range as line:column, with a 1-based
// column as compilers print it.
func (rng SourceRange) String() string {
	return fmt.Sprintf("%d:%d", rng.Start.Line, rng.Start.Column+1)
}

// span returns the range from the start of rng to the end of last.
func (rng SourceRange) span(last SourceRange) SourceRange {
	return SourceRange{
		From:  rng.From,
		To:    last.To,
		Start: rng.Start,
		End:   last.End,
	}
}

// at returns the single character range at offset n inside a one line range.
func (rng SourceRange) at(n int) SourceRange {
	start := Position{Line: rng.Start.Line, Column: rng.Start.Column + n}
	return SourceRange{
		From:  rng.From + n,
		To:    rng.From + n + 1,
		Start: start,
		End:   Position{Line: start.Line, Column: start.Column + 1},
	}
}

// tail returns the empty range at the end of rng.
func (rng SourceRange) tail() SourceRange {
	return SourceRange{
		From:  rng.To,
		To:    rng.To,
		Start: rng.End,
		End:   rng.End,
	}
}
