// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"

	"github.com/ezrec/asm8/internal"
	"github.com/ezrec/asm8/isa"
)

// Assembler is a two pass assembler for the 8-bit instruction set.
type Assembler struct {
	Verbose bool                // If set, verbosely logs the assembler actions.
	Set     *isa.InstructionSet // Instruction set; nil selects isa.Default().
}

// Assemble assembles source text with the default instruction set.
func Assemble(source string) (prog *Program, err error) {
	asm := &Assembler{}
	return asm.Assemble(source)
}

// instructionSet returns the configured instruction set.
func (asm *Assembler) instructionSet() *isa.InstructionSet {
	if asm.Set == nil {
		return isa.Default()
	}
	return asm.Set
}

// Assemble assembles source text into a Program. Any assembly problem is
// returned as an *Error.
func (asm *Assembler) Assemble(source string) (prog *Program, err error) {
	set := asm.instructionSet()

	tokens := Tokenize(source, set)
	if asm.Verbose {
		log.Printf("tokens: %v", len(tokens))
	}

	statements, err := Parse(tokens, set)
	if err != nil {
		return
	}
	if len(statements) == 0 {
		// A program always ends with the terminator, even an empty one.
		err = errMissingEnd(SourceRange{Start: Position{Line: 1}, End: Position{Line: 1}}, set.Terminator())
		return
	}

	labels, err := ResolveLabels(statements, set)
	if err != nil {
		return
	}
	if asm.Verbose {
		for label, address := range internal.SortedSeq2(labels) {
			log.Printf("label %v: %02X", label, address)
		}
	}

	code, stmts, err := Generate(statements, labels, set)
	if err != nil {
		return
	}

	prog = &Program{
		Code:       code,
		Statements: stmts,
		Labels:     labels,
	}

	if asm.Verbose {
		for address, stmt := range prog.Sorted() {
			log.Printf("%02X: % X", address, stmt.MachineCode)
		}
	}

	return
}

// Parse reads all of input and assembles it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.Assemble(string(source))
}
