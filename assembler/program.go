package assembler

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/asm8/internal"
)

// Program is the result of an assembly: the memory image and the statement
// that produced each part of it.
type Program struct {
	Code       MachineCode  // Address to byte.
	Statements StatementMap // Start address to statement.
	Labels     LabelMap     // Label to address.
}

// Memory returns the memory image, with unassigned addresses zeroed.
func (prog *Program) Memory() (mem [MEMORY_SIZE]byte) {
	for address, b := range prog.Code {
		mem[address] = b
	}
	return
}

// Codes iterates the assigned bytes in address order.
func (prog *Program) Codes() iter.Seq2[int, byte] {
	return internal.SortedSeq2(prog.Code)
}

// Sorted iterates the statements in address order.
func (prog *Program) Sorted() iter.Seq2[int, *Statement] {
	return internal.SortedSeq2(prog.Statements)
}

// Debug returns the statement whose machine code covers the address, or
// failing that the statement recorded at it.
func (prog *Program) Debug(pc int) (stmt *Statement, ok bool) {
	for address, here := range prog.Sorted() {
		if pc >= address && pc < address+len(here.MachineCode) {
			stmt, ok = here, true
			return
		}
	}

	stmt, ok = prog.Statements[pc]
	return
}

// Source returns the statement as written, normalized to single spaces.
func (stmt *Statement) Source() string {
	var sb strings.Builder

	if stmt.Label != nil {
		sb.WriteString(stmt.Label.Identifier)
		sb.WriteString(": ")
	}
	sb.WriteString(stmt.Instruction.Raw)
	for n, op := range stmt.Operands {
		if n == 0 {
			sb.WriteString(" ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(op.Raw)
	}

	return sb.String()
}

// Listing writes one line per statement: address, bytes and source.
func (prog *Program) Listing(w io.Writer) (err error) {
	for address, stmt := range prog.Sorted() {
		_, err = fmt.Fprintf(w, "%02X: %-12s %v\n", address, fmt.Sprintf("% X", stmt.MachineCode), stmt.Source())
		if err != nil {
			return
		}
	}
	return
}

// HexDump writes the memory image as 16 rows of 16 bytes.
func (prog *Program) HexDump(w io.Writer) (err error) {
	mem := prog.Memory()
	for row := 0; row < MEMORY_SIZE; row += 16 {
		_, err = fmt.Fprintf(w, "%02X: % X\n", row, mem[row:row+16])
		if err != nil {
			return
		}
	}
	return
}
