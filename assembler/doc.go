// Package assembler implements the two pass assembler for the 8-bit
// simulator instruction set.
//
// Source text is tokenized, parsed into statements, walked once to place
// labels (pass 1), and walked again to resolve relative jumps and emit the
// machine code image (pass 2). The first problem found stops the assembly
// and is returned as an *Error carrying its source range, so an editor can
// underline it.
//
// Assembly is a pure function of the source text and the instruction set:
// an Assembler holds no state between calls.
package assembler
