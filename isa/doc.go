// Package isa describes the 8-bit instruction set understood by the assembler.
//
// The instruction set is four general purpose registers (AL, BL, CL, DL), a
// 256 byte address space, and a fixed table of mnemonics. Each mnemonic has
// one or more forms; a form is the list of operand kinds it accepts and the
// opcode it encodes to. An InstructionSet is immutable once built, so a
// single value can be shared by any number of concurrent assemblies.
package isa
