package isa

import (
	"fmt"
)

// Opcode is the numeric encoding of a mnemonic and addressing mode pair.
type Opcode uint8

const (
	// Direct arithmetic
	OP_ADD_REG_TO_REG   = Opcode(0xa0) // ADD_REG_TO_REG
	OP_SUB_REG_FROM_REG = Opcode(0xa1) // SUB_REG_FROM_REG
	OP_MUL_REG_BY_REG   = Opcode(0xa2) // MUL_REG_BY_REG
	OP_DIV_REG_BY_REG   = Opcode(0xa3) // DIV_REG_BY_REG
	OP_INC_REG          = Opcode(0xa4) // INC_REG
	OP_DEC_REG          = Opcode(0xa5) // DEC_REG
	OP_MOD_REG_BY_REG   = Opcode(0xa6) // MOD_REG_BY_REG
	OP_AND_REG_WITH_REG = Opcode(0xaa) // AND_REG_WITH_REG
	OP_OR_REG_WITH_REG  = Opcode(0xab) // OR_REG_WITH_REG
	OP_XOR_REG_WITH_REG = Opcode(0xac) // XOR_REG_WITH_REG
	OP_NOT_REG          = Opcode(0xad) // NOT_REG
	OP_ROL_REG          = Opcode(0x9a) // ROL_REG
	OP_ROR_REG          = Opcode(0x9b) // ROR_REG
	OP_SHL_REG          = Opcode(0x9c) // SHL_REG
	OP_SHR_REG          = Opcode(0x9d) // SHR_REG

	// Immediate arithmetic
	OP_ADD_NUM_TO_REG   = Opcode(0xb0) // ADD_NUM_TO_REG
	OP_SUB_NUM_FROM_REG = Opcode(0xb1) // SUB_NUM_FROM_REG
	OP_MUL_REG_BY_NUM   = Opcode(0xb2) // MUL_REG_BY_NUM
	OP_DIV_REG_BY_NUM   = Opcode(0xb3) // DIV_REG_BY_NUM
	OP_MOD_REG_BY_NUM   = Opcode(0xb6) // MOD_REG_BY_NUM
	OP_AND_REG_WITH_NUM = Opcode(0xba) // AND_REG_WITH_NUM
	OP_OR_REG_WITH_NUM  = Opcode(0xbb) // OR_REG_WITH_NUM
	OP_XOR_REG_WITH_NUM = Opcode(0xbc) // XOR_REG_WITH_NUM

	// Jumps, relative to the jump instruction.
	OP_JMP = Opcode(0xc0) // JMP
	OP_JZ  = Opcode(0xc1) // JZ
	OP_JNZ = Opcode(0xc2) // JNZ
	OP_JS  = Opcode(0xc3) // JS
	OP_JNS = Opcode(0xc4) // JNS
	OP_JO  = Opcode(0xc5) // JO
	OP_JNO = Opcode(0xc6) // JNO

	// Moves
	OP_MOV_NUM_TO_REG      = Opcode(0xd0) // MOV_NUM_TO_REG
	OP_MOV_ADDR_TO_REG     = Opcode(0xd1) // MOV_ADDR_TO_REG
	OP_MOV_REG_TO_ADDR     = Opcode(0xd2) // MOV_REG_TO_ADDR
	OP_MOV_REG_ADDR_TO_REG = Opcode(0xd3) // MOV_REG_ADDR_TO_REG
	OP_MOV_REG_TO_REG_ADDR = Opcode(0xd4) // MOV_REG_TO_REG_ADDR

	// Comparison
	OP_CMP_REG_WITH_REG  = Opcode(0xda) // CMP_REG_WITH_REG
	OP_CMP_REG_WITH_NUM  = Opcode(0xdb) // CMP_REG_WITH_NUM
	OP_CMP_REG_WITH_ADDR = Opcode(0xdc) // CMP_REG_WITH_ADDR

	// Stack
	OP_PUSH_FROM_REG = Opcode(0xe0) // PUSH_FROM_REG
	OP_POP_TO_REG    = Opcode(0xe1) // POP_TO_REG
	OP_PUSHF         = Opcode(0xea) // PUSHF
	OP_POPF          = Opcode(0xeb) // POPF

	// Procedures and interrupts
	OP_CALL_ADDR = Opcode(0xca) // CALL_ADDR
	OP_RET       = Opcode(0xcb) // RET
	OP_INT_ADDR  = Opcode(0xcc) // INT_ADDR
	OP_IRET      = Opcode(0xcd) // IRET

	// Input and output
	OP_IN_FROM_PORT_TO_AL  = Opcode(0xf0) // IN_FROM_PORT_TO_AL
	OP_OUT_FROM_AL_TO_PORT = Opcode(0xf1) // OUT_FROM_AL_TO_PORT

	// Miscellaneous
	OP_HALT = Opcode(0x00) // HALT
	OP_CLI  = Opcode(0xfc) // CLI
	OP_STI  = Opcode(0xfd) // STI
	OP_CLO  = Opcode(0xfe) // CLO
	OP_NOP  = Opcode(0xff) // NOP
)

// opcodeName maps the opcode names, as used by instruction set scripts, to
// their default encodings.
var opcodeName = map[string]Opcode{
	"ADD_REG_TO_REG":      OP_ADD_REG_TO_REG,
	"SUB_REG_FROM_REG":    OP_SUB_REG_FROM_REG,
	"MUL_REG_BY_REG":      OP_MUL_REG_BY_REG,
	"DIV_REG_BY_REG":      OP_DIV_REG_BY_REG,
	"INC_REG":             OP_INC_REG,
	"DEC_REG":             OP_DEC_REG,
	"MOD_REG_BY_REG":      OP_MOD_REG_BY_REG,
	"AND_REG_WITH_REG":    OP_AND_REG_WITH_REG,
	"OR_REG_WITH_REG":     OP_OR_REG_WITH_REG,
	"XOR_REG_WITH_REG":    OP_XOR_REG_WITH_REG,
	"NOT_REG":             OP_NOT_REG,
	"ROL_REG":             OP_ROL_REG,
	"ROR_REG":             OP_ROR_REG,
	"SHL_REG":             OP_SHL_REG,
	"SHR_REG":             OP_SHR_REG,
	"ADD_NUM_TO_REG":      OP_ADD_NUM_TO_REG,
	"SUB_NUM_FROM_REG":    OP_SUB_NUM_FROM_REG,
	"MUL_REG_BY_NUM":      OP_MUL_REG_BY_NUM,
	"DIV_REG_BY_NUM":      OP_DIV_REG_BY_NUM,
	"MOD_REG_BY_NUM":      OP_MOD_REG_BY_NUM,
	"AND_REG_WITH_NUM":    OP_AND_REG_WITH_NUM,
	"OR_REG_WITH_NUM":     OP_OR_REG_WITH_NUM,
	"XOR_REG_WITH_NUM":    OP_XOR_REG_WITH_NUM,
	"JMP":                 OP_JMP,
	"JZ":                  OP_JZ,
	"JNZ":                 OP_JNZ,
	"JS":                  OP_JS,
	"JNS":                 OP_JNS,
	"JO":                  OP_JO,
	"JNO":                 OP_JNO,
	"MOV_NUM_TO_REG":      OP_MOV_NUM_TO_REG,
	"MOV_ADDR_TO_REG":     OP_MOV_ADDR_TO_REG,
	"MOV_REG_TO_ADDR":     OP_MOV_REG_TO_ADDR,
	"MOV_REG_ADDR_TO_REG": OP_MOV_REG_ADDR_TO_REG,
	"MOV_REG_TO_REG_ADDR": OP_MOV_REG_TO_REG_ADDR,
	"CMP_REG_WITH_REG":    OP_CMP_REG_WITH_REG,
	"CMP_REG_WITH_NUM":    OP_CMP_REG_WITH_NUM,
	"CMP_REG_WITH_ADDR":   OP_CMP_REG_WITH_ADDR,
	"PUSH_FROM_REG":       OP_PUSH_FROM_REG,
	"POP_TO_REG":          OP_POP_TO_REG,
	"PUSHF":               OP_PUSHF,
	"POPF":                OP_POPF,
	"CALL_ADDR":           OP_CALL_ADDR,
	"RET":                 OP_RET,
	"INT_ADDR":            OP_INT_ADDR,
	"IRET":                OP_IRET,
	"IN_FROM_PORT_TO_AL":  OP_IN_FROM_PORT_TO_AL,
	"OUT_FROM_AL_TO_PORT": OP_OUT_FROM_AL_TO_PORT,
	"HALT":                OP_HALT,
	"CLI":                 OP_CLI,
	"STI":                 OP_STI,
	"CLO":                 OP_CLO,
	"NOP":                 OP_NOP,
}

// String returns the hexadecimal encoding of the opcode.
func (op Opcode) String() string {
	return fmt.Sprintf("%02X", uint8(op))
}

// OperandKind is the addressing mode of a single operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NUMBER           = OperandKind(0) // number
	OPERAND_REGISTER         = OperandKind(1) // register
	OPERAND_ADDRESS          = OperandKind(2) // address
	OPERAND_REGISTER_ADDRESS = OperandKind(3) // register address
	OPERAND_STRING           = OperandKind(4) // string
	OPERAND_LABEL            = OperandKind(5) // label
)

// Register is a general purpose register index.
type Register uint8

const (
	REG_AL = Register(0) // AL
	REG_BL = Register(1) // BL
	REG_CL = Register(2) // CL
	REG_DL = Register(3) // DL
)

// REGISTER_COUNT is the number of general purpose registers.
const REGISTER_COUNT = 4
