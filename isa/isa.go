// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"maps"
	"regexp"
	"slices"

	"github.com/ezrec/asm8/internal"
)

// Mnemonic is an instruction name, always upper case.
type Mnemonic string

const (
	MN_END   = Mnemonic("END")
	MN_ORG   = Mnemonic("ORG")
	MN_DB    = Mnemonic("DB")
	MN_ADD   = Mnemonic("ADD")
	MN_SUB   = Mnemonic("SUB")
	MN_MUL   = Mnemonic("MUL")
	MN_DIV   = Mnemonic("DIV")
	MN_MOD   = Mnemonic("MOD")
	MN_AND   = Mnemonic("AND")
	MN_OR    = Mnemonic("OR")
	MN_XOR   = Mnemonic("XOR")
	MN_INC   = Mnemonic("INC")
	MN_DEC   = Mnemonic("DEC")
	MN_NOT   = Mnemonic("NOT")
	MN_ROL   = Mnemonic("ROL")
	MN_ROR   = Mnemonic("ROR")
	MN_SHL   = Mnemonic("SHL")
	MN_SHR   = Mnemonic("SHR")
	MN_JMP   = Mnemonic("JMP")
	MN_JZ    = Mnemonic("JZ")
	MN_JNZ   = Mnemonic("JNZ")
	MN_JS    = Mnemonic("JS")
	MN_JNS   = Mnemonic("JNS")
	MN_JO    = Mnemonic("JO")
	MN_JNO   = Mnemonic("JNO")
	MN_MOV   = Mnemonic("MOV")
	MN_CMP   = Mnemonic("CMP")
	MN_PUSH  = Mnemonic("PUSH")
	MN_POP   = Mnemonic("POP")
	MN_PUSHF = Mnemonic("PUSHF")
	MN_POPF  = Mnemonic("POPF")
	MN_CALL  = Mnemonic("CALL")
	MN_RET   = Mnemonic("RET")
	MN_INT   = Mnemonic("INT")
	MN_IRET  = Mnemonic("IRET")
	MN_IN    = Mnemonic("IN")
	MN_OUT   = Mnemonic("OUT")
	MN_HALT  = Mnemonic("HALT")
	MN_NOP   = Mnemonic("NOP")
	MN_CLI   = Mnemonic("CLI")
	MN_STI   = Mnemonic("STI")
	MN_CLO   = Mnemonic("CLO")
)

// Form is one accepted operand combination of a mnemonic.
type Form struct {
	Operands  []OperandKind // Operand kinds, in source order.
	Opcode    Opcode        // Encoding, if HasOpcode is set.
	HasOpcode bool          // Directives (ORG, DB, END) have no encoding.
}

// formEntry refers to its opcode by name, so opcode overrides apply to
// every form sharing it.
type formEntry struct {
	operands []OperandKind
	opcode   string
}

func entry(opcode string, operands ...OperandKind) formEntry {
	return formEntry{operands: operands, opcode: opcode}
}

var (
	num     = OPERAND_NUMBER
	reg     = OPERAND_REGISTER
	addr    = OPERAND_ADDRESS
	regAddr = OPERAND_REGISTER_ADDRESS
	str     = OPERAND_STRING
	label   = OPERAND_LABEL
)

// arith returns the register/register and register/number forms.
func arith(regOp, numOp string) []formEntry {
	return []formEntry{entry(regOp, reg, reg), entry(numOp, reg, num)}
}

// defaultForms is the mnemonic table. All forms of one mnemonic have the
// same operand count.
var defaultForms = map[Mnemonic][]formEntry{
	MN_END:   {entry("")},
	MN_ORG:   {entry("", num)},
	MN_DB:    {entry("", num), entry("", str)},
	MN_ADD:   arith("ADD_REG_TO_REG", "ADD_NUM_TO_REG"),
	MN_SUB:   arith("SUB_REG_FROM_REG", "SUB_NUM_FROM_REG"),
	MN_MUL:   arith("MUL_REG_BY_REG", "MUL_REG_BY_NUM"),
	MN_DIV:   arith("DIV_REG_BY_REG", "DIV_REG_BY_NUM"),
	MN_MOD:   arith("MOD_REG_BY_REG", "MOD_REG_BY_NUM"),
	MN_AND:   arith("AND_REG_WITH_REG", "AND_REG_WITH_NUM"),
	MN_OR:    arith("OR_REG_WITH_REG", "OR_REG_WITH_NUM"),
	MN_XOR:   arith("XOR_REG_WITH_REG", "XOR_REG_WITH_NUM"),
	MN_INC:   {entry("INC_REG", reg)},
	MN_DEC:   {entry("DEC_REG", reg)},
	MN_NOT:   {entry("NOT_REG", reg)},
	MN_ROL:   {entry("ROL_REG", reg)},
	MN_ROR:   {entry("ROR_REG", reg)},
	MN_SHL:   {entry("SHL_REG", reg)},
	MN_SHR:   {entry("SHR_REG", reg)},
	MN_JMP:   {entry("JMP", label)},
	MN_JZ:    {entry("JZ", label)},
	MN_JNZ:   {entry("JNZ", label)},
	MN_JS:    {entry("JS", label)},
	MN_JNS:   {entry("JNS", label)},
	MN_JO:    {entry("JO", label)},
	MN_JNO:   {entry("JNO", label)},
	MN_PUSH:  {entry("PUSH_FROM_REG", reg)},
	MN_POP:   {entry("POP_TO_REG", reg)},
	MN_CALL:  {entry("CALL_ADDR", num)},
	MN_INT:   {entry("INT_ADDR", num)},
	MN_IN:    {entry("IN_FROM_PORT_TO_AL", num)},
	MN_OUT:   {entry("OUT_FROM_AL_TO_PORT", num)},
	MN_PUSHF: {entry("PUSHF")},
	MN_POPF:  {entry("POPF")},
	MN_RET:   {entry("RET")},
	MN_IRET:  {entry("IRET")},
	MN_HALT:  {entry("HALT")},
	MN_NOP:   {entry("NOP")},
	MN_CLI:   {entry("CLI")},
	MN_STI:   {entry("STI")},
	MN_CLO:   {entry("CLO")},
	MN_MOV: {
		entry("MOV_NUM_TO_REG", reg, num),
		entry("MOV_ADDR_TO_REG", reg, addr),
		entry("MOV_REG_TO_ADDR", addr, reg),
		entry("MOV_REG_ADDR_TO_REG", reg, regAddr),
		entry("MOV_REG_TO_REG_ADDR", regAddr, reg),
	},
	MN_CMP: {
		entry("CMP_REG_WITH_REG", reg, reg),
		entry("CMP_REG_WITH_NUM", reg, num),
		entry("CMP_REG_WITH_ADDR", reg, addr),
	},
}

var defaultRegisters = []string{"AL", "BL", "CL", "DL"}

// InstructionSet is an immutable instruction set table.
type InstructionSet struct {
	forms     map[Mnemonic][]formEntry
	opcodes   map[string]Opcode
	registers []string
}

var defaultSet = &InstructionSet{
	forms:     defaultForms,
	opcodes:   opcodeName,
	registers: defaultRegisters,
}

// Default returns the standard instruction set.
func Default() *InstructionSet {
	return defaultSet
}

// Terminator is the mnemonic that must end every program.
func (set *InstructionSet) Terminator() Mnemonic {
	return MN_END
}

// Origin is the directive that moves the address cursor.
func (set *InstructionSet) Origin() Mnemonic {
	return MN_ORG
}

// Data is the directive that places literal bytes.
func (set *InstructionSet) Data() Mnemonic {
	return MN_DB
}

// IsMnemonic returns true if the upper case text names an instruction.
func (set *InstructionSet) IsMnemonic(text string) bool {
	_, ok := set.forms[Mnemonic(text)]
	return ok
}

// OperandCount returns the number of operands a mnemonic takes.
func (set *InstructionSet) OperandCount(mn Mnemonic) int {
	forms := set.forms[mn]
	if len(forms) == 0 {
		return 0
	}
	return len(forms[0].operands)
}

// Forms returns the accepted operand combinations of a mnemonic.
func (set *InstructionSet) Forms(mn Mnemonic) (forms []Form) {
	for _, fs := range set.forms[mn] {
		form := Form{Operands: slices.Clone(fs.operands)}
		if len(fs.opcode) != 0 {
			form.Opcode = set.opcodes[fs.opcode]
			form.HasOpcode = true
		}
		forms = append(forms, form)
	}
	return
}

// Opcode looks up an opcode by name.
func (set *InstructionSet) Opcode(name string) (op Opcode, ok bool) {
	op, ok = set.opcodes[name]
	return
}

// Opcodes iterates all opcode names and encodings, sorted by name.
func (set *InstructionSet) Opcodes() iter.Seq2[string, Opcode] {
	return internal.SortedSeq2(set.opcodes)
}

// Register looks up an upper case register name.
func (set *InstructionSet) Register(name string) (r Register, ok bool) {
	index := slices.Index(set.registers, name)
	if index < 0 {
		return
	}
	return Register(index), true
}

// RegisterNames returns the register names, in index order.
func (set *InstructionSet) RegisterNames() []string {
	return slices.Clone(set.registers)
}

// WithOpcodes returns a copy of the set with some opcodes re-encoded.
func (set *InstructionSet) WithOpcodes(overrides map[string]int) (out *InstructionSet, err error) {
	opcodes := maps.Clone(set.opcodes)
	for _, name := range slices.Sorted(maps.Keys(overrides)) {
		value := overrides[name]
		if _, ok := opcodes[name]; !ok {
			err = ErrDefinition{Name: name, Err: ErrOpcodeUnknown}
			return
		}
		if value < 0 || value > 0xff {
			err = ErrDefinition{Name: name, Err: ErrOpcodeRange}
			return
		}
		opcodes[name] = Opcode(value)
	}

	out = &InstructionSet{
		forms:     set.forms,
		opcodes:   opcodes,
		registers: set.registers,
	}
	return
}

var (
	registerRegexp = regexp.MustCompile(`^[A-Z]{2}$`)
	hexRegexp      = regexp.MustCompile(`^[0-9A-F]+$`)
)

// WithRegisters returns a copy of the set with renamed registers. A name
// may not also read as a mnemonic or a hexadecimal number.
func (set *InstructionSet) WithRegisters(names []string) (out *InstructionSet, err error) {
	if len(names) != REGISTER_COUNT {
		err = ErrRegisterCount
		return
	}
	for n, name := range names {
		if !registerRegexp.MatchString(name) {
			err = ErrDefinition{Name: name, Err: ErrRegisterName}
			return
		}
		if set.IsMnemonic(name) || hexRegexp.MatchString(name) {
			err = ErrDefinition{Name: name, Err: ErrRegisterShadow}
			return
		}
		if slices.Contains(names[:n], name) {
			err = ErrDefinition{Name: name, Err: ErrRegisterRepeat}
			return
		}
	}

	out = &InstructionSet{
		forms:     set.forms,
		opcodes:   set.opcodes,
		registers: slices.Clone(names),
	}
	return
}
