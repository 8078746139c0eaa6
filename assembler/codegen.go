package assembler

import (
	"github.com/ezrec/asm8/isa"
)

// MachineCode maps addresses to bytes.
type MachineCode map[int]byte

// StatementMap maps the start address of each statement to it.
type StatementMap map[int]*Statement

// resolve stores the relative offset of a jump into its operand and the
// statement's machine code. Resolving again replaces the previous offset.
func resolve(stmt *Statement, labels LabelMap, address int) (err error) {
	op := stmt.jumpOperand()
	if op == nil {
		return
	}

	target, ok := labels[op.Text]
	if !ok {
		err = errLabelNotExist(op)
		return
	}

	distance := target - address
	if distance < -128 || distance > 127 {
		err = errJumpDistance(op, distance)
		return
	}

	code := stmt.MachineCode
	if !op.Unresolved() {
		code = code[:len(code)-len(op.Value)]
	}
	op.Value = []byte{byte(int8(distance))}
	stmt.MachineCode = append(code, op.Value...)

	return
}

// Generate resolves label references and lays out the machine code (pass 2).
// Every statement is recorded at its start address, even when it emits no
// bytes.
func Generate(statements []*Statement, labels LabelMap, set *isa.InstructionSet) (code MachineCode, stmts StatementMap, err error) {
	if set == nil {
		set = isa.Default()
	}

	code = MachineCode{}
	stmts = StatementMap{}
	address := 0
	for _, stmt := range statements {
		if org, ok := origin(stmt, set); ok {
			stmts[address] = stmt
			address = org
			continue
		}

		err = resolve(stmt, labels, address)
		if err != nil {
			return nil, nil, err
		}

		if address+len(stmt.MachineCode) > MEMORY_SIZE {
			return nil, nil, errEndOfMemory(stmt)
		}

		for n, b := range stmt.MachineCode {
			code[address+n] = b
		}
		stmts[address] = stmt
		address += len(stmt.MachineCode)
	}

	return
}
