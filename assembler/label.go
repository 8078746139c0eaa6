package assembler

import (
	"github.com/ezrec/asm8/isa"
)

// MEMORY_SIZE is the size of the address space.
const MEMORY_SIZE = 0x100

// LabelMap maps label identifiers to addresses.
type LabelMap map[string]int

// origin returns the new cursor if the statement is an origin directive.
func origin(stmt *Statement, set *isa.InstructionSet) (address int, ok bool) {
	if stmt.Instruction.Mnemonic != set.Origin() || len(stmt.Operands) == 0 {
		return
	}
	return int(stmt.Operands[0].Value[0]), true
}

// ResolveLabels assigns each label the address of its statement (pass 1).
// Only the last statement may run past the end of memory.
func ResolveLabels(statements []*Statement, set *isa.InstructionSet) (labels LabelMap, err error) {
	if set == nil {
		set = isa.Default()
	}

	labels = LabelMap{}
	address := 0
	for n, stmt := range statements {
		if stmt.Label != nil {
			if _, ok := labels[stmt.Label.Identifier]; ok {
				return nil, errDuplicateLabel(stmt.Label)
			}
			labels[stmt.Label.Identifier] = address
		}

		if org, ok := origin(stmt, set); ok {
			address = org
			continue
		}

		address += stmt.Size()
		if address >= MEMORY_SIZE && n != len(statements)-1 {
			return nil, errEndOfMemory(stmt)
		}
	}

	return
}
