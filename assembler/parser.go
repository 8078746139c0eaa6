package assembler

import (
	"regexp"
	"slices"
	"strconv"

	"github.com/ezrec/asm8/isa"
)

// Label is a label declaration.
type Label struct {
	Identifier string
	Range      SourceRange
}

// Instruction is the mnemonic of a statement, and the opcode its operands
// selected.
type Instruction struct {
	Mnemonic  isa.Mnemonic
	Opcode    isa.Opcode
	HasOpcode bool
	Raw       string
	Range     SourceRange
}

// Operand is a single instruction operand.
type Operand struct {
	Kind  isa.OperandKind
	Value []byte // Encoded bytes; nil for a label until pass 2 resolves it.
	Text  string // Normalized token text.
	Raw   string // Source text.
	Range SourceRange
}

// Unresolved is true for a label reference that has no offset yet.
func (op *Operand) Unresolved() bool {
	return op.Kind == isa.OPERAND_LABEL && op.Value == nil
}

// Statement is one parsed source statement.
type Statement struct {
	Label       *Label
	Instruction Instruction
	Operands    []*Operand
	MachineCode []byte
	Range       SourceRange // From the instruction through the last operand.
}

// Size is the number of bytes the statement occupies, counting the
// relative offset byte of an unresolved jump.
func (stmt *Statement) Size() int {
	size := len(stmt.MachineCode)
	if stmt.jumpOperand() != nil && stmt.Operands[0].Unresolved() {
		size++
	}
	return size
}

// jumpOperand returns the first operand if it is a label reference.
func (stmt *Statement) jumpOperand() *Operand {
	if len(stmt.Operands) == 0 || stmt.Operands[0].Kind != isa.OPERAND_LABEL {
		return nil
	}
	return stmt.Operands[0]
}

func newStatement(label *Label, inst Instruction, operands []*Operand) *Statement {
	var code []byte
	if inst.HasOpcode {
		code = append(code, byte(inst.Opcode))
	}
	for _, op := range operands {
		code = append(code, op.Value...)
	}

	rng := inst.Range
	if len(operands) > 0 {
		rng = rng.span(operands[len(operands)-1].Range)
	}

	return &Statement{
		Label:       label,
		Instruction: inst,
		Operands:    operands,
		MachineCode: code,
		Range:       rng,
	}
}

var (
	labelRegexp  = regexp.MustCompile(`^[A-Z_]+$`)
	numberRegexp = regexp.MustCompile(`^[0-9A-F]+$`)
)

type parser struct {
	set    *isa.InstructionSet
	tokens []Token
	index  int
}

// peek returns the token n ahead of the current one.
func (p *parser) peek(n int) (token Token, ok bool) {
	if p.index+n >= len(p.tokens) {
		return
	}
	return p.tokens[p.index+n], true
}

// missingEnd reports running out of tokens, just past the last one.
func (p *parser) missingEnd() *Error {
	rng := SourceRange{Start: Position{Line: 1}, End: Position{Line: 1}}
	if len(p.tokens) > 0 {
		rng = p.tokens[len(p.tokens)-1].Range.tail()
	}
	return errMissingEnd(rng, p.set.Terminator())
}

func validateLabel(token Token) (err error) {
	if !labelRegexp.MatchString(token.Value) {
		err = errInvalidLabel(token)
	}
	return
}

// label parses an optional "LABEL :" prefix.
func (p *parser) label() (label *Label, err error) {
	colon, ok := p.peek(1)
	if !ok || colon.Kind != TOKEN_COLON {
		return
	}
	token := p.tokens[p.index]
	err = validateLabel(token)
	if err != nil {
		return
	}
	p.index += 2
	label = &Label{Identifier: token.Value, Range: token.Range}
	return
}

// number decodes a hexadecimal byte.
func number(token Token, kind isa.OperandKind) (op *Operand, err error) {
	value, perr := strconv.ParseUint(token.Value, 16, 64)
	if perr != nil || value > 0xff {
		err = errInvalidNumber(token)
		return
	}
	op = newOperand(kind, token, byte(value))
	return
}

func newOperand(kind isa.OperandKind, token Token, value ...byte) *Operand {
	return &Operand{
		Kind:  kind,
		Value: value,
		Text:  token.Value,
		Raw:   token.Raw,
		Range: token.Range,
	}
}

// operand parses the next token as one of the expected operand kinds.
func (p *parser) operand(expected []isa.OperandKind) (op *Operand, err error) {
	token, ok := p.peek(0)
	if !ok {
		err = p.missingEnd()
		return
	}
	p.index++

	accepts := func(kind isa.OperandKind) bool {
		return slices.Contains(expected, kind)
	}

	switch token.Kind {
	case TOKEN_DIGITS:
		if accepts(isa.OPERAND_NUMBER) {
			return number(token, isa.OPERAND_NUMBER)
		}
	case TOKEN_REGISTER:
		if accepts(isa.OPERAND_REGISTER) {
			reg, _ := p.set.Register(token.Value)
			op = newOperand(isa.OPERAND_REGISTER, token, byte(reg))
			return
		}
	case TOKEN_ADDRESS:
		if accepts(isa.OPERAND_ADDRESS) && numberRegexp.MatchString(token.Value) {
			return number(token, isa.OPERAND_ADDRESS)
		}
		if accepts(isa.OPERAND_REGISTER_ADDRESS) {
			reg, ok := p.set.Register(token.Value)
			if !ok {
				err = errAddress(token)
				return
			}
			op = newOperand(isa.OPERAND_REGISTER_ADDRESS, token, byte(reg))
			return
		}
	case TOKEN_STRING:
		if accepts(isa.OPERAND_STRING) {
			value := []byte{}
			for n, r := range []rune(token.Value) {
				if r > 0xff {
					err = errInvalidString(token, n, r)
					return
				}
				value = append(value, byte(r))
			}
			op = newOperand(isa.OPERAND_STRING, token, value...)
			return
		}
	case TOKEN_UNKNOWN:
		switch token.Raw[0] {
		case '[':
			err = errUnterminatedAddress(token)
			return
		case '"':
			err = errUnterminatedString(token)
			return
		case '\'':
			err = errSingleQuote(token)
			return
		}
		if accepts(isa.OPERAND_NUMBER) && numberRegexp.MatchString(token.Value) {
			return number(token, isa.OPERAND_NUMBER)
		}
		if accepts(isa.OPERAND_LABEL) {
			err = validateLabel(token)
			if err != nil {
				return
			}
			op = newOperand(isa.OPERAND_LABEL, token)
			return
		}
	}

	err = errOperandType(token, expected)
	return
}

// comma consumes the separator between two operands.
func (p *parser) comma() (err error) {
	token, ok := p.peek(0)
	if !ok {
		err = p.missingEnd()
		return
	}
	if token.Kind != TOKEN_COMMA {
		err = errMissingComma(token)
		return
	}
	p.index++
	return
}

// expectedAt returns the operand kinds accepted at position n by the forms
// that match the operands parsed so far.
func expectedAt(forms []isa.Form, operands []*Operand) (kinds []isa.OperandKind) {
	n := len(operands)
	for _, form := range forms {
		if !formMatches(form, operands) {
			continue
		}
		if !slices.Contains(kinds, form.Operands[n]) {
			kinds = append(kinds, form.Operands[n])
		}
	}
	return
}

// formMatches is true if the operands are a prefix of the form.
func formMatches(form isa.Form, operands []*Operand) bool {
	if len(operands) > len(form.Operands) {
		return false
	}
	for n, op := range operands {
		if form.Operands[n] != op.Kind {
			return false
		}
	}
	return true
}

// statement parses one "[LABEL :] MNEMONIC operands" statement.
func (p *parser) statement() (stmt *Statement, err error) {
	label, err := p.label()
	if err != nil {
		return
	}

	token, ok := p.peek(0)
	if !ok {
		err = p.missingEnd()
		return
	}
	if token.Kind != TOKEN_UNKNOWN || !p.set.IsMnemonic(token.Value) {
		err = errStatement(token, label != nil)
		return
	}
	p.index++

	inst := Instruction{
		Mnemonic: isa.Mnemonic(token.Value),
		Raw:      token.Raw,
		Range:    token.Range,
	}

	forms := p.set.Forms(inst.Mnemonic)
	count := p.set.OperandCount(inst.Mnemonic)

	var operands []*Operand
	for n := range count {
		if n > 0 {
			err = p.comma()
			if err != nil {
				return
			}
		}
		var op *Operand
		op, err = p.operand(expectedAt(forms, operands))
		if err != nil {
			return
		}
		operands = append(operands, op)
	}

	for _, form := range forms {
		if formMatches(form, operands) {
			inst.Opcode = form.Opcode
			inst.HasOpcode = form.HasOpcode
			break
		}
	}

	stmt = newStatement(label, inst, operands)
	return
}

// Parse groups tokens into statements. A non-empty program must end with
// the terminator mnemonic.
func Parse(tokens []Token, set *isa.InstructionSet) (statements []*Statement, err error) {
	if set == nil {
		set = isa.Default()
	}

	p := &parser{set: set, tokens: tokens}
	for p.index < len(p.tokens) {
		var stmt *Statement
		stmt, err = p.statement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if len(statements) > 0 {
		last := statements[len(statements)-1]
		if last.Instruction.Mnemonic != set.Terminator() {
			return nil, p.missingEnd()
		}
	}

	return
}
