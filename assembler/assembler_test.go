package assembler

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/asm8/isa"
)

const helloSource = `mov al, c0
mov bl, 50
mov cl, [bl]

loop:
	mov [al], cl
	inc al
	inc bl
	mov cl, [bl]
	cmp cl, 00
	jnz loop

org 50
db "Hello World!"

end
`

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble(helloSource)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := MachineCode{}
	for n, b := range []byte{
		0xd0, 0x00, 0xc0,
		0xd0, 0x01, 0x50,
		0xd3, 0x02, 0x01,
		0xd4, 0x00, 0x02,
		0xa4, 0x00,
		0xa4, 0x01,
		0xd3, 0x02, 0x01,
		0xdb, 0x02, 0x00,
		0xc2, 0xf3,
	} {
		expected[n] = b
	}
	for n, b := range []byte("Hello World!") {
		expected[0x50+n] = b
	}
	assert.Equal(expected, prog.Code)

	assert.Equal(LabelMap{"LOOP": 9}, prog.Labels)

	assert.Equal(isa.MN_MOV, prog.Statements[9].Instruction.Mnemonic)
	assert.Equal(isa.MN_JNZ, prog.Statements[0x16].Instruction.Mnemonic)
	assert.Equal(isa.MN_ORG, prog.Statements[0x18].Instruction.Mnemonic)
	assert.Equal(isa.MN_DB, prog.Statements[0x50].Instruction.Mnemonic)
	assert.Equal(isa.MN_END, prog.Statements[0x5c].Instruction.Mnemonic)
	assert.Len(prog.Statements, 12)
}

func TestAssemble_Again(t *testing.T) {
	assert := assert.New(t)

	first, err := Assemble(helloSource)
	assert.NoError(err)
	second, err := Assemble(helloSource)
	assert.NoError(err)

	assert.Equal(first.Code, second.Code)
	assert.Equal(first.Labels, second.Labels)
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		err    error
		kind   string
	}{
		{"empty", "", ErrMissingEnd, "MissingEndError"},
		{"only comments", "; nothing\n  ; at all\n", ErrMissingEnd, "MissingEndError"},
		{"no end", "inc al\n", ErrMissingEnd, "MissingEndError"},
		{"duplicate before missing", "a: jmp b\na: end", ErrDuplicateLabel, "DuplicateLabelError"},
		{"missing label", "jmp b\nend", ErrLabelNotExist, "LabelNotExistError"},
		{"syntax", "inc 01\nend", ErrOperandType, "OperandTypeError"},
		{"lexical", "db 'x'\nend", ErrSingleQuote, "SingleQuoteError"},
		{"memory", "org ff\ninc al\nend", ErrEndOfMemory, "AssembleEndOfMemoryError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			prog, err := Assemble(tt.source)
			assert.Nil(prog)
			assert.True(errors.Is(err, tt.err), "%v", err)

			var asmErr *Error
			if assert.True(errors.As(err, &asmErr)) {
				assert.Equal(tt.kind, asmErr.Name())
			}
		})
	}
}

func TestAssemble_EmptyRange(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble("")

	var asmErr *Error
	if !assert.True(errors.As(err, &asmErr)) {
		return
	}
	assert.Equal("1:1: Expected END at the end of the source code.", asmErr.Error())

	data, err := json.Marshal(asmErr.Record())
	assert.NoError(err)
	assert.JSONEq(`{
		"name": "MissingEndError",
		"message": "Expected END at the end of the source code.",
		"range": {
			"from": 0, "to": 0,
			"start": {"line": 1, "column": 0},
			"end": {"line": 1, "column": 0}
		}
	}`, string(data))
}

func TestAssemble_ByteOrderMark(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble("\ufeffmov al, 01\nend\n")
	assert.NoError(err)
	if err != nil {
		return
	}
	assert.Equal(MachineCode{0: 0xd0, 1: 0x00, 2: 0x01}, prog.Code)
	assert.Equal(Position{1, 1}, prog.Statements[0].Range.Start)
}

func TestAssemble_EndOnly(t *testing.T) {
	assert := assert.New(t)

	prog, err := Assemble("end")
	assert.NoError(err)
	assert.Empty(prog.Code)
	assert.Len(prog.Statements, 1)
	assert.Equal(isa.MN_END, prog.Statements[0].Instruction.Mnemonic)
}

func TestAssembler_Parse(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("start: inc al\njmp start\nend"))
	assert.NoError(err)
	assert.Equal(MachineCode{0: 0xa4, 1: 0x00, 2: 0xc0, 3: 0xfe}, prog.Code)

	boom := errors.New("boom")
	_, err = asm.Parse(iotest.ErrReader(boom))
	assert.ErrorIs(err, boom)
}

func TestAssembler_Set(t *testing.T) {
	assert := assert.New(t)

	set, err := isa.Default().WithOpcodes(map[string]int{"INC_REG": 0x10})
	assert.NoError(err)
	set, err = set.WithRegisters([]string{"RA", "RB", "RC", "RD"})
	assert.NoError(err)

	asm := &Assembler{Set: set, Verbose: true}
	prog, err := asm.Assemble("inc rc\nend")
	assert.NoError(err)
	assert.Equal(MachineCode{0: 0x10, 1: 0x02}, prog.Code)

	// The default set no longer knows the register names.
	_, err = Assemble("inc rc\nend")
	assert.ErrorIs(err, ErrOperandType)
}
