package isa

import (
	"errors"

	"github.com/ezrec/asm8/translate"
)

var f = translate.From

var (
	ErrOpcodeUnknown  = errors.New(f("opcode unknown"))
	ErrOpcodeRange    = errors.New(f("opcode out of range"))
	ErrRegisterCount  = errors.New(f("register count"))
	ErrRegisterName   = errors.New(f("register name invalid"))
	ErrRegisterRepeat = errors.New(f("register duplicated"))
	ErrRegisterShadow = errors.New(f("register name shadows a mnemonic or number"))
	ErrScriptType     = errors.New(f("unexpected value type"))
)

// ErrDefinition names the table entry a definition error refers to.
type ErrDefinition struct {
	Name string
	Err  error
}

func (err ErrDefinition) Error() string {
	return f("'%v' %v", err.Name, err.Err)
}

func (err ErrDefinition) Unwrap() error {
	return err.Err
}

// ErrScript wraps a failure while loading an instruction set script.
type ErrScript struct {
	Filename string
	Err      error
}

func (err ErrScript) Error() string {
	return f("%v: %v", err.Filename, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
