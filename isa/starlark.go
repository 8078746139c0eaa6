package isa

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadStarlark builds an instruction set from the default one and a
// Starlark script. The script may assign:
//
//	opcodes = {"NOP": 0xff, ...}      # re-encode opcodes by name
//	registers = ["AL", "BL", "CL", "DL"]
//
// Every default opcode name is predeclared as its default value, so a
// script may write `opcodes = {"HALT": NOP}`.
//
// src is anything starlark.ExecFileOptions accepts: nil to read filename,
// a string, a []byte or an io.Reader.
func LoadStarlark(filename string, src any) (set *InstructionSet, err error) {
	defer func() {
		if err != nil {
			set = nil
			err = ErrScript{Filename: filename, Err: err}
		}
	}()

	set = Default()

	predeclared := starlark.StringDict{}
	for name, op := range set.Opcodes() {
		predeclared[name] = starlark.MakeInt(int(op))
	}

	thread := &starlark.Thread{Name: "isa"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	if value, ok := globals["opcodes"]; ok {
		var overrides map[string]int
		overrides, err = opcodeOverrides(value)
		if err != nil {
			return
		}
		set, err = set.WithOpcodes(overrides)
		if err != nil {
			return
		}
	}

	if value, ok := globals["registers"]; ok {
		var names []string
		names, err = registerNames(value)
		if err != nil {
			return
		}
		set, err = set.WithRegisters(names)
		if err != nil {
			return
		}
	}

	return
}

// opcodeOverrides converts a dict of name to int.
func opcodeOverrides(value starlark.Value) (overrides map[string]int, err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrDefinition{Name: "opcodes", Err: ErrScriptType}
		return
	}

	overrides = make(map[string]int, dict.Len())
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrDefinition{Name: item[0].String(), Err: ErrScriptType}
			return
		}
		st_int, ok := item[1].(starlark.Int)
		if !ok {
			err = ErrDefinition{Name: name, Err: ErrScriptType}
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok {
			err = ErrDefinition{Name: name, Err: ErrOpcodeRange}
			return
		}
		if st_int64 < 0 || st_int64 > 0xff {
			err = ErrDefinition{Name: name, Err: ErrOpcodeRange}
			return
		}
		overrides[name] = int(st_int64)
	}

	return
}

// registerNames converts a list or tuple of strings.
func registerNames(value starlark.Value) (names []string, err error) {
	iter := starlark.Iterate(value)
	if iter == nil {
		err = ErrDefinition{Name: "registers", Err: ErrScriptType}
		return
	}
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		name, ok := starlark.AsString(item)
		if !ok {
			err = ErrDefinition{Name: item.String(), Err: ErrScriptType}
			return
		}
		names = append(names, name)
	}

	return
}
