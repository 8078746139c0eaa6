// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/asm8/assembler"
	"github.com/ezrec/asm8/isa"
)

// report prints an assembly error and exits.
func report(filename string, asmErr *assembler.Error, asJson bool) {
	if asJson {
		enc := json.NewEncoder(os.Stderr)
		err := enc.Encode(asmErr.Record())
		if err != nil {
			log.Fatalf("%v: %v", filename, err)
		}
	} else {
		fmt.Fprintf(os.Stderr, "%v:%v: %v\n", filename, asmErr.Range, asmErr.Message)
	}
	os.Exit(1)
}

// write emits the program in the requested format.
func write(w io.Writer, prog *assembler.Program, format string) (err error) {
	switch format {
	case "bin":
		mem := prog.Memory()
		_, err = w.Write(mem[:])
	case "hex":
		err = prog.HexDump(w)
	case "list":
		err = prog.Listing(w)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	return
}

func main() {
	var compile string
	var output string
	var format string
	var isaFile string
	var asJson bool
	var verbose bool

	flag.StringVar(&compile, "c", "-", ".asm file to assemble")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&format, "f", "hex", "Output format: bin, hex or list")
	flag.StringVar(&isaFile, "isa", "", ".star instruction set overrides")
	flag.BoolVar(&asJson, "json", false, "Report assembly errors as JSON")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	asm := &assembler.Assembler{Verbose: verbose}

	if len(isaFile) != 0 {
		set, err := isa.LoadStarlark(isaFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", isaFile, err)
		}
		asm.Set = set
	}

	var prog *assembler.Program
	var err error
	if compile == "-" {
		prog, err = asm.Parse(os.Stdin)
	} else {
		inf, ferr := os.Open(compile)
		if ferr != nil {
			log.Fatalf("%v: %v", compile, ferr)
		}
		defer inf.Close()
		prog, err = asm.Parse(inf)
	}

	var asmErr *assembler.Error
	if errors.As(err, &asmErr) {
		report(compile, asmErr, asJson)
	}
	if err != nil {
		log.Fatalf("%v: %v", compile, err)
	}

	if output == "-" {
		err = write(os.Stdout, prog, format)
	} else {
		ouf, ferr := os.Create(output)
		if ferr != nil {
			log.Fatalf("%v: %v", output, ferr)
		}
		defer ouf.Close()
		err = write(ouf, prog, format)
	}
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
