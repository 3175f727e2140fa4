package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/hack/cpu"
	"github.com/Urethramancer/hack/disassembler"
)

func main() {
	opt := arg.New("hackdis")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Write the disassembly to a file instead of stdout.", "", false, arg.VarString, nil)
	opt.SetPositional("INPUT", "Machine code: .hack text or raw big-endian words.", "", true, arg.VarString)

	err := opt.Parse(os.Args[1:])
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	inputFile := opt.GetPosString("INPUT")
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	code, err := loadWords(inputFile, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding input file: %v\n", err)
		os.Exit(1)
	}

	text, err := disassembler.Disassemble(code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	outputFile := opt.GetString("output")
	if outputFile == "" {
		fmt.Print(text)
		return
	}

	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", outputFile)
}

// loadWords reads .hack files as text and anything else as raw words.
func loadWords(name string, data []byte) ([]uint16, error) {
	if filepath.Ext(name) == ".hack" {
		return cpu.ParseText(string(data))
	}
	return cpu.BytesToWords(data), nil
}
