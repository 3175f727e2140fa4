package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

func main() {
	opt := arg.New("hasm")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "output", "Output file (default: input with .hack or .bin extension).", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "b", "binary", "Write raw big-endian words instead of text.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "l", "listing", "Print an address/bits/source listing to stdout.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "symbols", "Dump the symbol table to stderr.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log assembler passes.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Assembly source (.asm).", "", true, arg.VarString)

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

	setupLogging(opt.GetBool("verbose"))
	defer glog.Flush()

	inputFile := opt.GetPosString("INPUT")
	ext := filepath.Ext(inputFile)
	if ext != ".asm" {
		fmt.Fprintf(os.Stderr, "The input file extension has to be .asm, not %q\n", ext)
		os.Exit(1)
	}

	binary := opt.GetBool("binary")
	outputFile := opt.GetString("output")
	if outputFile == "" {
		outputFile = strings.TrimSuffix(inputFile, ext) + ".hack"
		if binary {
			outputFile = strings.TrimSuffix(inputFile, ext) + ".bin"
		}
	}

	src, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	asm := assembler.New()
	prog, err := asm.Assemble(string(src))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Assembly error: %v\n", err)
		os.Exit(1)
	}

	if opt.GetBool("symbols") {
		pp.Fprintln(os.Stderr, asm.Symbols().Entries())
	}
	if opt.GetBool("listing") {
		if err := prog.WriteListing(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing listing: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeProgram(outputFile, prog, binary); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	glog.V(1).Infof("wrote %d instructions to %s", len(prog), outputFile)
}

func writeProgram(name string, prog assembler.Program, binary bool) error {
	if binary {
		words, err := prog.Words()
		if err != nil {
			return err
		}
		return os.WriteFile(name, cpu.WordsToBytes(words), 0644)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := prog.WriteTo(f); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	return f.Close()
}

// setupLogging sends glog output to stderr; verbose raises the V level.
func setupLogging(verbose bool) {
	flag.Set("logtostderr", "true")
	if verbose {
		flag.Set("v", "2")
	}
	flag.CommandLine.Parse(nil)
}
