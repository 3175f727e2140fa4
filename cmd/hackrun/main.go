package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/hack/cpu"
)

// This program loads a .hack file, runs it for a bounded number of cycles
// and prints the registers and the low RAM words.
func main() {
	opt := arg.New("hackrun")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "c", "cycles", "Maximum number of instructions to execute.", 100000, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "r", "ram", "Number of RAM words to dump, from address 0.", 24, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log each run step.", false, false, arg.VarBool, nil)
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

	flag.Set("logtostderr", "true")
	if opt.GetBool("verbose") {
		flag.Set("v", "1")
	}
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	inputFile := opt.GetPosString("INPUT")
	data, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var code []uint16
	if filepath.Ext(inputFile) == ".hack" {
		code, err = cpu.ParseText(string(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error decoding input file: %v\n", err)
			os.Exit(1)
		}
	} else {
		code = cpu.BytesToWords(data)
	}

	c := cpu.New()
	if err := c.LoadCode(code); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}
	glog.V(1).Infof("loaded %d words from %s", len(code), inputFile)

	if err := c.Run(opt.GetInt("cycles")); err != nil {
		fmt.Fprintf(os.Stderr, "CPU execution failed: %v\n", err)
		os.Exit(1)
	}

	n := opt.GetInt("ram")
	if n < 0 || n > len(c.RAM) {
		n = len(c.RAM)
	}
	pp.Println(struct {
		A, D, PC uint16
		Cycles   int
		Running  bool
		RAM      []uint16
	}{c.A, c.D, c.PC, c.Cycles, c.Running, c.RAM[:n]})
}
