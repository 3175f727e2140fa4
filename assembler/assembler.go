package assembler

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/Urethramancer/hack/cpu"
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	symbols *SymbolTable
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{symbols: NewSymbolTable()}
}

// Symbols returns the symbol table of the most recent run.
func (asm *Assembler) Symbols() *SymbolTable {
	return asm.symbols
}

// Assemble translates Hack assembly source into machine code.
// Each call starts from a fresh symbol table.
func (asm *Assembler) Assemble(src string) (Program, error) {
	asm.symbols = NewSymbolTable()
	p := NewParser(src)

	if err := asm.firstPass(p); err != nil {
		return nil, fmt.Errorf("pass 1: %w", err)
	}

	prog, err := asm.secondPass(p)
	if err != nil {
		return nil, fmt.Errorf("pass 2: %w", err)
	}

	glog.V(1).Infof("assembled %d instructions, %d symbols", len(prog), asm.symbols.Len())
	return prog, nil
}

// Translate reads all of r, assembles it and writes one line per instruction to w.
// Nothing is written if assembly fails.
func (asm *Assembler) Translate(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	prog, err := asm.Assemble(string(src))
	if err != nil {
		return err
	}

	_, err = prog.WriteTo(w)
	return err
}

// firstPass binds every label to the address of the instruction following it.
func (asm *Assembler) firstPass(p *Parser) error {
	p.Reset()
	var counter uint32
	for p.Advance() {
		ct, err := p.Classify()
		if err != nil {
			return err
		}

		switch ct {
		case AddressCommand, ComputeCommand:
			counter++
		case LabelCommand:
			name := p.Symbol()
			if asm.symbols.DefineAt(name, counter) {
				glog.V(2).Infof("label %s = %d", name, counter)
			} else {
				glog.V(1).Infof("line %d: %s already bound, keeping first definition", p.Line(), name)
			}
		default:
			return p.errorf(ErrInvalidCommand)
		}
	}
	return nil
}

// secondPass emits one instruction per address and compute command.
func (asm *Assembler) secondPass(p *Parser) (Program, error) {
	p.Reset()
	var prog Program
	for p.Advance() {
		ct, err := p.Classify()
		if err != nil {
			return nil, err
		}

		var bits string
		switch ct {
		case LabelCommand:
			continue
		case ComputeCommand:
			bits, err = asm.encodeCompute(p)
		case AddressCommand:
			bits, err = asm.encodeAddress(p)
		default:
			err = p.errorf(ErrInvalidCommand)
		}
		if err != nil {
			return nil, err
		}

		prog = append(prog, Instruction{
			Address: uint32(len(prog)),
			Line:    p.Line(),
			Source:  p.Command(),
			Bits:    bits,
		})
	}
	return prog, nil
}

func (asm *Assembler) encodeCompute(p *Parser) (string, error) {
	dest, err := p.Dest()
	if err != nil {
		return "", err
	}
	comp, err := p.Comp()
	if err != nil {
		return "", err
	}
	jump, err := p.Jump()
	if err != nil {
		return "", err
	}
	return "111" + EncodeComp(comp) + EncodeDest(dest) + EncodeJump(jump), nil
}

func (asm *Assembler) encodeAddress(p *Parser) (string, error) {
	addr, err := asm.resolve(p.Symbol())
	if err != nil {
		return "", &LineError{Line: p.Line(), Text: p.Command(), Err: err}
	}
	if addr >= cpu.AddressLimit {
		return "", p.errorf(ErrAddressOverflow)
	}
	return fmt.Sprintf("0%015b", addr), nil
}

// resolve turns a literal or symbol into an address, allocating variables on first use.
func (asm *Assembler) resolve(sym string) (uint32, error) {
	if isDecimal(sym) {
		v, err := strconv.ParseUint(sym, 10, 32)
		if err != nil {
			return 0, ErrAddressOverflow
		}
		return uint32(v), nil
	}

	if asm.symbols.Define(sym) {
		glog.V(2).Infof("variable %s allocated", sym)
	}
	return asm.symbols.Address(sym)
}

func isDecimal(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
