package assembler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Program is the output of one assembly run, in ROM order.
type Program []Instruction

// WriteTo writes one newline-terminated 16-character line per instruction.
func (prog Program) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, ins := range prog {
		c, err := bw.WriteString(ins.Bits + "\n")
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// WriteListing writes address, bits and source for every instruction.
func (prog Program) WriteListing(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, ins := range prog {
		if _, err := fmt.Fprintf(bw, "%05d  %s  %4d: %s\n", ins.Address, ins.Bits, ins.Line, ins.Source); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Words converts the program to machine words.
func (prog Program) Words() ([]uint16, error) {
	out := make([]uint16, len(prog))
	for i, ins := range prog {
		v, err := strconv.ParseUint(ins.Bits, 2, 16)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		out[i] = uint16(v)
	}
	return out, nil
}
