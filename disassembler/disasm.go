package disassembler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

// ErrUnknownComp is returned for a compute word whose ALU bits match no mnemonic.
var ErrUnknownComp = errors.New("unknown comp bits")

// Reverse lookup tables keyed by the encoded field value.
var (
	comps = make(map[uint16]assembler.Comp)
	dests = make(map[uint16]assembler.Dest)
	jumps = make(map[uint16]assembler.Jump)
)

func init() {
	for _, c := range assembler.Comps() {
		comps[bitsValue(assembler.EncodeComp(c))] = c
	}
	for _, d := range assembler.Dests() {
		dests[bitsValue(assembler.EncodeDest(d))] = d
	}
	for _, j := range assembler.Jumps() {
		jumps[bitsValue(assembler.EncodeJump(j))] = j
	}
}

func bitsValue(s string) uint16 {
	v, err := strconv.ParseUint(s, 2, 16)
	if err != nil {
		panic(fmt.Sprintf("bad encoding table entry %q", s))
	}
	return uint16(v)
}

// DecodeWord returns the assembly text for a single machine word.
func DecodeWord(word uint16) (string, error) {
	inst := cpu.Decode(word)
	if !inst.Compute {
		return "@" + strconv.Itoa(int(inst.Value)), nil
	}

	key := inst.Comp
	if inst.M {
		key |= 1 << 6
	}
	comp, ok := comps[key]
	if !ok {
		return "", fmt.Errorf("%016b: %w", word, ErrUnknownComp)
	}

	var sb strings.Builder
	if d := dests[inst.Dest]; d != assembler.DestNull {
		sb.WriteString(d.String())
		sb.WriteByte('=')
	}
	sb.WriteString(comp.String())
	if j := jumps[inst.Jump]; j != assembler.JumpNull {
		sb.WriteByte(';')
		sb.WriteString(j.String())
	}
	return sb.String(), nil
}

// Disassemble turns machine words into assembly source, one command per line.
func Disassemble(code []uint16) (string, error) {
	var result strings.Builder
	for addr, w := range code {
		text, err := DecodeWord(w)
		if err != nil {
			return "", fmt.Errorf("address %d: %w", addr, err)
		}
		result.WriteString(text)
		result.WriteByte('\n')
	}
	return result.String(), nil
}
