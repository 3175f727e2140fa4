package assembler

import (
	"fmt"

	"github.com/Urethramancer/hack/cpu"
)

// VariableBase is the first address handed out to variables.
const VariableBase = 16

// predefined symbols and their fixed addresses.
var predefined = map[string]uint32{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"SCREEN": cpu.ScreenBase,
	"KBD":    cpu.KeyboardAddr,
}

func init() {
	for i := uint32(0); i < 16; i++ {
		predefined[fmt.Sprintf("R%d", i)] = i
	}
}

// SymbolTable maps names to addresses. The first binding of a name wins.
type SymbolTable struct {
	entries map[string]uint32
	next    uint32
}

// NewSymbolTable returns a table holding the predefined symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		entries: make(map[string]uint32, len(predefined)+32),
		next:    VariableBase,
	}
	for name, addr := range predefined {
		st.entries[name] = addr
	}
	return st
}

// Contains reports whether name is bound.
func (st *SymbolTable) Contains(name string) bool {
	_, ok := st.entries[name]
	return ok
}

// Address returns the address bound to name.
func (st *SymbolTable) Address(name string) (uint32, error) {
	addr, ok := st.entries[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedSymbol, name)
	}
	return addr, nil
}

// Define binds name to the next free variable address.
// It does nothing and returns false if name is already bound.
func (st *SymbolTable) Define(name string) bool {
	if st.Contains(name) {
		return false
	}
	st.entries[name] = st.next
	st.next++
	return true
}

// DefineAt binds name to addr.
// It does nothing and returns false if name is already bound.
func (st *SymbolTable) DefineAt(name string, addr uint32) bool {
	if st.Contains(name) {
		return false
	}
	st.entries[name] = addr
	return true
}

// Len returns the number of bound names, predefined ones included.
func (st *SymbolTable) Len() int {
	return len(st.entries)
}

// Entries returns a copy of every binding.
func (st *SymbolTable) Entries() map[string]uint32 {
	out := make(map[string]uint32, len(st.entries))
	for k, v := range st.entries {
		out[k] = v
	}
	return out
}
