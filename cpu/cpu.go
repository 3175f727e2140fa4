package cpu

import (
	"errors"
	"fmt"
)

// ErrProgramTooLarge is returned when code does not fit in ROM.
var ErrProgramTooLarge = errors.New("program too large")

// CPU memory and registers.
type CPU struct {
	// A is the address register.
	A uint16
	// D is the data register.
	D uint16
	// PC is the program counter.
	PC uint16

	// RAM is data memory, including the screen and keyboard maps.
	RAM []uint16
	// ROM is instruction memory.
	ROM []uint16
	// Size is the number of loaded instructions.
	Size int

	// Cycles count.
	Cycles int
	// Running or not.
	Running bool
}

// New creates a CPU with empty memories.
func New() *CPU {
	return &CPU{
		RAM: make([]uint16, RAMSize),
		ROM: make([]uint16, ROMSize),
	}
}

// LoadCode copies code into ROM from address 0 and resets the registers.
func (c *CPU) LoadCode(code []uint16) error {
	if len(code) > ROMSize {
		return fmt.Errorf("%w: %d words", ErrProgramTooLarge, len(code))
	}
	clear(c.ROM)
	copy(c.ROM, code)
	c.Size = len(code)
	c.Reset()
	return nil
}

// Reset clears the registers and starts the CPU at address 0. Memory is kept.
func (c *CPU) Reset() {
	c.A, c.D, c.PC = 0, 0, 0
	c.Cycles = 0
	c.Running = c.Size > 0
}

// Read returns the RAM word at addr. Unmapped addresses read as zero.
func (c *CPU) Read(addr uint16) uint16 {
	if int(addr) >= len(c.RAM) {
		return 0
	}
	return c.RAM[addr]
}

// Write stores val at addr. Writes outside RAM are dropped.
func (c *CPU) Write(addr, val uint16) {
	if int(addr) >= len(c.RAM) {
		return
	}
	c.RAM[addr] = val
}
