package cpu

import "fmt"

// Execute fetches, decodes, and executes a single instruction.
// The CPU stops once the program counter leaves the loaded program.
func (c *CPU) Execute() error {
	if !c.Running {
		return nil
	}
	if int(c.PC) >= c.Size {
		c.Running = false
		return nil
	}

	inst := Decode(c.ROM[c.PC])
	c.Cycles++

	if !inst.Compute {
		c.A = inst.Value
		c.PC++
		return nil
	}

	y := c.A
	if inst.M {
		y = c.Read(c.A)
	}
	out := ALU(c.D, y, inst.Comp)

	// The jump target and memory address are the A value before this instruction.
	addr := c.A
	if inst.Dest&DestM != 0 {
		c.Write(addr, out)
	}
	if inst.Dest&DestD != 0 {
		c.D = out
	}
	if inst.Dest&DestA != 0 {
		c.A = out
	}

	if Jumps(inst.Jump, out) {
		c.PC = addr
	} else {
		c.PC++
	}
	return nil
}

// Run executes up to max instructions, stopping early if the CPU halts.
// A program ending in a tight "@n; 0;JMP" loop on its own address halts as well.
func (c *CPU) Run(max int) error {
	for i := 0; i < max && c.Running; i++ {
		pc := c.PC
		if err := c.Execute(); err != nil {
			return fmt.Errorf("cycle %d at %05d: %w", c.Cycles, pc, err)
		}
		if c.halted(pc) {
			c.Running = false
		}
	}
	return nil
}

// halted detects the conventional end-of-program loop: an A-instruction loading its
// own address followed by an unconditional jump.
func (c *CPU) halted(pc uint16) bool {
	if int(pc)+1 >= c.Size {
		return false
	}
	at := Decode(c.ROM[pc])
	next := Decode(c.ROM[pc+1])
	return !at.Compute && at.Value == pc && next.Compute &&
		next.Dest&DestA == 0 && next.Jump == JumpLT|JumpEQ|JumpGT
}
