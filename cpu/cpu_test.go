package cpu_test

import (
	"testing"

	"github.com/Urethramancer/hack/assembler"
	"github.com/Urethramancer/hack/cpu"
)

// Assembles src, loads it and runs it until it halts.
func runProgram(t *testing.T, src string, setup func(c *cpu.CPU)) *cpu.CPU {
	t.Helper()

	prog, err := assembler.New().Assemble(src)
	if err != nil {
		t.Fatalf("failed to assemble: %v", err)
	}
	code, err := prog.Words()
	if err != nil {
		t.Fatal(err)
	}

	c := cpu.New()
	if err := c.LoadCode(code); err != nil {
		t.Fatal(err)
	}
	if setup != nil {
		setup(c)
	}
	if err := c.Run(10000); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if c.Running {
		t.Fatalf("program did not halt after %d cycles", c.Cycles)
	}
	return c
}

func TestAdd(t *testing.T) {
	c := runProgram(t, "@2\nD=A\n@3\nD=D+A\n@0\nM=D\n", nil)
	if c.RAM[0] != 5 {
		t.Errorf("RAM[0] = %d, want 5", c.RAM[0])
	}
	if c.Cycles != 6 {
		t.Errorf("expected 6 cycles, got %d", c.Cycles)
	}
}

const sumSource = `
// sum = 1 + 2 + ... + 10
@i
M=1
@sum
M=0
(LOOP)
@i
D=M
@10
D=D-A
@END
D;JGT
@i
D=M
@sum
M=D+M
@i
M=M+1
@LOOP
0;JMP
(END)
@END
0;JMP
`

func TestSumLoop(t *testing.T) {
	c := runProgram(t, sumSource, nil)
	if c.RAM[16] != 11 {
		t.Errorf("i = %d, want 11", c.RAM[16])
	}
	if c.RAM[17] != 55 {
		t.Errorf("sum = %d, want 55", c.RAM[17])
	}
}

const maxSource = `
@R0
D=M
@R1
D=D-M
@FIRST
D;JGT
@R1
D=M
@STORE
0;JMP
(FIRST)
@R0
D=M
(STORE)
@R2
M=D
(END)
@END
0;JMP
`

func TestMax(t *testing.T) {
	tests := []struct {
		a, b, want int16
	}{
		{3, 9, 9},
		{9, 3, 9},
		{-4, -7, -4},
		{0, 0, 0},
	}
	for _, tc := range tests {
		c := runProgram(t, maxSource, func(c *cpu.CPU) {
			c.RAM[0] = uint16(tc.a)
			c.RAM[1] = uint16(tc.b)
		})
		if got := int16(c.RAM[2]); got != tc.want {
			t.Errorf("max(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestScreenAndKeyboard(t *testing.T) {
	c := runProgram(t, "@KBD\nD=M\n@SCREEN\nM=!D\n", func(c *cpu.CPU) {
		c.RAM[cpu.KeyboardAddr] = 0x00FF
	})
	if c.RAM[cpu.ScreenBase] != 0xFF00 {
		t.Errorf("screen word = %04X, want FF00", c.RAM[cpu.ScreenBase])
	}
}

func TestRunStopsAtEndOfProgram(t *testing.T) {
	c := cpu.New()
	if err := c.LoadCode([]uint16{0x0001, 0xEC10}); err != nil {
		t.Fatal(err)
	}
	if err := c.Run(100); err != nil {
		t.Fatal(err)
	}
	if c.Running || c.Cycles != 2 || c.D != 1 {
		t.Errorf("unexpected state: running=%v cycles=%d D=%d", c.Running, c.Cycles, c.D)
	}
}

func TestLoadCodeTooLarge(t *testing.T) {
	c := cpu.New()
	if err := c.LoadCode(make([]uint16, cpu.ROMSize+1)); err == nil {
		t.Error("expected an error for an oversized program")
	}
}
