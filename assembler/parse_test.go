package assembler_test

import (
	"errors"
	"testing"

	"github.com/Urethramancer/hack/assembler"
)

func TestParserAdvance(t *testing.T) {
	src := "// header\n\n  @R1  // trailing\n(LOOP)\n\tD;JGT\n   \n// footer"
	p := assembler.NewParser(src)

	want := []struct {
		line int
		cmd  string
		ct   assembler.CommandType
	}{
		{3, "@R1", assembler.AddressCommand},
		{4, "(LOOP)", assembler.LabelCommand},
		{5, "D;JGT", assembler.ComputeCommand},
	}
	for pass := 0; pass < 2; pass++ {
		p.Reset()
		for _, w := range want {
			if !p.Advance() {
				t.Fatalf("pass %d: ran out of commands before %q", pass, w.cmd)
			}
			if p.Command() != w.cmd || p.Line() != w.line {
				t.Errorf("pass %d: got %q at line %d, want %q at line %d", pass, p.Command(), p.Line(), w.cmd, w.line)
			}
			ct, err := p.Classify()
			if err != nil || ct != w.ct {
				t.Errorf("pass %d: %q classified as %v (%v), want %v", pass, w.cmd, ct, err, w.ct)
			}
		}
		if p.Advance() {
			t.Errorf("pass %d: unexpected extra command %q", pass, p.Command())
		}
	}
}

func TestParserSymbol(t *testing.T) {
	tests := []struct {
		src, want string
	}{
		{"@123", "123"},
		{"@sys.init$ret.1", "sys.init$ret.1"},
		{"(Main.loop)", "Main.loop"},
		{"D=M", ""},
	}
	for _, tc := range tests {
		p := assembler.NewParser(tc.src)
		p.Advance()
		if got := p.Symbol(); got != tc.want {
			t.Errorf("%q: got symbol %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestParserFields(t *testing.T) {
	tests := []struct {
		src  string
		dest assembler.Dest
		comp assembler.Comp
		jump assembler.Jump
	}{
		{"D=A", assembler.DestD, assembler.CompA, assembler.JumpNull},
		{"0;JMP", assembler.DestNull, assembler.CompZero, assembler.JumpJMP},
		{"AMD=D|M;JLT", assembler.DestAMD, assembler.CompDOrM, assembler.JumpJLT},
		{"M=-1", assembler.DestM, assembler.CompMinusOne, assembler.JumpNull},
		{"D-A", assembler.DestNull, assembler.CompDMinusA, assembler.JumpNull},
		{"MD=M-1;JEQ", assembler.DestMD, assembler.CompMMinusOne, assembler.JumpJEQ},
	}
	for _, tc := range tests {
		p := assembler.NewParser(tc.src)
		p.Advance()
		d, err := p.Dest()
		if err != nil || d != tc.dest {
			t.Errorf("%q: dest %v (%v), want %v", tc.src, d, err, tc.dest)
		}
		c, err := p.Comp()
		if err != nil || c != tc.comp {
			t.Errorf("%q: comp %v (%v), want %v", tc.src, c, err, tc.comp)
		}
		j, err := p.Jump()
		if err != nil || j != tc.jump {
			t.Errorf("%q: jump %v (%v), want %v", tc.src, j, err, tc.jump)
		}
	}
}

func TestParserInvalidFields(t *testing.T) {
	p := assembler.NewParser("MA=D+1;JUMP")
	p.Advance()
	if _, err := p.Dest(); !errors.Is(err, assembler.ErrInvalidDest) {
		t.Errorf("dest: expected ErrInvalidDest, got %v", err)
	}
	if _, err := p.Jump(); !errors.Is(err, assembler.ErrInvalidJump) {
		t.Errorf("jump: expected ErrInvalidJump, got %v", err)
	}
	if _, err := p.Comp(); err != nil {
		t.Errorf("comp: unexpected error %v", err)
	}

	// ';' before '=' leaves no comp text.
	p = assembler.NewParser("0;D=A")
	p.Advance()
	if _, err := p.Comp(); !errors.Is(err, assembler.ErrInvalidComp) {
		t.Errorf("comp: expected ErrInvalidComp, got %v", err)
	}
}

func TestParserEmptyInput(t *testing.T) {
	p := assembler.NewParser("\n  \n// only a comment\n")
	if p.Advance() {
		t.Fatalf("expected no commands, got %q", p.Command())
	}
	if _, err := p.Classify(); !errors.Is(err, assembler.ErrInvalidCommand) {
		t.Errorf("expected ErrInvalidCommand, got %v", err)
	}
}
