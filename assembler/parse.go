package assembler

import (
	"strings"
)

const commentMarker = "//"

// Parser walks the source one command at a time.
// Call Advance before any of the field accessors.
type Parser struct {
	lines   []string
	next    int
	line    int
	command string
}

// NewParser splits src into lines and positions the parser at the start.
func NewParser(src string) *Parser {
	return &Parser{
		lines: strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n"),
	}
}

// Reset repositions the parser at the first line.
func (p *Parser) Reset() {
	p.next = 0
	p.line = 0
	p.command = ""
}

// Advance moves to the next substantive line, skipping blanks and comments.
// It returns false once the input is exhausted.
func (p *Parser) Advance() bool {
	for p.next < len(p.lines) {
		line := strings.TrimSpace(p.lines[p.next])
		p.next++
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}
		if i := strings.Index(line, commentMarker); i != -1 {
			line = strings.TrimSpace(line[:i])
		}
		p.line = p.next
		p.command = line
		return true
	}
	p.command = ""
	return false
}

// Command returns the current comment-stripped command text.
func (p *Parser) Command() string {
	return p.command
}

// Line returns the 1-based source line of the current command.
func (p *Parser) Line() int {
	return p.line
}

// Classify determines the kind of the current command.
func (p *Parser) Classify() (CommandType, error) {
	cmd := p.command
	switch {
	case cmd == "":
		return CommandUnknown, p.errorf(ErrInvalidCommand)
	case strings.HasPrefix(cmd, "@"):
		if len(cmd) == 1 {
			return CommandUnknown, p.errorf(ErrInvalidCommand)
		}
		return AddressCommand, nil
	case strings.HasPrefix(cmd, "(") && strings.HasSuffix(cmd, ")"):
		if len(cmd) <= 2 {
			return CommandUnknown, p.errorf(ErrInvalidCommand)
		}
		return LabelCommand, nil
	default:
		return ComputeCommand, nil
	}
}

// Symbol returns the text after @ or between the parentheses of a label.
// It is empty for compute commands.
func (p *Parser) Symbol() string {
	cmd := p.command
	switch {
	case strings.HasPrefix(cmd, "@"):
		return cmd[1:]
	case len(cmd) >= 2 && strings.HasPrefix(cmd, "(") && strings.HasSuffix(cmd, ")"):
		return cmd[1 : len(cmd)-1]
	}
	return ""
}

// Dest returns the mnemonic before '=', or DestNull when there is none.
func (p *Parser) Dest() (Dest, error) {
	i := strings.IndexByte(p.command, '=')
	if i == -1 {
		return DestNull, nil
	}
	d, ok := ParseDest(p.command[:i])
	if !ok {
		return DestNull, p.errorf(ErrInvalidDest)
	}
	return d, nil
}

// Jump returns the mnemonic after ';', or JumpNull when there is none.
func (p *Parser) Jump() (Jump, error) {
	i := strings.IndexByte(p.command, ';')
	if i == -1 {
		return JumpNull, nil
	}
	j, ok := ParseJump(p.command[i+1:])
	if !ok {
		return JumpNull, p.errorf(ErrInvalidJump)
	}
	return j, nil
}

// Comp returns the mnemonic between '=' and ';', each of which is optional.
func (p *Parser) Comp() (Comp, error) {
	start := strings.IndexByte(p.command, '=') + 1
	end := strings.IndexByte(p.command, ';')
	if end == -1 {
		end = len(p.command)
	}
	if end < start {
		return CompZero, p.errorf(ErrInvalidComp)
	}
	c, ok := ParseComp(p.command[start:end])
	if !ok {
		return CompZero, p.errorf(ErrInvalidComp)
	}
	return c, nil
}

func (p *Parser) errorf(err error) error {
	return &LineError{Line: p.line, Text: p.command, Err: err}
}
