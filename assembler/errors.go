package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned for a line that is not an address, compute or label command.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidDest is returned for an unknown dest mnemonic.
	ErrInvalidDest = errors.New("invalid dest")
	// ErrInvalidJump is returned for an unknown jump mnemonic.
	ErrInvalidJump = errors.New("invalid jump")
	// ErrInvalidComp is returned for an unknown comp mnemonic.
	ErrInvalidComp = errors.New("invalid comp")
	// ErrUndefinedSymbol is returned when looking up a name that was never defined.
	ErrUndefinedSymbol = errors.New("undefined symbol")
	// ErrAddressOverflow is returned when an address does not fit in 15 bits.
	ErrAddressOverflow = errors.New("address overflow")
)

// LineError ties an error to the source line that caused it.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
