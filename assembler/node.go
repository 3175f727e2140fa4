package assembler

// CommandType defines the kind of a source command.
type CommandType int

const (
	// CommandUnknown is never returned without an error.
	CommandUnknown CommandType = iota
	// AddressCommand is @symbol or @literal.
	AddressCommand
	// ComputeCommand is dest=comp;jump with optional dest and jump.
	ComputeCommand
	// LabelCommand is (LABEL). It emits no code.
	LabelCommand
)

func (t CommandType) String() string {
	switch t {
	case AddressCommand:
		return "address"
	case ComputeCommand:
		return "compute"
	case LabelCommand:
		return "label"
	default:
		return "unknown"
	}
}

// Dest is the destination field of a compute command.
type Dest int

// Destinations in encoding order.
const (
	DestNull Dest = iota
	DestM
	DestD
	DestMD
	DestA
	DestAM
	DestAD
	DestAMD
)

// Jump is the jump field of a compute command.
type Jump int

// Jump conditions in encoding order.
const (
	JumpNull Jump = iota
	JumpJGT
	JumpJEQ
	JumpJGE
	JumpJLT
	JumpJNE
	JumpJLE
	JumpJMP
)

// Comp is the computation field of a compute command.
type Comp int

// Computations. The first 18 read the A register, the rest read M.
const (
	CompZero Comp = iota
	CompOne
	CompMinusOne
	CompD
	CompA
	CompNotD
	CompNotA
	CompNegD
	CompNegA
	CompDPlusOne
	CompAPlusOne
	CompDMinusOne
	CompAMinusOne
	CompDPlusA
	CompDMinusA
	CompAMinusD
	CompDAndA
	CompDOrA
	CompM
	CompNotM
	CompNegM
	CompMPlusOne
	CompMMinusOne
	CompDPlusM
	CompDMinusM
	CompMMinusD
	CompDAndM
	CompDOrM
)

// Instruction is one emitted machine word and the source it came from.
type Instruction struct {
	// Address is the ROM address of the word.
	Address uint32
	// Line is the 1-based source line.
	Line int
	// Source is the comment-stripped command text.
	Source string
	// Bits is the 16-character binary representation.
	Bits string
}
