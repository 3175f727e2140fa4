package cpu

// Machine limits and memory map.
const (
	// AddressBits is the width of an A-instruction operand.
	AddressBits = 15
	// AddressLimit is the first address that does not fit in an A-instruction.
	AddressLimit = 1 << AddressBits
	// ROMSize is the number of instruction words the machine can hold.
	ROMSize = AddressLimit
	// ScreenBase is the first word of the memory-mapped screen.
	ScreenBase = 16384
	// KeyboardAddr is the memory-mapped keyboard register.
	KeyboardAddr = 24576
	// RAMSize covers data memory, the screen and the keyboard.
	RAMSize = KeyboardAddr + 1
)

// C-instruction fields.
const (
	// CPrefix marks a compute instruction: bits 15-13 set.
	CPrefix = 0xE000
	// ABit selects M instead of A as the ALU's second operand.
	ABit = 1 << 12

	CompShift = 6
	CompMask  = 0x3F
	DestShift = 3
	DestMask  = 0x7
	JumpMask  = 0x7
)

// Dest bits.
const (
	DestM = 1 << 0
	DestD = 1 << 1
	DestA = 1 << 2
)

// Jump bits.
const (
	JumpGT = 1 << 0
	JumpEQ = 1 << 1
	JumpLT = 1 << 2
)

// ALU control bits within the 6-bit comp field.
const (
	ALUNo = 1 << iota
	ALUF
	ALUNy
	ALUZy
	ALUNx
	ALUZx
)
