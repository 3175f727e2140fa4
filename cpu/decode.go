package cpu

// DecodedInstruction holds the fields of one Hack instruction.
type DecodedInstruction struct {
	// Compute is false for A-instructions.
	Compute bool
	// Value is the operand of an A-instruction.
	Value uint16
	// M is set when the a-bit selects memory as the ALU's second operand.
	M    bool
	Comp uint16
	Dest uint16
	Jump uint16
}

// Decode splits a word into its instruction fields.
// Words with bit 15 set but bits 14-13 clear are decoded as compute instructions
// the same way the hardware ignores those bits.
func Decode(word uint16) DecodedInstruction {
	if word&0x8000 == 0 {
		return DecodedInstruction{Value: word}
	}
	return DecodedInstruction{
		Compute: true,
		M:       word&ABit != 0,
		Comp:    (word >> CompShift) & CompMask,
		Dest:    (word >> DestShift) & DestMask,
		Jump:    word & JumpMask,
	}
}

// Encode packs the fields back into a word. Compute words always carry the full 111 prefix.
func (d DecodedInstruction) Encode() uint16 {
	if !d.Compute {
		return d.Value & (AddressLimit - 1)
	}
	w := uint16(CPrefix) | (d.Comp&CompMask)<<CompShift | (d.Dest&DestMask)<<DestShift | d.Jump&JumpMask
	if d.M {
		w |= ABit
	}
	return w
}

// ALU computes the Hack ALU function selected by the six control bits.
func ALU(x, y, control uint16) uint16 {
	if control&ALUZx != 0 {
		x = 0
	}
	if control&ALUNx != 0 {
		x = ^x
	}
	if control&ALUZy != 0 {
		y = 0
	}
	if control&ALUNy != 0 {
		y = ^y
	}
	var out uint16
	if control&ALUF != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if control&ALUNo != 0 {
		out = ^out
	}
	return out
}

// Jumps reports whether the jump bits fire for an ALU result.
func Jumps(jump, result uint16) bool {
	v := int16(result)
	switch {
	case v < 0:
		return jump&JumpLT != 0
	case v == 0:
		return jump&JumpEQ != 0
	default:
		return jump&JumpGT != 0
	}
}
