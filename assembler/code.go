package assembler

//
// Mnemonic and encoding tables
//

var (
	destMnemonics = map[Dest]string{
		DestNull: "",
		DestM:    "M",
		DestD:    "D",
		DestMD:   "MD",
		DestA:    "A",
		DestAM:   "AM",
		DestAD:   "AD",
		DestAMD:  "AMD",
	}

	destBits = map[Dest]string{
		DestNull: "000",
		DestM:    "001",
		DestD:    "010",
		DestMD:   "011",
		DestA:    "100",
		DestAM:   "101",
		DestAD:   "110",
		DestAMD:  "111",
	}

	jumpMnemonics = map[Jump]string{
		JumpNull: "",
		JumpJGT:  "JGT",
		JumpJEQ:  "JEQ",
		JumpJGE:  "JGE",
		JumpJLT:  "JLT",
		JumpJNE:  "JNE",
		JumpJLE:  "JLE",
		JumpJMP:  "JMP",
	}

	jumpBits = map[Jump]string{
		JumpNull: "000",
		JumpJGT:  "001",
		JumpJEQ:  "010",
		JumpJGE:  "011",
		JumpJLT:  "100",
		JumpJNE:  "101",
		JumpJLE:  "110",
		JumpJMP:  "111",
	}

	compMnemonics = map[Comp]string{
		CompZero:      "0",
		CompOne:       "1",
		CompMinusOne:  "-1",
		CompD:         "D",
		CompA:         "A",
		CompNotD:      "!D",
		CompNotA:      "!A",
		CompNegD:      "-D",
		CompNegA:      "-A",
		CompDPlusOne:  "D+1",
		CompAPlusOne:  "A+1",
		CompDMinusOne: "D-1",
		CompAMinusOne: "A-1",
		CompDPlusA:    "D+A",
		CompDMinusA:   "D-A",
		CompAMinusD:   "A-D",
		CompDAndA:     "D&A",
		CompDOrA:      "D|A",
		CompM:         "M",
		CompNotM:      "!M",
		CompNegM:      "-M",
		CompMPlusOne:  "M+1",
		CompMMinusOne: "M-1",
		CompDPlusM:    "D+M",
		CompDMinusM:   "D-M",
		CompMMinusD:   "M-D",
		CompDAndM:     "D&M",
		CompDOrM:      "D|M",
	}

	// compBits holds the a-bit followed by the six ALU control bits.
	compBits = map[Comp]string{
		CompZero:      "0101010",
		CompOne:       "0111111",
		CompMinusOne:  "0111010",
		CompD:         "0001100",
		CompA:         "0110000",
		CompNotD:      "0001101",
		CompNotA:      "0110001",
		CompNegD:      "0001111",
		CompNegA:      "0110011",
		CompDPlusOne:  "0011111",
		CompAPlusOne:  "0110111",
		CompDMinusOne: "0001110",
		CompAMinusOne: "0110010",
		CompDPlusA:    "0000010",
		CompDMinusA:   "0010011",
		CompAMinusD:   "0000111",
		CompDAndA:     "0000000",
		CompDOrA:      "0010101",
		CompM:         "1110000",
		CompNotM:      "1110001",
		CompNegM:      "1110011",
		CompMPlusOne:  "1110111",
		CompMMinusOne: "1110010",
		CompDPlusM:    "1000010",
		CompDMinusM:   "1010011",
		CompMMinusD:   "1000111",
		CompDAndM:     "1000000",
		CompDOrM:      "1010101",
	}

	destByMnemonic = invert(destMnemonics)
	jumpByMnemonic = invert(jumpMnemonics)
	compByMnemonic = invert(compMnemonics)
)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// EncodeComp returns the 7-bit a+cccccc field for c.
func EncodeComp(c Comp) string {
	return compBits[c]
}

// EncodeDest returns the 3-bit dest field for d.
func EncodeDest(d Dest) string {
	return destBits[d]
}

// EncodeJump returns the 3-bit jump field for j.
func EncodeJump(j Jump) string {
	return jumpBits[j]
}

// ParseComp looks up a comp mnemonic such as "D+M".
func ParseComp(s string) (Comp, bool) {
	c, ok := compByMnemonic[s]
	return c, ok
}

// ParseDest looks up a dest mnemonic. The empty string is not a valid mnemonic;
// an absent dest is DestNull.
func ParseDest(s string) (Dest, bool) {
	if s == "" {
		return DestNull, false
	}
	d, ok := destByMnemonic[s]
	return d, ok
}

// ParseJump looks up a jump mnemonic. The empty string is not a valid mnemonic;
// an absent jump is JumpNull.
func ParseJump(s string) (Jump, bool) {
	if s == "" {
		return JumpNull, false
	}
	j, ok := jumpByMnemonic[s]
	return j, ok
}

// Comps returns every computation in encoding-table order.
func Comps() []Comp {
	out := make([]Comp, 0, len(compMnemonics))
	for c := CompZero; c <= CompDOrM; c++ {
		out = append(out, c)
	}
	return out
}

// Dests returns every destination, DestNull first.
func Dests() []Dest {
	out := make([]Dest, 0, len(destMnemonics))
	for d := DestNull; d <= DestAMD; d++ {
		out = append(out, d)
	}
	return out
}

// Jumps returns every jump condition, JumpNull first.
func Jumps() []Jump {
	out := make([]Jump, 0, len(jumpMnemonics))
	for j := JumpNull; j <= JumpJMP; j++ {
		out = append(out, j)
	}
	return out
}

func (c Comp) String() string { return compMnemonics[c] }
func (d Dest) String() string { return destMnemonics[d] }
func (j Jump) String() string { return jumpMnemonics[j] }
