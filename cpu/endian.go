package cpu

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// WordsToBytes converts a slice of 16-bit words to a big-endian byte slice.
func WordsToBytes(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		binary.BigEndian.PutUint16(out[i*2:], w)
	}
	return out
}

// BytesToWords interprets bytes as big-endian 16-bit words.
// If an odd number of bytes is passed, the final byte is padded with 0.
func BytesToWords(b []byte) []uint16 {
	if len(b)%2 != 0 {
		b = append(b, 0)
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[i*2:])
	}
	return out
}

// ParseText reads .hack text: one 16-character binary word per line.
// Blank lines are skipped.
func ParseText(src string) ([]uint16, error) {
	var out []uint16
	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) != 16 {
			return nil, fmt.Errorf("line %d: expected 16 bits, got %d", i+1, len(line))
		}
		v, err := strconv.ParseUint(line, 2, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, uint16(v))
	}
	return out, nil
}

// FormatText writes words as .hack text.
func FormatText(words []uint16) string {
	var sb strings.Builder
	for _, w := range words {
		fmt.Fprintf(&sb, "%016b\n", w)
	}
	return sb.String()
}
