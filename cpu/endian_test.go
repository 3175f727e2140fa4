package cpu_test

import (
	"bytes"
	"testing"

	"github.com/Urethramancer/hack/cpu"
)

func TestWordsAndBytes(t *testing.T) {
	words := []uint16{0x0002, 0xEC10, 0x7FFF}
	b := cpu.WordsToBytes(words)
	if !bytes.Equal(b, []byte{0x00, 0x02, 0xEC, 0x10, 0x7F, 0xFF}) {
		t.Errorf("unexpected bytes % X", b)
	}
	back := cpu.BytesToWords(b)
	if len(back) != 3 || back[1] != 0xEC10 {
		t.Errorf("unexpected words %04X", back)
	}
	if odd := cpu.BytesToWords([]byte{0x12}); len(odd) != 1 || odd[0] != 0x1200 {
		t.Errorf("odd byte padding: %04X", odd)
	}
}

func TestParseText(t *testing.T) {
	words, err := cpu.ParseText("0000000000000010\n\n1110110000010000\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != 2 || words[1] != 0xEC10 {
		t.Errorf("unexpected words %04X", words)
	}
	if got := cpu.FormatText(words); got != "0000000000000010\n1110110000010000\n" {
		t.Errorf("FormatText: %q", got)
	}

	for _, bad := range []string{"0101", "000000000000002x", "00000000000000000"} {
		if _, err := cpu.ParseText(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}
