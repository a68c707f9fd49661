package fountain

import "testing"

func TestBitPositionCycles(t *testing.T) {
	const width = 8
	for index := uint64(0); index < 64; index++ {
		pos := BitPosition(index, width)
		if pos < 0 || pos >= width {
			t.Fatalf("index %d: position %d out of range [0,%d)", index, pos, width)
		}
		if pos != int(index%width) {
			t.Fatalf("index %d: position %d, want %d", index, pos, index%width)
		}
	}
}

// The set of distinct positions sampled over indices 0..limit-1 must grow
// strictly with limit until the full width is covered.
func TestBitPositionCoverageGrowth(t *testing.T) {
	const width = 24

	covered := make(map[int]bool)
	for limit := 1; limit <= width; limit++ {
		before := len(covered)
		covered[BitPosition(uint64(limit-1), width)] = true
		if len(covered) != before+1 {
			t.Fatalf("limit %d: coverage did not grow (still %d positions)", limit, len(covered))
		}
	}
	if len(covered) != width {
		t.Fatalf("covered %d positions, want %d", len(covered), width)
	}
}

func TestOutputBitMSBFirst(t *testing.T) {
	// 0x7b = 01111011
	out := []byte{0x7b}
	want := []bool{false, true, true, true, true, false, true, true}
	for pos, w := range want {
		if OutputBit(out, pos) != w {
			t.Errorf("bit %d of 0x7b: got %v, want %v", pos, OutputBit(out, pos), w)
		}
	}

	// Bit 8 is the MSB of the second byte.
	if !OutputBit([]byte{0x00, 0x80}, 8) {
		t.Error("bit 8 of 0x0080 should be set")
	}
	if OutputBit([]byte{0xff, 0x7f}, 8) {
		t.Error("bit 8 of 0xff7f should be clear")
	}
}
