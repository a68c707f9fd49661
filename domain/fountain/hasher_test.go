package fountain

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// Golden vectors pin the hasher construction. These are regression
// fixtures: once fixed, any change to the construction is a breaking
// change to every stored specification.
func TestHashInputGoldenVectors(t *testing.T) {
	tests := []struct {
		name   string
		seed   Seed
		index  uint64
		length int
		hex    string
	}{
		{"default seed index 0", DefaultSeed(), 0, 3, "374708"},
		{"default seed index 1", DefaultSeed(), 1, 3, "783825"},
		{"default seed index 2", DefaultSeed(), 2, 3, "1309ac"},
		{"default seed index 3", DefaultSeed(), 3, 3, "2b7ebe"},
		{"string seed index 0", SeedFromString("abc"), 0, 2, "9f9d"},
		{"string seed index 1", SeedFromString("abc"), 1, 2, "4e05"},
		{"string seed index 2", SeedFromString("abc"), 2, 2, "ce6d"},
	}

	for _, test := range tests {
		got := hex.EncodeToString(HashInput(test.seed, test.index, test.length))
		if got != test.hex {
			t.Errorf("%s: got %s, want %s", test.name, got, test.hex)
		}
	}
}

func TestHashInputIntegerSeed(t *testing.T) {
	seed, err := SeedFromInt(123)
	if err != nil {
		t.Fatalf("SeedFromInt(123): %v", err)
	}

	want := []string{"aceb", "c4a8", "74ec"}
	for i, w := range want {
		got := hex.EncodeToString(HashInput(seed, uint64(i), 2))
		if got != w {
			t.Errorf("index %d: got %s, want %s", i, got, w)
		}
	}
}

func TestSeedFromInt(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
		hasError bool
	}{
		{0, "00", false},
		{123, "7b", false},
		{256, "0001", false},
		{-1, "", true},
	}

	for _, test := range tests {
		seed, err := SeedFromInt(test.input)
		if test.hasError && err == nil {
			t.Errorf("SeedFromInt(%d): expected error, got none", test.input)
		}
		if !test.hasError && err != nil {
			t.Errorf("SeedFromInt(%d): unexpected error: %v", test.input, err)
		}
		if !test.hasError && seed.Hex() != test.expected {
			t.Errorf("SeedFromInt(%d): got %s, want %s", test.input, seed.Hex(), test.expected)
		}
	}
}

// Lengths beyond one digest pull in additional blocks; the first 32 bytes
// must match the single-block output exactly.
func TestHashInputMultiBlock(t *testing.T) {
	const wantHex = "374708fff7719dd5979ec875d56cd2286f6d3cf7ec317a3b25632aab28ec37bb" +
		"7c3ccd10bb7ec37b"

	got := HashInput(DefaultSeed(), 0, 40)
	if len(got) != 40 {
		t.Fatalf("length = %d, want 40", len(got))
	}
	if hex.EncodeToString(got) != wantHex {
		t.Errorf("got %s, want %s", hex.EncodeToString(got), wantHex)
	}

	short := HashInput(DefaultSeed(), 0, 32)
	if !bytes.Equal(got[:32], short) {
		t.Error("40-byte output does not extend the 32-byte output")
	}
}

func TestHashInputDeterminism(t *testing.T) {
	seed := SeedFromString("determinism")
	for index := uint64(0); index < 100; index++ {
		a := HashInput(seed, index, 16)
		b := HashInput(seed, index, 16)
		if !bytes.Equal(a, b) {
			t.Fatalf("index %d: repeated derivation differs", index)
		}
	}
}

func TestHashInputDistinctness(t *testing.T) {
	seen := make(map[string]uint64)
	for index := uint64(0); index < 1000; index++ {
		v := string(HashInput(DefaultSeed(), index, 8))
		if prev, dup := seen[v]; dup {
			t.Fatalf("indices %d and %d produced identical vectors", prev, index)
		}
		seen[v] = index
	}
}

func TestHashInputSeedSeparation(t *testing.T) {
	a := HashInput(SeedFromString("a"), 0, 16)
	b := HashInput(SeedFromString("b"), 0, 16)
	if bytes.Equal(a, b) {
		t.Error("distinct seeds produced identical vectors")
	}
}

func TestHashInputNonPositiveLength(t *testing.T) {
	if got := HashInput(DefaultSeed(), 0, 0); got != nil {
		t.Errorf("length 0: got %v, want nil", got)
	}
}
