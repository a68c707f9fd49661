// Package fountain generates deterministic pseudorandom test inputs and
// compresses a function's observed behavior over them into a compact
// bit-string specification that candidate functions can be checked against.
package fountain

import (
	"encoding/hex"

	"fountains/domain/core"
)

// Seed selects a distinct deterministic pseudorandom stream. The zero-length
// seed is the fixed default.
type Seed []byte

// DefaultSeed returns the default (empty) seed.
func DefaultSeed() Seed {
	return Seed{}
}

// SeedFromString derives a seed from the raw bytes of s.
func SeedFromString(s string) Seed {
	return Seed(s)
}

// SeedFromHex decodes a seed from its hex representation.
func SeedFromHex(s string) (Seed, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, core.NewConfigurationError("seed", "invalid hex encoding")
	}
	return Seed(b), nil
}

// SeedFromInt derives a seed from a non-negative integer using its minimal
// little-endian byte encoding (at least one byte, so zero encodes as 0x00).
func SeedFromInt(v int64) (Seed, error) {
	if v < 0 {
		return nil, core.ErrNegativeSeed
	}
	seed := Seed{byte(v & 0xff)}
	for v >>= 8; v > 0; v >>= 8 {
		seed = append(seed, byte(v&0xff))
	}
	return seed, nil
}

// Hex returns the seed as a hex string.
func (s Seed) Hex() string {
	return hex.EncodeToString(s)
}

// Params is the immutable configuration for a stream, encoder, or verifier.
type Params struct {
	// Seed selects the pseudorandom stream. Nil means the default seed.
	Seed Seed
	// Length is the byte width of each generated InputVector.
	Length int
	// Limit is the number of test cases. Zero means unbounded, which is
	// only meaningful for raw generation.
	Limit int
}

// Validate checks the configuration eagerly, before any element is produced.
func (p Params) Validate() error {
	if p.Length <= 0 {
		return core.ErrInvalidLength
	}
	if p.Limit < 0 {
		return core.ErrInvalidLimit
	}
	return nil
}

// Bounded reports whether the stream terminates after Limit elements.
func (p Params) Bounded() bool {
	return p.Limit > 0
}

// WithLimit returns a copy of the params with the limit replaced.
func (p Params) WithLimit(limit int) Params {
	p.Limit = limit
	return p
}
