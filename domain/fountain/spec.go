package fountain

import (
	"fountains/domain/core"
)

// Specification is an ordered sequence of verification bits, one per test
// case, standing in for a full input/output corpus. It is created once by an
// encoder (or decoded from storage) and immutable afterward.
//
// Bits are stored packed MSB-first into bytes, with trailing zero padding up
// to a byte boundary; the explicit bit count disambiguates the padding.
type Specification struct {
	packed []byte
	bits   int
}

// NewSpecification builds a specification from individual bits.
func NewSpecification(bits []bool) Specification {
	packed := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			packed[i/8] |= 1 << (7 - i%8)
		}
	}
	return Specification{packed: packed, bits: len(bits)}
}

// SpecificationFromPacked builds a specification from MSB-first packed bytes
// and an explicit bit count. The packed length must be exactly the number of
// bytes needed for bits, and any padding bits must be zero.
func SpecificationFromPacked(packed []byte, bits int) (Specification, error) {
	if bits < 0 || len(packed) != (bits+7)/8 {
		return Specification{}, core.ErrMalformedBits
	}
	if rem := bits % 8; rem != 0 && len(packed) > 0 {
		if packed[len(packed)-1]&(0xff>>rem) != 0 {
			return Specification{}, core.ErrMalformedBits
		}
	}
	cp := make([]byte, len(packed))
	copy(cp, packed)
	return Specification{packed: cp, bits: bits}, nil
}

// Len returns the number of verification bits.
func (s Specification) Len() int {
	return s.bits
}

// Bit returns verification bit i.
func (s Specification) Bit(i int) bool {
	return s.packed[i/8]&(1<<(7-i%8)) != 0
}

// Bits expands the specification into individual bits.
func (s Specification) Bits() []bool {
	out := make([]bool, s.bits)
	for i := range out {
		out[i] = s.Bit(i)
	}
	return out
}

// Packed returns a copy of the MSB-first packed bytes.
func (s Specification) Packed() []byte {
	cp := make([]byte, len(s.packed))
	copy(cp, s.packed)
	return cp
}

// Fingerprint returns a content hash binding the packed bits and bit count.
func (s Specification) Fingerprint() core.Fingerprint {
	return core.ComputeSpecFingerprint(s.packed, s.bits)
}
