package ports

import (
	"fountains/domain/fountain"
)

// BitCodec is the external bit-sequence packing capability: a bijective
// mapping between an ordered bit sequence and a compact textual encoding.
// The padding and length-disambiguation convention is owned by the
// implementation and must be honored bit-for-bit when interoperating with
// previously stored specifications.
type BitCodec interface {
	// Encode packs a specification into its textual form.
	Encode(spec fountain.Specification) string

	// Decode unpacks a textual encoding produced by Encode. A decoded text
	// of 2k hex digits yields exactly 8k bits; non-byte-aligned lengths
	// must be reconstructed through DecodeBits with an explicit count.
	Decode(text string) (fountain.Specification, error)

	// DecodeBits unpacks a textual encoding with an explicit bit count,
	// for specifications whose length is not a multiple of eight.
	DecodeBits(text string, bits int) (fountain.Specification, error)
}
