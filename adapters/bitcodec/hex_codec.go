// Package bitcodec implements the external bit-sequence packing contract:
// bits are packed MSB-first into bytes in order, padded with trailing zero
// bits to a byte boundary, and rendered as lowercase hex. The convention
// matches the encoding used by previously stored specifications and must
// not change.
package bitcodec

import (
	"encoding/hex"
	"fmt"

	"fountains/domain/core"
	"fountains/domain/fountain"
	"fountains/ports"
)

// HexCodec packs bit sequences to hex strings and back.
type HexCodec struct{}

// New creates a hex bit codec.
func New() *HexCodec {
	return &HexCodec{}
}

var _ ports.BitCodec = (*HexCodec)(nil)

// Encode packs the specification's bits into a lowercase hex string.
func (c *HexCodec) Encode(spec fountain.Specification) string {
	return hex.EncodeToString(spec.Packed())
}

// Decode unpacks a hex string into a byte-aligned specification: 2k hex
// digits yield exactly 8k bits.
func (c *HexCodec) Decode(text string) (fountain.Specification, error) {
	packed, err := c.unpack(text)
	if err != nil {
		return fountain.Specification{}, err
	}
	return fountain.SpecificationFromPacked(packed, 8*len(packed))
}

// DecodeBits unpacks a hex string carrying an explicit bit count, for
// specifications whose length is not a multiple of eight. The count is the
// authority; the padding bits in the text must be zero.
func (c *HexCodec) DecodeBits(text string, bits int) (fountain.Specification, error) {
	packed, err := c.unpack(text)
	if err != nil {
		return fountain.Specification{}, err
	}
	return fountain.SpecificationFromPacked(packed, bits)
}

func (c *HexCodec) unpack(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, fmt.Errorf("%w: odd-length hex string", core.ErrMalformedBits)
	}
	packed, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrMalformedBits, err)
	}
	return packed, nil
}
