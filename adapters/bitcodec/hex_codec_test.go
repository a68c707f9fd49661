package bitcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fountains/domain/core"
	"fountains/domain/fountain"
)

func TestEncodeMSBFirst(t *testing.T) {
	codec := New()

	// 0x7b = 01111011 MSB-first.
	spec := fountain.NewSpecification([]bool{false, true, true, true, true, false, true, true})
	assert.Equal(t, "7b", codec.Encode(spec))
}

func TestDecodeRoundTrip(t *testing.T) {
	codec := New()

	spec, err := codec.Decode("cf")
	require.NoError(t, err)
	assert.Equal(t, 8, spec.Len())
	assert.Equal(t, []bool{true, true, false, false, true, true, true, true}, spec.Bits())
	assert.Equal(t, "cf", codec.Encode(spec))
}

func TestDecodeBitsNonByteAligned(t *testing.T) {
	codec := New()

	// Three bits 101 pack to a0 with five zero padding bits.
	spec, err := codec.DecodeBits("a0", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, spec.Len())
	assert.Equal(t, []bool{true, false, true}, spec.Bits())

	// The bit count is the authority; nonzero padding is malformed.
	_, err = codec.DecodeBits("a1", 3)
	assert.ErrorIs(t, err, core.ErrMalformedBits)
}

func TestDecodeMalformed(t *testing.T) {
	codec := New()

	tests := []struct {
		name string
		text string
	}{
		{"odd length", "abc"},
		{"non-hex digits", "zz"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := codec.Decode(test.text)
			assert.ErrorIs(t, err, core.ErrMalformedBits)
			assert.True(t, core.IsValidationError(err))
		})
	}
}

func TestEncodeDecodeArbitrary(t *testing.T) {
	codec := New()

	spec, err := fountain.Encode(fountain.Params{
		Seed:   fountain.SeedFromString("codec"),
		Length: 4,
		Limit:  40,
	}, fountain.FunctionFunc(func(in []byte) []byte { return in }))
	require.NoError(t, err)

	decoded, err := codec.Decode(codec.Encode(spec))
	require.NoError(t, err)
	assert.Equal(t, spec.Bits(), decoded.Bits())
	assert.Equal(t, spec.Fingerprint(), decoded.Fingerprint())
}
