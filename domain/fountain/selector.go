package fountain

// BitPosition returns the output bit position examined for the given test
// index: index mod outputBitWidth. Deterministic and stateless, so encode
// and verify always select the same position. Cycling through positions
// means the set of distinct bits sampled grows with the number of test
// cases until the full output width is covered.
//
// outputBitWidth must be positive.
func BitPosition(index uint64, outputBitWidth int) int {
	return int(index % uint64(outputBitWidth))
}

// OutputBit extracts bit pos of an output byte sequence. Bits are indexed
// MSB-first: bit 0 is the most significant bit of the first byte.
func OutputBit(out []byte, pos int) bool {
	return (out[pos/8]>>(7-pos%8))&1 == 1
}
