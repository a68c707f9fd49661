package fountain

import (
	"crypto/sha256"
	"encoding/binary"
)

// HashInput derives the InputVector for (seed, index): a pure, stateless
// function returning exactly length bytes. Block j of the output is
// SHA-256(seed || index || j) with the counters encoded as big-endian
// uint64; blocks are concatenated and truncated to length.
//
// Identical (seed, index, length) triples yield identical bytes across
// processes and machines, and distinct (seed, index) pairs collide only
// with negligible probability. The bytes are statistically uniform but
// carry no cryptographic secrecy guarantee.
func HashInput(seed Seed, index uint64, length int) []byte {
	if length <= 0 {
		return nil
	}
	out := make([]byte, 0, ((length+sha256.Size-1)/sha256.Size)*sha256.Size)
	var counters [16]byte
	binary.BigEndian.PutUint64(counters[:8], index)
	for block := uint64(0); len(out) < length; block++ {
		binary.BigEndian.PutUint64(counters[8:], block)
		h := sha256.New()
		h.Write(seed)
		h.Write(counters[:])
		out = h.Sum(out)
	}
	return out[:length]
}
