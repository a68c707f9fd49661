package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint identifies a specification by its content.
type Fingerprint Hash

func (f Fingerprint) String() string { return Hash(f).String() }

// ComputeSpecFingerprint hashes a specification's packed bytes together with
// its bit count, so two specifications that differ only in trailing padding
// never share a fingerprint.
func ComputeSpecFingerprint(packed []byte, bits int) Fingerprint {
	data := make([]byte, 0, len(packed)+8)
	data = append(data, packed...)
	data = binary.BigEndian.AppendUint64(data, uint64(bits))
	return Fingerprint(NewHash(data))
}
