package fountain

import (
	"fountains/domain/core"
)

// Verifier replays the input stream against a candidate function and
// compares each sampled output bit with a previously encoded specification.
//
// Soundness: a false result occurs only when the candidate's selected output
// bit genuinely differs from the recorded bit, so every reported mismatch is
// a true behavioral difference at that sampled point. A true result certifies
// agreement on one bit only; the candidate may still differ on bits that were
// never examined.
type Verifier struct {
	stream *Stream
	fn     Function
	spec   Specification
}

// NewVerifier validates the configuration eagerly. The number of test cases
// is inferred from the specification's length; a non-zero p.Limit must agree
// with it.
func NewVerifier(p Params, fn Function, spec Specification) (*Verifier, error) {
	if fn == nil {
		return nil, core.ErrMissingFunction
	}
	if p.Limit != 0 && p.Limit != spec.Len() {
		return nil, core.ErrSpecLengthMismatch
	}
	stream, err := NewStream(p.WithLimit(spec.Len()))
	if err != nil {
		return nil, err
	}
	return &Verifier{stream: stream, fn: fn, spec: spec}, nil
}

// NextResult checks the candidate against the next specification bit. It
// returns ok=false once every bit has been checked.
func (v *Verifier) NextResult() (match bool, ok bool, err error) {
	index := v.stream.Index()
	if index >= uint64(v.spec.Len()) {
		return false, false, nil
	}
	input, ok := v.stream.Next()
	if !ok {
		return false, false, nil
	}
	out := v.fn.Apply(input)
	width := 8 * len(out)
	if width == 0 {
		return false, false, core.NewEmptyOutputError(index)
	}
	bit := OutputBit(out, BitPosition(index, width))
	return bit == v.spec.Bit(int(index)), true, nil
}

// Verify runs the verifier to completion, returning one result per test case.
func (v *Verifier) Verify() ([]bool, error) {
	results := make([]bool, 0, v.spec.Len())
	for {
		match, ok, err := v.NextResult()
		if err != nil {
			return nil, err
		}
		if !ok {
			return results, nil
		}
		results = append(results, match)
	}
}

// Verify checks a candidate function against a specification, recomputing
// the same inputs and bit positions the encoder used.
func Verify(p Params, fn Function, spec Specification) ([]bool, error) {
	ver, err := NewVerifier(p, fn, spec)
	if err != nil {
		return nil, err
	}
	return ver.Verify()
}
