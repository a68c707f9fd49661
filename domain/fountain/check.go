package fountain

import (
	"fountains/domain/core"
)

// Check pairs an InputVector with the verification bit recorded for it, so a
// candidate's output can be tested later without re-deriving the input. This
// is the deferred form of verification: produce the checks once, then apply
// each to the corresponding candidate output.
type Check struct {
	// Index is the test case's position in the stream.
	Index uint64
	// Input is the InputVector the candidate must be applied to.
	Input []byte

	want bool
}

// Want returns the verification bit the candidate's output must reproduce.
func (c Check) Want() bool {
	return c.want
}

// Apply reports whether a candidate output satisfies this check, selecting
// the output bit exactly as the encoder did for this index.
func (c Check) Apply(out []byte) (bool, error) {
	width := 8 * len(out)
	if width == 0 {
		return false, core.NewEmptyOutputError(c.Index)
	}
	return OutputBit(out, BitPosition(c.Index, width)) == c.want, nil
}

// Checks expands a specification into one Check per test case.
func Checks(p Params, spec Specification) ([]Check, error) {
	stream, err := NewStream(p.WithLimit(spec.Len()))
	if err != nil {
		return nil, err
	}
	checks := make([]Check, spec.Len())
	for i := range checks {
		checks[i] = Check{
			Index: uint64(i),
			Input: stream.At(uint64(i)),
			want:  spec.Bit(i),
		}
	}
	return checks, nil
}
