package fountain

import (
	"fountains/domain/core"
)

// Encoder drives the input stream and a reference function to produce one
// verification bit per test case. The reference function is invoked exactly
// once per index, in index order.
type Encoder struct {
	stream *Stream
	fn     Function
}

// NewEncoder validates the configuration eagerly. Encoding requires a
// bounded limit and a function.
func NewEncoder(p Params, fn Function) (*Encoder, error) {
	if fn == nil {
		return nil, core.ErrMissingFunction
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.Bounded() {
		return nil, core.ErrUnboundedLimit
	}
	stream, err := NewStream(p)
	if err != nil {
		return nil, err
	}
	return &Encoder{stream: stream, fn: fn}, nil
}

// NextBit computes the verification bit for the next index: the bit of the
// function's output selected by BitPosition for that index. It returns
// ok=false once all test cases are produced. A function output with no bits
// is a contract violation and fails the encoding outright.
func (e *Encoder) NextBit() (bit bool, ok bool, err error) {
	index := e.stream.Index()
	input, ok := e.stream.Next()
	if !ok {
		return false, false, nil
	}
	out := e.fn.Apply(input)
	width := 8 * len(out)
	if width == 0 {
		return false, false, core.NewEmptyOutputError(index)
	}
	return OutputBit(out, BitPosition(index, width)), true, nil
}

// Encode runs the encoder to completion and returns the specification.
func (e *Encoder) Encode() (Specification, error) {
	bits := make([]bool, 0, e.stream.Params().Limit)
	for {
		bit, ok, err := e.NextBit()
		if err != nil {
			return Specification{}, err
		}
		if !ok {
			return NewSpecification(bits), nil
		}
		bits = append(bits, bit)
	}
}

// Encode produces the specification of fn's behavior over the bounded
// pseudorandom input sequence described by p.
func Encode(p Params, fn Function) (Specification, error) {
	enc, err := NewEncoder(p, fn)
	if err != nil {
		return Specification{}, err
	}
	return enc.Encode()
}
