package fountain

// Stream is a lazy, restartable cursor over InputVectors. It produces the
// vector for index 0, 1, 2, ... on demand, terminating after Limit elements
// when the params are bounded and never otherwise. A Stream holds no state
// beyond its params and cursor, so memory use is O(1) regardless of how many
// elements are pulled.
//
// A single Stream is not safe for concurrent use. Because every vector is a
// pure function of (seed, index), independent Streams with equal params, or
// direct At calls over disjoint index ranges, may run in parallel freely.
type Stream struct {
	params Params
	index  uint64
}

// NewStream validates the params and returns a stream positioned at index 0.
func NewStream(p Params) (*Stream, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Stream{params: p}, nil
}

// Params returns the stream's immutable configuration.
func (s *Stream) Params() Params {
	return s.params
}

// Len returns the stream's exact element count and true when bounded,
// or 0 and false when unbounded.
func (s *Stream) Len() (int, bool) {
	if s.params.Bounded() {
		return s.params.Limit, true
	}
	return 0, false
}

// Index returns the index of the next element to be produced.
func (s *Stream) Index() uint64 {
	return s.index
}

// Next produces the InputVector at the cursor and advances it. It returns
// false once a bounded stream is exhausted.
func (s *Stream) Next() ([]byte, bool) {
	if s.params.Bounded() && s.index >= uint64(s.params.Limit) {
		return nil, false
	}
	v := s.At(s.index)
	s.index++
	return v, true
}

// At returns the InputVector at an arbitrary index without moving the
// cursor. Pure: equal indices always yield equal vectors.
func (s *Stream) At(index uint64) []byte {
	return HashInput(s.params.Seed, index, s.params.Length)
}

// Reset rewinds the cursor to index 0. A reset stream reproduces the
// identical sequence from the start.
func (s *Stream) Reset() {
	s.index = 0
}
