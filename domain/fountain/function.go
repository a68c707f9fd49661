package fountain

// Function is the single-operation capability a function under test must
// satisfy: it maps an InputVector to a byte sequence whose bits are the
// function's output domain. Implementations must be pure with respect to
// their input; no other behavior is assumed or relied upon.
type Function interface {
	Apply(input []byte) []byte
}

// FunctionFunc adapts an ordinary Go function to the Function capability.
type FunctionFunc func([]byte) []byte

func (f FunctionFunc) Apply(input []byte) []byte { return f(input) }
