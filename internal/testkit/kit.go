// Package testkit provides the in-memory adapters and reference functions
// shared by tests, the CLI, and demo deployments without a database.
package testkit

import (
	"sort"

	"fountains/domain/fountain"
	"fountains/ports"
)

// TestKit provides testing utilities and fixtures
type TestKit struct {
	repo *InMemorySpecRepository
}

// NewTestKit creates a new test kit instance
func NewTestKit() *TestKit {
	return &TestKit{repo: NewInMemorySpecRepository()}
}

// SpecRepository returns the shared in-memory repository
func (t *TestKit) SpecRepository() ports.SpecRepository {
	return t.repo
}

// Built-in reference functions, addressable by name from the CLI and API.
var functions = map[string]fountain.Function{
	"sum": fountain.FunctionFunc(func(in []byte) []byte {
		var sum byte
		for _, b := range in {
			sum += b
		}
		return []byte{sum}
	}),
	"product": fountain.FunctionFunc(func(in []byte) []byte {
		product := byte(1)
		for _, b := range in {
			product *= b
		}
		return []byte{product}
	}),
	"reverse": fountain.FunctionFunc(func(in []byte) []byte {
		out := make([]byte, len(in))
		for i, b := range in {
			out[len(in)-1-i] = b
		}
		return out
	}),
	"xor": fountain.FunctionFunc(func(in []byte) []byte {
		var acc byte
		for _, b := range in {
			acc ^= b
		}
		return []byte{acc}
	}),
	"identity": fountain.FunctionFunc(func(in []byte) []byte {
		out := make([]byte, len(in))
		copy(out, in)
		return out
	}),
}

// Function returns a built-in reference function by name
func Function(name string) (fountain.Function, bool) {
	fn, ok := functions[name]
	return fn, ok
}

// FunctionNames lists the built-in reference functions
func FunctionNames() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
