package fountain

import (
	"bytes"
	"errors"
	"testing"

	"fountains/domain/core"
)

func collect(t *testing.T, s *Stream, max int) [][]byte {
	t.Helper()
	var out [][]byte
	for len(out) < max {
		v, ok := s.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func TestStreamBounded(t *testing.T) {
	s, err := NewStream(Params{Seed: DefaultSeed(), Length: 3, Limit: 4})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}

	if n, bounded := s.Len(); !bounded || n != 4 {
		t.Fatalf("Len() = %d, %v; want 4, true", n, bounded)
	}

	vectors := collect(t, s, 100)
	if len(vectors) != 4 {
		t.Fatalf("produced %d vectors, want 4", len(vectors))
	}
	for i, v := range vectors {
		if len(v) != 3 {
			t.Errorf("vector %d has length %d, want 3", i, len(v))
		}
	}

	if _, ok := s.Next(); ok {
		t.Error("exhausted stream produced another element")
	}
}

func TestStreamUnbounded(t *testing.T) {
	s, err := NewStream(Params{Seed: DefaultSeed(), Length: 2})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}

	if _, bounded := s.Len(); bounded {
		t.Error("unbounded stream reported bounded")
	}

	// Pull well past any fixed boundary; consumption stops when we stop.
	vectors := collect(t, s, 500)
	if len(vectors) != 500 {
		t.Fatalf("pulled %d vectors, want 500", len(vectors))
	}
}

func TestStreamRestartable(t *testing.T) {
	p := Params{Seed: SeedFromString("restart"), Length: 5, Limit: 10}

	first, err := NewStream(p)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	second, err := NewStream(p)
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}

	a := collect(t, first, 10)
	b := collect(t, second, 10)
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("index %d: independent streams diverge", i)
		}
	}

	first.Reset()
	c := collect(t, first, 10)
	for i := range a {
		if !bytes.Equal(a[i], c[i]) {
			t.Fatalf("index %d: reset stream diverges", i)
		}
	}
}

func TestStreamAtMatchesNext(t *testing.T) {
	s, err := NewStream(Params{Seed: DefaultSeed(), Length: 4, Limit: 16})
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}

	for i := uint64(0); ; i++ {
		v, ok := s.Next()
		if !ok {
			break
		}
		if !bytes.Equal(v, s.At(i)) {
			t.Fatalf("index %d: At disagrees with Next", i)
		}
	}
}

func TestStreamConfigurationErrors(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   error
	}{
		{"zero length", Params{Length: 0, Limit: 4}, core.ErrInvalidLength},
		{"negative length", Params{Length: -3, Limit: 4}, core.ErrInvalidLength},
		{"negative limit", Params{Length: 2, Limit: -1}, core.ErrInvalidLimit},
	}

	for _, test := range tests {
		_, err := NewStream(test.params)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got %v, want %v", test.name, err, test.want)
		}
		if !core.IsConfigurationError(err) {
			t.Errorf("%s: %v is not a configuration error", test.name, err)
		}
	}
}
