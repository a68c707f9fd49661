package fountain

import (
	"bytes"
	"testing"

	"fountains/domain/core"
)

func TestChecksMatchVerify(t *testing.T) {
	p := Params{Seed: SeedFromString("checks"), Length: 3, Limit: 16}
	spec, err := Encode(p, sumFunc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	checks, err := Checks(p, spec)
	if err != nil {
		t.Fatalf("Checks: %v", err)
	}
	if len(checks) != spec.Len() {
		t.Fatalf("%d checks, want %d", len(checks), spec.Len())
	}

	// Applying each check to a candidate's outputs must reproduce Verify.
	results, err := Verify(p, productFunc, spec)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	for i, c := range checks {
		if c.Index != uint64(i) {
			t.Fatalf("check %d carries index %d", i, c.Index)
		}
		if !bytes.Equal(c.Input, HashInput(p.Seed, c.Index, p.Length)) {
			t.Fatalf("check %d carries the wrong input", i)
		}
		got, err := c.Apply(productFunc.Apply(c.Input))
		if err != nil {
			t.Fatalf("check %d: Apply: %v", i, err)
		}
		if got != results[i] {
			t.Errorf("check %d: Apply = %v, Verify = %v", i, got, results[i])
		}
	}
}

func TestCheckApplyEmptyOutput(t *testing.T) {
	p := Params{Seed: DefaultSeed(), Length: 2, Limit: 2}
	spec, err := Encode(p, sumFunc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	checks, err := Checks(p, spec)
	if err != nil {
		t.Fatalf("Checks: %v", err)
	}

	if _, err := checks[0].Apply(nil); !core.IsDomainError(err) {
		t.Errorf("empty output: got %v, want a domain error", err)
	}
}
