package main

import "testing"

func TestChildVisitResultValues(t *testing.T) {
	// The trampoline passes these through to the native traversal API
	// verbatim; the numeric assignments are part of the contract.
	cases := []struct {
		r    ChildVisitResult
		num  int32
		name string
	}{
		{VisitBreak, 0, "break"},
		{VisitContinue, 1, "continue"},
		{VisitRecurse, 2, "recurse"},
	}
	for _, c := range cases {
		if int32(c.r) != c.num {
			t.Errorf("%s = %d, want %d", c.name, c.r, c.num)
		}
		if c.r.String() != c.name {
			t.Errorf("String() = %q, want %q", c.r.String(), c.name)
		}
	}
	if ChildVisitResult(7).String() != "invalid" {
		t.Error("out-of-range results must stringify as invalid")
	}
}

func TestTraversalResultString(t *testing.T) {
	if Completed.String() != "completed" || Interrupted.String() != "interrupted" {
		t.Error("unexpected TraversalResult strings")
	}
}

func TestResultCodesDistinguishable(t *testing.T) {
	// The C surface must never report a failure that could be read as
	// success.
	if visitBadHandle >= 0 || regFailed >= 0 {
		t.Error("failure sentinels must be negative")
	}
	if visitCompleted == visitInterrupted {
		t.Error("completed and interrupted must differ")
	}
}
