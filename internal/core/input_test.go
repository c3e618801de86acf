package core

import "testing"

func TestActionSet(t *testing.T) {
	var s ActionSet
	if !s.Empty() {
		t.Error("zero ActionSet should be empty")
	}

	s = s.With(ActionUp).With(ActionRight)

	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionUp, true},
		{ActionDown, false},
		{ActionLeft, false},
		{ActionRight, true},
	}
	for _, tc := range tests {
		if got := s.Has(tc.action); got != tc.expected {
			t.Errorf("Has(%s) = %v, expected %v", tc.action, got, tc.expected)
		}
	}

	if s.Empty() {
		t.Error("set with actions should not be empty")
	}
	if s.String() != "Up|Right" {
		t.Errorf("String() = %q, expected \"Up|Right\"", s.String())
	}
}

func TestActionSetWithIsIdempotent(t *testing.T) {
	s := ActionSet(0).With(ActionLeft)
	if s.With(ActionLeft) != s {
		t.Error("adding an action twice should not change the set")
	}
}
