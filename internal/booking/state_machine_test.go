package booking

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusRejected, false},
		{StatusApproved, StatusApproved, false},
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{Status("UNKNOWN"), StatusApproved, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(StatusPending) {
		t.Fatalf("PENDING should not be terminal")
	}
	if !IsTerminal(StatusApproved) {
		t.Fatalf("APPROVED should be terminal")
	}
	if !IsTerminal(StatusRejected) {
		t.Fatalf("REJECTED should be terminal")
	}
}
