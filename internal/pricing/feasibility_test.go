package pricing

import (
	"strings"
	"testing"
)

func TestCheckRangeValid(t *testing.T) {
	res := CheckRange(4000, 2000, 800)
	if !res.OK {
		t.Errorf("expected valid, got reason %q", res.Reason)
	}
}

func TestCheckRangeMainExceeds(t *testing.T) {
	res := CheckRange(3000, 3500, 0)
	if res.OK {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Reason, "main route") {
		t.Errorf("reason = %q, want main route reason", res.Reason)
	}
}

// The main-distance check has priority even when other checks would also
// fail.
func TestCheckRangeMainCheckOrdering(t *testing.T) {
	res := CheckRange(3000, 3500, 2500)
	if res.OK {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Reason, "main route") {
		t.Errorf("reason = %q, want main route reason first", res.Reason)
	}
}

func TestCheckRangeFerryExceedsFraction(t *testing.T) {
	res := CheckRange(3000, 1000, 1900) // ferry > 60% of 3000
	if res.OK {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Reason, "repositioning") {
		t.Errorf("reason = %q, want repositioning reason", res.Reason)
	}
}

func TestCheckRangeCombinedExceedsFraction(t *testing.T) {
	res := CheckRange(3000, 2000, 800) // combined 2800 > 85% of 3000
	if res.OK {
		t.Fatal("expected invalid")
	}
	if !strings.Contains(res.Reason, "combined") {
		t.Errorf("reason = %q, want combined distance reason", res.Reason)
	}
}
