package pricing

import "testing"

func TestBlockHoursMinimumApplies(t *testing.T) {
	// 500 km at 700 km/h is 0.71h + 0.4h overhead, below the 1.5h floor
	got := BlockHours(500, 700, 1.5)
	if got != 1.5 {
		t.Errorf("BlockHours(500, 700, 1.5) = %v, want 1.5", got)
	}
}

func TestBlockHoursAboveMinimum(t *testing.T) {
	got := BlockHours(2800, 700, 1.5)
	want := 2800.0/700.0 + 0.4
	if got != want {
		t.Errorf("BlockHours(2800, 700, 1.5) = %v, want %v", got, want)
	}
}

func TestBlockHoursZeroDistance(t *testing.T) {
	// A zero-length leg contributes nothing; no minimum applied.
	if got := BlockHours(0, 700, 1.5); got != 0 {
		t.Errorf("BlockHours(0, ...) = %v, want 0", got)
	}
}

func TestBlockHoursMonotonic(t *testing.T) {
	prev := 0.0
	for d := 0.0; d <= 8000; d += 250 {
		got := BlockHours(d, 860, 2.5)
		if got < prev {
			t.Fatalf("block hours decreased at %v km: %v < %v", d, got, prev)
		}
		prev = got
	}
}

func TestBlockHoursNeverBelowMinimum(t *testing.T) {
	for d := 1.0; d <= 3000; d += 100 {
		if got := BlockHours(d, 780, 2.0); got < 2.0 {
			t.Fatalf("block hours %v below minimum at %v km", got, d)
		}
	}
}
