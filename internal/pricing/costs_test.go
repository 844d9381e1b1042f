package pricing

import "testing"

func TestPassengerFeeBoundary(t *testing.T) {
	for n := 1; n <= 4; n++ {
		if fee := PassengerFee(n); fee != 0 {
			t.Errorf("PassengerFee(%d) = %v, want 0", n, fee)
		}
	}
	if fee := PassengerFee(5); fee != 150 {
		t.Errorf("PassengerFee(5) = %v, want 150", fee)
	}
	if fee := PassengerFee(9); fee != 750 {
		t.Errorf("PassengerFee(9) = %v, want 750", fee)
	}
}

func TestFuelSurchargeAllowance(t *testing.T) {
	if s := FuelSurcharge(2000, ClassLight); s != 0 {
		t.Errorf("surcharge at allowance boundary = %v, want 0", s)
	}
	if s := FuelSurcharge(3000, ClassLight); s != 600 {
		t.Errorf("surcharge 3000 km light = %v, want 600", s)
	}
	if s := FuelSurcharge(3000, ClassSuperMidsize); s != 800 {
		t.Errorf("surcharge 3000 km super midsize = %v, want 800", s)
	}
	if s := FuelSurcharge(3000, ClassUltraLongRange); s != 1000 {
		t.Errorf("surcharge 3000 km ULR = %v, want 1000", s)
	}
}

func TestLandingFeesTierSums(t *testing.T) {
	// Two tier-1 hubs pay the full fee twice, no dedup or cap.
	if fees := LandingFees("LHR", "JFK", false); fees != 3000 {
		t.Errorf("LHR-JFK fees = %v, want 3000", fees)
	}
	if fees := LandingFees("ZRH", "BRE", false); fees != 1150 {
		t.Errorf("ZRH-BRE fees = %v, want 1150", fees)
	}
	if fees := LandingFees("BRE", "HAJ", true); fees != 1400 {
		t.Errorf("roundtrip standard fees = %v, want 1400", fees)
	}
}

func TestCrewCostAugmentedCrew(t *testing.T) {
	// 3.2 block hours bills 4 started hours.
	if c := CrewCost(3.2, ClassLight); c != 4*2*200 {
		t.Errorf("light crew cost = %v, want 1600", c)
	}
	if c := CrewCost(3.2, ClassHeavy); c != 4*3*200 {
		t.Errorf("heavy crew cost = %v, want 2400", c)
	}
}
