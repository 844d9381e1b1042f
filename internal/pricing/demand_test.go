package pricing

import (
	"math"
	"testing"
	"time"
)

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestDemandFactorMidweekOffSeason(t *testing.T) {
	factor, reasons := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 14, 10), // Wednesday
		Now:            utc(2026, time.October, 4, 10),
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
	})
	if factor != 1.0 {
		t.Errorf("factor = %v, want 1.0", factor)
	}
	if len(reasons) != 0 {
		t.Errorf("unexpected reasons: %v", reasons)
	}
}

func TestDemandFactorWeekendAndShortNotice(t *testing.T) {
	factor, reasons := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 16, 10), // Friday
		Now:            utc(2026, time.October, 15, 20), // <24h out
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
	})
	want := 1.0 + 0.10 + 0.12
	if math.Abs(factor-want) > 1e-9 {
		t.Errorf("factor = %v, want %v", factor, want)
	}
	if len(reasons) != 2 || reasons[0] != ReasonWeekendDeparture || reasons[1] != ReasonLastMinute {
		t.Errorf("reasons = %v", reasons)
	}
}

func TestDemandFactorShortNoticeWindow(t *testing.T) {
	factor, _ := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 14, 10),
		Now:            utc(2026, time.October, 13, 0), // 34h out
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
	})
	if math.Abs(factor-1.06) > 1e-9 {
		t.Errorf("factor = %v, want 1.06", factor)
	}
}

func TestDemandFactorEmptyLegSkipsTimingBonuses(t *testing.T) {
	factor, reasons := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 16, 10), // Friday, last minute
		Now:            utc(2026, time.October, 15, 20),
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
		EmptyLeg:       true,
	})
	if factor != 1.0 {
		t.Errorf("empty leg factor = %v, want 1.0 (reasons %v)", factor, reasons)
	}
}

func TestDemandFactorTier1AppliedOnce(t *testing.T) {
	factor, reasons := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 14, 10),
		Now:            utc(2026, time.October, 4, 10),
		FromIATA:       "LHR",
		ToIATA:         "JFK",
		MainDistanceKm: 5550,
	})
	want := 1.0 + 0.15
	if math.Abs(factor-want) > 1e-9 {
		t.Errorf("factor = %v, want %v", factor, want)
	}
	count := 0
	for _, r := range reasons {
		if r == ReasonPremiumTier1 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("premium bonus tagged %d times, want 1", count)
	}
}

func TestDemandFactorTier2Fallback(t *testing.T) {
	factor, _ := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 14, 10),
		Now:            utc(2026, time.October, 4, 10),
		FromIATA:       "FRA",
		ToIATA:         "BRE",
		MainDistanceKm: 300,
	})
	if math.Abs(factor-1.08) > 1e-9 {
		t.Errorf("factor = %v, want 1.08", factor)
	}
}

func TestDemandFactorSeasonalStacking(t *testing.T) {
	// Ski season at GVA, which is also a tier-2 field: both bonuses stack.
	factor, _ := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.December, 10, 10), // Thursday, before the holiday window
		Now:            utc(2026, time.November, 20, 10),
		FromIATA:       "BRE",
		ToIATA:         "GVA",
		MainDistanceKm: 700,
	})
	want := 1.0 + 0.12 + 0.08
	if math.Abs(factor-want) > 1e-9 {
		t.Errorf("factor = %v, want %v", factor, want)
	}
}

func TestDemandFactorHolidayAndSummerWindows(t *testing.T) {
	factor, _ := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.December, 28, 10), // Monday inside Dec 15 - Jan 5
		Now:            utc(2026, time.November, 1, 10),
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
	})
	if math.Abs(factor-1.12) > 1e-9 {
		t.Errorf("holiday factor = %v, want 1.12", factor)
	}

	factor, _ = DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.July, 15, 10), // Wednesday
		Now:            utc(2026, time.June, 1, 10),
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 500,
	})
	if math.Abs(factor-1.05) > 1e-9 {
		t.Errorf("summer factor = %v, want 1.05", factor)
	}
}

func TestDemandFactorLongHaul(t *testing.T) {
	factor, _ := DemandFactor(DemandInput{
		DepartureTime:  utc(2026, time.October, 14, 10),
		Now:            utc(2026, time.October, 4, 10),
		FromIATA:       "BRE",
		ToIATA:         "HAJ",
		MainDistanceKm: 6500,
	})
	if math.Abs(factor-1.10) > 1e-9 {
		t.Errorf("factor = %v, want 1.10", factor)
	}
}
