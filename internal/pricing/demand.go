package pricing

import "time"

// Demand reason tags. Surfaced to operators and logs for transparency,
// never shown to end customers.
const (
	ReasonWeekendDeparture = "weekend_departure"
	ReasonLastMinute       = "last_minute"
	ReasonShortNotice      = "short_notice"
	ReasonSummerSeason     = "summer_season"
	ReasonPartySeason      = "party_destination_season"
	ReasonSkiSeason        = "ski_season"
	ReasonHolidaySeason    = "christmas_new_year"
	ReasonEasterSeason     = "easter_window"
	ReasonPremiumTier1     = "premium_airport"
	ReasonPremiumTier2     = "premium_airport_tier2"
	ReasonLongHaul         = "long_haul"
)

// DemandInput carries the calendar and route signals for the demand
// multiplier.
type DemandInput struct {
	DepartureTime  time.Time
	Now            time.Time
	FromIATA       string
	ToIATA         string
	MainDistanceKm float64
	EmptyLeg       bool
}

// DemandFactor starts at 1.0 and accumulates additive bonuses with tagged
// reasons. Timing bonuses (weekend, short notice) are skipped for empty
// legs since a discounted repositioning flight should not be surge priced
// back up. Reason order follows evaluation order; it matters for display
// only.
func DemandFactor(in DemandInput) (float64, []string) {
	factor := 1.0
	var reasons []string

	add := func(bonus float64, reason string) {
		factor += bonus
		reasons = append(reasons, reason)
	}

	dep := in.DepartureTime.UTC()

	if !in.EmptyLeg {
		switch dep.Weekday() {
		case time.Friday, time.Saturday, time.Sunday:
			add(0.10, ReasonWeekendDeparture)
		}

		hoursUntil := dep.Sub(in.Now).Hours()
		if hoursUntil < 24 {
			add(0.12, ReasonLastMinute)
		} else if hoursUntil < 48 {
			add(0.06, ReasonShortNotice)
		}
	}

	month := dep.Month()
	day := dep.Day()

	if month >= time.June && month <= time.August {
		add(0.05, ReasonSummerSeason)
	}

	if month >= time.May && month <= time.September &&
		(IsPartyDestination(in.FromIATA) || IsPartyDestination(in.ToIATA)) {
		add(0.15, ReasonPartySeason)
	}

	if (month == time.December || month == time.January || month == time.February) &&
		(IsSkiDestination(in.FromIATA) || IsSkiDestination(in.ToIATA)) {
		add(0.12, ReasonSkiSeason)
	}

	if (month == time.December && day >= 15) || (month == time.January && day <= 5) {
		add(0.12, ReasonHolidaySeason)
	}

	// Fixed-window Easter heuristic, not a movable-feast computation.
	if (month == time.March && day >= 25) || (month == time.April && day <= 20) {
		add(0.08, ReasonEasterSeason)
	}

	if IsTier1Airport(in.FromIATA) || IsTier1Airport(in.ToIATA) {
		add(0.15, ReasonPremiumTier1)
	} else if IsTier2Airport(in.FromIATA) || IsTier2Airport(in.ToIATA) {
		add(0.08, ReasonPremiumTier2)
	}

	if in.MainDistanceKm > 6000 {
		add(0.10, ReasonLongHaul)
	}

	return factor, reasons
}
