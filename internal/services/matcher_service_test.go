package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/entities"
)

// stubFleet serves a fixed fleet snapshot.
type stubFleet struct {
	jets []entities.FleetJet
}

func (s *stubFleet) ListAvailableWithCompany(ctx context.Context) ([]entities.FleetJet, error) {
	return s.jets, nil
}

func lightFleetJet(id string) entities.FleetJet {
	return entities.FleetJet{
		ID:               id,
		CompanyID:        "company-1",
		CompanyName:      "NorthStar Aviation",
		Name:             "Citation " + id,
		Type:             "Citation CJ3",
		Class:            "light",
		Seats:            7,
		RangeKm:          3700,
		Status:           "available",
		LeadTimeHours:    4,
		EmptyLegDiscount: 50,
		AllowEmptyLegs:   true,
	}
}

func newTestMatcher(t *testing.T, fleet FleetSource, now time.Time) *MatcherService {
	t.Helper()

	conn := newTestDB(t)
	airports := newTestAirportService(t, conn)
	svc := NewMatcherService(airports, fleet)
	svc.nowFn = func() time.Time { return now }
	return svc
}

func TestMatchPicksCheapestJet(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	light := lightFleetJet("jet-light")
	heavy := lightFleetJet("jet-heavy")
	heavy.Type = "Gulfstream G650"
	heavy.Class = "heavy"
	heavy.RangeKm = 12000
	heavy.Seats = 14

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{heavy, light}}, now)

	result, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "HAJ",
		Passengers: 4,
		DateTime:   utc(2026, time.October, 15, 10).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}

	if result.JetID != "jet-light" {
		t.Errorf("expected the light jet to win on price, got %s", result.JetID)
	}
	if result.TotalPrice <= 0 {
		t.Errorf("expected positive price, got %.2f", result.TotalPrice)
	}
}

func TestMatchFiltersByCapacity(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	small := lightFleetJet("jet-small")
	small.Seats = 4

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{small}}, now)

	_, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "HAJ",
		Passengers: 6,
		DateTime:   utc(2026, time.October, 15, 10).Format(time.RFC3339),
	})
	if err == nil {
		t.Fatal("expected no-match error for undersized fleet")
	}
	if !strings.Contains(err.Error(), "no jet available") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMatchRejectsShortLeadTime(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{lightFleetJet("jet-1")}}, now)

	// Departure two hours out, against a four hour lead time.
	_, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "HAJ",
		Passengers: 2,
		DateTime:   utc(2026, time.October, 14, 10).Format(time.RFC3339),
	})
	if err == nil {
		t.Fatal("expected no-match error inside the lead-time window")
	}
	if !strings.Contains(err.Error(), "later departure time") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMatchFiltersByRange(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	short := lightFleetJet("jet-short")
	short.RangeKm = 2000

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{short}}, now)

	// LHR-JFK is far beyond a 2000 km jet.
	_, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "LHR",
		ToIATA:     "JFK",
		Passengers: 2,
		DateTime:   utc(2026, time.October, 20, 10).Format(time.RFC3339),
	})
	if err == nil {
		t.Fatal("expected no-match error for out-of-range fleet")
	}
}

func TestMatchAttachesEmptyLegOpportunity(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	positioned := lightFleetJet("jet-positioned")
	positioned.CurrentIATA = "HAJ"
	positioned.CurrentLat = floatPtr(52.4611)
	positioned.CurrentLng = floatPtr(9.6850)

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{positioned}}, now)

	result, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "LHR",
		Passengers: 2,
		DateTime:   utc(2026, time.October, 15, 10).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}

	if result.FerryDistanceKm <= 0 {
		t.Fatal("expected a ferry distance for a positioned jet")
	}
	if result.EmptyLeg == nil {
		t.Fatal("expected an empty-leg opportunity")
	}
	if result.EmptyLeg.FromIATA != "HAJ" || result.EmptyLeg.ToIATA != "BRE" {
		t.Errorf("opportunity runs %s-%s, want HAJ-BRE", result.EmptyLeg.FromIATA, result.EmptyLeg.ToIATA)
	}
	if result.EmptyLeg.DiscountedPrice >= result.EmptyLeg.NormalPrice {
		t.Errorf("discounted price %.2f not below normal %.2f",
			result.EmptyLeg.DiscountedPrice, result.EmptyLeg.NormalPrice)
	}
}

func TestMatchSkipsOpportunityWhenDisallowed(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	positioned := lightFleetJet("jet-positioned")
	positioned.CurrentIATA = "HAJ"
	positioned.CurrentLat = floatPtr(52.4611)
	positioned.CurrentLng = floatPtr(9.6850)
	positioned.AllowEmptyLegs = false

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{positioned}}, now)

	result, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "LHR",
		Passengers: 2,
		DateTime:   utc(2026, time.October, 15, 10).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if result.EmptyLeg != nil {
		t.Error("expected no opportunity when the jet disallows empty legs")
	}
}

func TestMatchExcludesUnpriceableJet(t *testing.T) {
	now := utc(2026, time.October, 14, 8)

	broken := lightFleetJet("jet-broken")
	broken.PricePerHour = floatPtr(-100)
	good := lightFleetJet("jet-good")

	svc := newTestMatcher(t, &stubFleet{jets: []entities.FleetJet{broken, good}}, now)

	result, err := svc.Match(context.Background(), dtos.MatchRequest{
		FromIATA:   "BRE",
		ToIATA:     "HAJ",
		Passengers: 2,
		DateTime:   utc(2026, time.October, 15, 10).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("Match returned error: %v", err)
	}
	if result.JetID != "jet-good" {
		t.Errorf("expected the priceable jet, got %s", result.JetID)
	}
}
