package services

import (
	"context"
	"math"
	"testing"
	"time"

	gormlib "gorm.io/gorm"

	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/constants"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/models/dtos"
	"charterhub/skybroker/internal/models/gorm"
)

// capturingPublisher records published booking events instead of hitting
// Redis.
type capturingPublisher struct {
	events []*common.BookingAcceptedEvent
}

func (p *capturingPublisher) PublishBookingAccepted(ctx context.Context, streamName string, ev *common.BookingAcceptedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

type bookingFixture struct {
	svc        *BookingService
	conn       *gormlib.DB
	bookings   *repositories.BookingRepository
	jets       *repositories.JetRepository
	legs       *repositories.EmptyLegRepository
	agreements *repositories.AgreementRepository
	publisher  *capturingPublisher
	now        time.Time
}

func newBookingFixture(t *testing.T, publish bool) *bookingFixture {
	t.Helper()

	conn := newTestDB(t)
	airports := newTestAirportService(t, conn)

	f := &bookingFixture{
		conn:       conn,
		bookings:   repositories.NewBookingRepository(conn),
		jets:       repositories.NewJetRepository(conn),
		agreements: repositories.NewAgreementRepository(conn),
		now:        utc(2026, time.October, 4, 8),
	}

	f.legs = repositories.NewEmptyLegRepository(conn)
	emptyLegSvc := NewEmptyLegService(f.bookings, f.jets, airports, f.legs)
	emptyLegSvc.nowFn = func() time.Time { return f.now }

	var publisher BookingEventPublisher
	if publish {
		f.publisher = &capturingPublisher{}
		publisher = f.publisher
	}

	f.svc = NewBookingService(f.bookings, f.jets, airports, f.agreements, publisher, emptyLegSvc)
	f.svc.nowFn = func() time.Time { return f.now }

	err := f.jets.Create(context.Background(), &gorm.Jet{
		ID:               "jet-1",
		CompanyID:        "company-1",
		Name:             "Citation One",
		Type:             "Citation CJ3",
		Seats:            7,
		RangeKm:          3700,
		Status:           gorm.JetStatusAvailable,
		CurrentIATA:      "HAJ",
		CurrentLat:       floatPtr(52.4611),
		CurrentLng:       floatPtr(9.6850),
		AllowEmptyLegs:   true,
		EmptyLegDiscount: 50,
	})
	if err != nil {
		t.Fatalf("failed to seed jet: %v", err)
	}
	return f
}

func validBookingRequest(departure time.Time) dtos.BookingRequest {
	return dtos.BookingRequest{
		JetID:         "jet-1",
		CustomerEmail: "traveller@example.com",
		FromIATA:      "BRE",
		ToIATA:        "HAJ",
		Passengers:    3,
		DateTime:      departure.Format(time.RFC3339),
	}
}

func TestCreateBookingPricesAndStoresPending(t *testing.T) {
	f := newBookingFixture(t, false)

	booking, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if booking.Status != gorm.BookingStatusPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}
	if booking.TotalPrice <= 0 {
		t.Errorf("total price = %.2f, want > 0", booking.TotalPrice)
	}

	stored, err := f.bookings.GetByID(context.Background(), booking.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored booking missing: %v", err)
	}
	if stored.TotalPrice != booking.TotalPrice {
		t.Errorf("stored price %.2f != returned %.2f", stored.TotalPrice, booking.TotalPrice)
	}
}

func TestCreateBookingRejectsShortLeadTime(t *testing.T) {
	f := newBookingFixture(t, false)

	// One hour of notice against a four hour default lead time.
	_, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(time.Hour)))
	if err == nil {
		t.Fatal("expected lead-time error")
	}
}

func TestCreateBookingRejectsOverCapacity(t *testing.T) {
	f := newBookingFixture(t, false)

	req := validBookingRequest(f.now.Add(72 * time.Hour))
	req.Passengers = 9
	if _, err := f.svc.Create(context.Background(), req); err == nil {
		t.Fatal("expected capacity error")
	}
}

func TestAcceptBookingPublishesEvent(t *testing.T) {
	f := newBookingFixture(t, true)

	booking, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	accepted, err := f.svc.Accept(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}
	if accepted.Status != gorm.BookingStatusAccepted {
		t.Errorf("status = %q, want accepted", accepted.Status)
	}

	if len(f.publisher.events) != 1 {
		t.Fatalf("published %d events, want 1", len(f.publisher.events))
	}
	ev := f.publisher.events[0]
	if ev.BookingID != booking.ID || ev.JetID != "jet-1" {
		t.Errorf("event = %+v", ev)
	}

	// The jet leaves the available pool on accept.
	jet, err := f.jets.GetByID(context.Background(), "jet-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if jet.Status != gorm.JetStatusBooked {
		t.Errorf("jet status = %q, want booked", jet.Status)
	}
}

func TestAcceptBookingRecordsCommission(t *testing.T) {
	f := newBookingFixture(t, true)

	booking, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := f.svc.Accept(context.Background(), booking.ID); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}

	var tx gorm.CommissionTransaction
	if err := f.conn.Where("booking_id = ?", booking.ID).First(&tx).Error; err != nil {
		t.Fatalf("commission transaction missing: %v", err)
	}

	// No agreement on file means bronze terms.
	wantRate := gorm.CommissionRateForTier(gorm.AgreementTierBronze)
	if tx.Rate != wantRate {
		t.Errorf("rate = %.2f, want %.2f", tx.Rate, wantRate)
	}
	if want := math.Round(booking.TotalPrice * wantRate); tx.Amount != want {
		t.Errorf("amount = %.2f, want %.2f", tx.Amount, want)
	}
}

func TestAcceptBookingSynchronousEmptyLeg(t *testing.T) {
	f := newBookingFixture(t, false)

	booking, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := f.svc.Accept(context.Background(), booking.ID); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}

	// Without a queue the empty leg is generated inline.
	var legs []gorm.EmptyLeg
	if err := f.conn.Find(&legs).Error; err != nil {
		t.Fatalf("failed to list legs: %v", err)
	}
	if len(legs) != 1 {
		t.Fatalf("expected 1 empty leg, got %d", len(legs))
	}
	if legs[0].FromIATA != "HAJ" || legs[0].ToIATA != "BRE" {
		t.Errorf("leg runs %s-%s, want HAJ-BRE", legs[0].FromIATA, legs[0].ToIATA)
	}
}

func TestAcceptRejectsNonPending(t *testing.T) {
	f := newBookingFixture(t, false)

	booking, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := f.svc.Accept(context.Background(), booking.ID); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}

	if _, err := f.svc.Accept(context.Background(), booking.ID); err == nil {
		t.Fatal("expected error accepting an already accepted booking")
	}
	if _, err := f.svc.Reject(context.Background(), booking.ID); err == nil {
		t.Fatal("expected error rejecting an accepted booking")
	}
}

func TestRejectAndCompleteTransitions(t *testing.T) {
	f := newBookingFixture(t, false)

	rejected, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(72*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got, err := f.svc.Reject(context.Background(), rejected.ID)
	if err != nil {
		t.Fatalf("Reject returned error: %v", err)
	}
	if got.Status != gorm.BookingStatusRejected {
		t.Errorf("status = %q, want rejected", got.Status)
	}

	accepted, err := f.svc.Create(context.Background(), validBookingRequest(f.now.Add(96*time.Hour)))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := f.svc.Accept(context.Background(), accepted.ID); err != nil {
		t.Fatalf("Accept returned error: %v", err)
	}
	if err := f.svc.Complete(context.Background(), accepted.ID); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	stored, err := f.bookings.GetByID(context.Background(), accepted.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored booking missing: %v", err)
	}
	if stored.Status != gorm.BookingStatusCompleted {
		t.Errorf("status = %q, want completed", stored.Status)
	}

	// Completing a landing returns the jet to the pool.
	jet, err := f.jets.GetByID(context.Background(), "jet-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if jet.Status != gorm.JetStatusAvailable {
		t.Errorf("jet status = %q, want available", jet.Status)
	}
}

func seedEmptyLeg(t *testing.T, f *bookingFixture, availableUntil time.Time) *gorm.EmptyLeg {
	t.Helper()

	leg := &gorm.EmptyLeg{
		ID:              "leg-1",
		JetID:           "jet-1",
		CompanyID:       "company-1",
		FromIATA:        "HAJ",
		FromLat:         52.4611,
		FromLng:         9.6850,
		ToIATA:          "BRE",
		ToLat:           53.0475,
		ToLng:           8.7867,
		NormalPrice:     9000,
		DiscountedPrice: 4500,
		Discount:        50,
		AvailableUntil:  availableUntil,
		IsActive:        true,
		Reason:          "return leg",
		Source:          gorm.EmptyLegSourceManual,
	}
	if err := f.legs.Create(context.Background(), leg); err != nil {
		t.Fatalf("failed to seed empty leg: %v", err)
	}
	return leg
}

func TestBookEmptyLegSellsOfferAtDiscountedPrice(t *testing.T) {
	f := newBookingFixture(t, false)
	leg := seedEmptyLeg(t, f, f.now.Add(48*time.Hour))

	req := dtos.EmptyLegBookingRequest{CustomerEmail: "traveller@example.com", Passengers: 2}
	booking, err := f.svc.BookEmptyLeg(context.Background(), leg.ID, req)
	if err != nil {
		t.Fatalf("BookEmptyLeg returned error: %v", err)
	}

	if booking.Status != gorm.BookingStatusAccepted {
		t.Errorf("status = %q, want accepted", booking.Status)
	}
	if booking.TotalPrice != leg.DiscountedPrice {
		t.Errorf("total price = %.2f, want %.2f", booking.TotalPrice, leg.DiscountedPrice)
	}
	if booking.FromIATA != "HAJ" || booking.ToIATA != "BRE" {
		t.Errorf("booking runs %s-%s, want HAJ-BRE", booking.FromIATA, booking.ToIATA)
	}

	// The sold offer leaves the marketplace.
	stored, err := f.legs.GetByID(context.Background(), leg.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored leg missing: %v", err)
	}
	if stored.IsActive {
		t.Error("leg still active after sale")
	}
	if stored.Reason != "booked" {
		t.Errorf("leg reason = %q, want booked", stored.Reason)
	}

	jet, err := f.jets.GetByID(context.Background(), "jet-1")
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if jet.Status != gorm.JetStatusBooked {
		t.Errorf("jet status = %q, want booked", jet.Status)
	}

	var tx gorm.CommissionTransaction
	if err := f.conn.Where("booking_id = ?", booking.ID).First(&tx).Error; err != nil {
		t.Fatalf("commission transaction missing: %v", err)
	}
	if want := math.Round(leg.DiscountedPrice * tx.Rate); tx.Amount != want {
		t.Errorf("amount = %.2f, want %.2f", tx.Amount, want)
	}
}

func TestBookEmptyLegRejectsSoldOffer(t *testing.T) {
	f := newBookingFixture(t, false)
	leg := seedEmptyLeg(t, f, f.now.Add(48*time.Hour))

	req := dtos.EmptyLegBookingRequest{CustomerEmail: "traveller@example.com", Passengers: 2}
	if _, err := f.svc.BookEmptyLeg(context.Background(), leg.ID, req); err != nil {
		t.Fatalf("BookEmptyLeg returned error: %v", err)
	}
	if _, err := f.svc.BookEmptyLeg(context.Background(), leg.ID, req); err == nil {
		t.Fatal("expected error booking an already sold leg")
	}
}

func TestBookEmptyLegRejectsExpiredOffer(t *testing.T) {
	f := newBookingFixture(t, false)
	leg := seedEmptyLeg(t, f, f.now.Add(-time.Hour))

	req := dtos.EmptyLegBookingRequest{CustomerEmail: "traveller@example.com", Passengers: 2}
	if _, err := f.svc.BookEmptyLeg(context.Background(), leg.ID, req); err == nil {
		t.Fatal("expected error booking an expired leg")
	}
}

func TestBookEmptyLegUnknownLeg(t *testing.T) {
	f := newBookingFixture(t, false)

	req := dtos.EmptyLegBookingRequest{CustomerEmail: "traveller@example.com", Passengers: 2}
	_, err := f.svc.BookEmptyLeg(context.Background(), "no-such-leg", req)
	if err == nil || err.Error() != constants.ErrEmptyLegNotFound {
		t.Errorf("err = %v, want %q", err, constants.ErrEmptyLegNotFound)
	}
}

func TestBookEmptyLegRejectsOverCapacity(t *testing.T) {
	f := newBookingFixture(t, false)
	leg := seedEmptyLeg(t, f, f.now.Add(48*time.Hour))

	req := dtos.EmptyLegBookingRequest{CustomerEmail: "traveller@example.com", Passengers: 9}
	if _, err := f.svc.BookEmptyLeg(context.Background(), leg.ID, req); err == nil {
		t.Fatal("expected capacity error")
	}
}

func TestCreateBookingUnknownJet(t *testing.T) {
	f := newBookingFixture(t, false)

	req := validBookingRequest(f.now.Add(72 * time.Hour))
	req.JetID = "no-such-jet"
	_, err := f.svc.Create(context.Background(), req)
	if err == nil || err.Error() != constants.ErrJetNotFound {
		t.Errorf("err = %v, want %q", err, constants.ErrJetNotFound)
	}
}
