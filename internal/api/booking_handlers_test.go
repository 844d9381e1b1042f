package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	gormlib "gorm.io/gorm"
	"gorm.io/gorm/logger"

	"charterhub/skybroker/internal/auth"
	"charterhub/skybroker/internal/common"
	"charterhub/skybroker/internal/db"
	"charterhub/skybroker/internal/db/repositories"
	"charterhub/skybroker/internal/metrics"
	"charterhub/skybroker/internal/models/gorm"
	"charterhub/skybroker/internal/services"
)

// Collectors register globally, so the test registry is built once for
// the package.
var testMetrics = metrics.NewMetricsRegistry()

func newTestDeps(t *testing.T) *Dependencies {
	t.Helper()

	conn, err := gormlib.Open(sqlite.Open(":memory:"), &gormlib.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	repos := &Repositories{
		Airports:   repositories.NewAirportRepository(conn),
		Jets:       repositories.NewJetRepository(conn),
		Bookings:   repositories.NewBookingRepository(conn),
		EmptyLegs:  repositories.NewEmptyLegRepository(conn),
		Agreements: repositories.NewAgreementRepository(conn),
	}

	airportSvc := services.NewAirportService(repos.Airports, common.NewCacheService(60, 600))
	seed := []gorm.Airport{
		{IATA: "BRE", City: "Bremen", Country: "Germany", Latitude: 53.0475, Longitude: 8.7867},
		{IATA: "HAJ", City: "Hannover", Country: "Germany", Latitude: 52.4611, Longitude: 9.6850},
	}
	if err := airportSvc.Import(context.Background(), seed); err != nil {
		t.Fatalf("failed to seed airports: %v", err)
	}

	emptyLegSvc := services.NewEmptyLegService(repos.Bookings, repos.Jets, airportSvc, repos.EmptyLegs)
	bookingSvc := services.NewBookingService(repos.Bookings, repos.Jets, airportSvc, repos.Agreements, nil, emptyLegSvc)

	return &Dependencies{
		Repo: repos,
		Services: &Services{
			Airports:  airportSvc,
			EmptyLegs: emptyLegSvc,
			Bookings:  bookingSvc,
		},
		Metrics: testMetrics,
	}
}

func seedPendingBooking(t *testing.T, deps *Dependencies, companyID string) *gorm.Booking {
	t.Helper()

	err := deps.Repo.Jets.Create(context.Background(), &gorm.Jet{
		ID:        "jet-" + companyID,
		CompanyID: companyID,
		Name:      "Citation One",
		Type:      "Citation CJ3",
		Seats:     7,
		RangeKm:   3700,
		Status:    gorm.JetStatusAvailable,
	})
	if err != nil {
		t.Fatalf("failed to seed jet: %v", err)
	}

	booking := &gorm.Booking{
		ID:            "booking-" + companyID,
		JetID:         "jet-" + companyID,
		CompanyID:     companyID,
		CustomerEmail: "traveller@example.com",
		FromIATA:      "BRE",
		ToIATA:        "HAJ",
		DepartureDate: time.Now().UTC().Add(72 * time.Hour),
		Passengers:    3,
		Status:        gorm.BookingStatusPending,
		TotalPrice:    6750,
	}
	if err := deps.Repo.Bookings.Create(context.Background(), booking); err != nil {
		t.Fatalf("failed to seed booking: %v", err)
	}
	return booking
}

func transitionRequest(bookingID, action, companyID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+bookingID+"/"+action, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("booking_id", bookingID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = auth.SetOperatorClaims(ctx, &auth.APIKeyClaims{
		CompanyUUID: companyID,
		RoleValue:   auth.RoleOperator,
	})
	return req.WithContext(ctx)
}

func TestAcceptBookingRejectsForeignCompany(t *testing.T) {
	deps := newTestDeps(t)
	booking := seedPendingBooking(t, deps, "company-1")

	rec := httptest.NewRecorder()
	AcceptBookingHandler(deps)(rec, transitionRequest(booking.ID, "accept", "company-2"))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}

	stored, err := deps.Repo.Bookings.GetByID(context.Background(), booking.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored booking missing: %v", err)
	}
	if stored.Status != gorm.BookingStatusPending {
		t.Errorf("booking status = %q, want pending", stored.Status)
	}
}

func TestRejectBookingRejectsForeignCompany(t *testing.T) {
	deps := newTestDeps(t)
	booking := seedPendingBooking(t, deps, "company-1")

	rec := httptest.NewRecorder()
	RejectBookingHandler(deps)(rec, transitionRequest(booking.ID, "reject", "company-2"))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestAcceptBookingAllowsOwner(t *testing.T) {
	deps := newTestDeps(t)
	booking := seedPendingBooking(t, deps, "company-1")

	rec := httptest.NewRecorder()
	AcceptBookingHandler(deps)(rec, transitionRequest(booking.ID, "accept", "company-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	stored, err := deps.Repo.Bookings.GetByID(context.Background(), booking.ID)
	if err != nil || stored == nil {
		t.Fatalf("stored booking missing: %v", err)
	}
	if stored.Status != gorm.BookingStatusAccepted {
		t.Errorf("booking status = %q, want accepted", stored.Status)
	}
}

func TestTransitionUnknownBookingReturnsNotFound(t *testing.T) {
	deps := newTestDeps(t)

	rec := httptest.NewRecorder()
	AcceptBookingHandler(deps)(rec, transitionRequest("no-such-booking", "accept", "company-1"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
