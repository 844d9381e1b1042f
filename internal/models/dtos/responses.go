package dtos

import (
	"time"

	"charterhub/skybroker/internal/pricing"
)

// APIResponse is the standard JSON envelope for every endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// QuoteResponse is a priced quote for one jet on one route.
type QuoteResponse struct {
	JetID      string            `json:"jet_id"`
	JetName    string            `json:"jet_name"`
	TotalPrice float64           `json:"totalPrice"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
}

// EmptyLegOpportunity describes the discounted ferry-leg offer attached
// to a match result when the selected jet allows empty legs.
type EmptyLegOpportunity struct {
	FromIATA        string  `json:"from_iata"`
	ToIATA          string  `json:"to_iata"`
	DistanceKm      float64 `json:"distance_km"`
	NormalPrice     float64 `json:"normal_price"`
	DiscountedPrice float64 `json:"discounted_price"`
	Discount        float64 `json:"discount"`
}

// MatchResult is the cheapest feasible jet for a match request.
type MatchResult struct {
	JetID              string               `json:"jet_id"`
	JetName            string               `json:"jet_name"`
	JetType            string               `json:"jet_type"`
	CompanyID          string               `json:"company_id"`
	CompanyName        string               `json:"company_name"`
	MainDistanceKm     float64              `json:"main_distance_km"`
	FerryDistanceKm    float64              `json:"ferry_distance_km"`
	TotalLeadTimeHours float64              `json:"total_lead_time_h"`
	TotalPrice         float64              `json:"totalPrice"`
	CandidatesPriced   int                  `json:"candidates_priced"`
	Breakdown          pricing.Breakdown    `json:"breakdown"`
	EmptyLeg           *EmptyLegOpportunity `json:"empty_leg_opportunity,omitempty"`
}

// EmptyLegResult is the explicit outcome of the empty-leg generator. Most
// negative outcomes are expected business conditions, not faults, so they
// are values rather than errors.
type EmptyLegResult struct {
	Created        bool      `json:"created"`
	Reason         string    `json:"reason,omitempty"`
	EmptyLegID     string    `json:"empty_leg_id,omitempty"`
	AvailableUntil time.Time `json:"available_until,omitempty"`
}

// JetPosition is one live-feed position sample for a tracked jet.
type JetPosition struct {
	JetID          string  `json:"jetId"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	GroundSpeedKts float64 `json:"groundSpeedKts"`
	AltitudeFt     float64 `json:"altitudeFt"`
}

// BookingResponse mirrors a booking record for API callers.
type BookingResponse struct {
	ID            string    `json:"id"`
	JetID         string    `json:"jet_id"`
	CompanyID     string    `json:"company_id"`
	CustomerEmail string    `json:"customer_email"`
	FromIATA      string    `json:"from_iata"`
	ToIATA        string    `json:"to_iata"`
	DepartureDate time.Time `json:"departure_date"`
	Passengers    int       `json:"passengers"`
	Status        string    `json:"status"`
	TotalPrice    float64   `json:"total_price"`
}
