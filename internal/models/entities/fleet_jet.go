package entities

// FleetJet is one row of the available-fleet listing, a jet joined with
// its owning company. Scanned directly from the hand-written sqlx query.
type FleetJet struct {
	ID               string   `db:"id"`
	CompanyID        string   `db:"company_id"`
	CompanyName      string   `db:"company_name"`
	Name             string   `db:"name"`
	Type             string   `db:"type"`
	Class            string   `db:"class"`
	Seats            int      `db:"seats"`
	RangeKm          float64  `db:"range_km"`
	Status           string   `db:"status"`
	CurrentIATA      string   `db:"current_iata"`
	CurrentLat       *float64 `db:"current_lat"`
	CurrentLng       *float64 `db:"current_lng"`
	LeadTimeHours    float64  `db:"lead_time_hours"`
	PricePerHour     *float64 `db:"price_per_hour"`
	MinBookingPrice  float64  `db:"min_booking_price"`
	HomeBaseIATA     string   `db:"home_base_iata"`
	AllowEmptyLegs   bool     `db:"allow_empty_legs"`
	EmptyLegDiscount float64  `db:"empty_leg_discount"`
}
