package dtos

// QuoteRequest asks for a direct price quote on one specific jet.
type QuoteRequest struct {
	JetID      string `json:"jetId"`
	FromIATA   string `json:"fromIATA"`
	ToIATA     string `json:"toIATA"`
	Passengers int    `json:"passengers"`
	DateTime   string `json:"dateTime"`
	Roundtrip  bool   `json:"roundtrip"`
}

// SimulateRequest prices a hypothetical flight with explicit ferry
// figures, used by operators to test pricing configuration.
type SimulateRequest struct {
	JetID           string  `json:"jetId"`
	FromIATA        string  `json:"fromIATA"`
	ToIATA          string  `json:"toIATA"`
	Passengers      int     `json:"passengers"`
	DateTime        string  `json:"dateTime"`
	Roundtrip       bool    `json:"roundtrip"`
	FerryDistanceKm float64 `json:"ferryDistanceKm"`
	EmptyLeg        bool    `json:"emptyLeg"`
}

// MatchRequest asks the matcher for the cheapest feasible jet on a route.
type MatchRequest struct {
	FromIATA   string `json:"fromIATA"`
	ToIATA     string `json:"toIATA"`
	Passengers int    `json:"passengers"`
	DateTime   string `json:"dateTime"`
}

// BookingRequest creates a customer booking against one jet.
type BookingRequest struct {
	JetID         string `json:"jetId"`
	CustomerEmail string `json:"customerEmail"`
	FromIATA      string `json:"fromIATA"`
	ToIATA        string `json:"toIATA"`
	Passengers    int    `json:"passengers"`
	DateTime      string `json:"dateTime"`
}

// EmptyLegBookingRequest buys a published empty-leg offer.
type EmptyLegBookingRequest struct {
	CustomerEmail string `json:"customerEmail"`
	Passengers    int    `json:"passengers"`
}

// ManualDealRequest is the operator-entered empty leg ("hot deal") form.
type ManualDealRequest struct {
	JetID                string  `json:"jetId"`
	FromIATA             string  `json:"fromIATA"`
	ToIATA               string  `json:"toIATA"`
	Discount             float64 `json:"discount"`
	DepartureTime        string  `json:"departureTime"`
	AvailableHoursBefore float64 `json:"availableHoursBefore"`
	Reason               string  `json:"reason"`
}

// JetRequest creates or updates a fleet aircraft.
type JetRequest struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Seats            int      `json:"seats"`
	RangeKm          float64  `json:"rangeKm"`
	HomeBaseIATA     string   `json:"homeBaseIATA"`
	PricePerHour     *float64 `json:"pricePerHour"`
	MinBookingPrice  float64  `json:"minBookingPrice"`
	LeadTimeHours    float64  `json:"leadTimeHours"`
	AllowEmptyLegs   bool     `json:"allowEmptyLegs"`
	EmptyLegDiscount float64  `json:"emptyLegDiscount"`
}

// PositionUpdateRequest carries a live-feed position sample for one jet.
type PositionUpdateRequest struct {
	JetID          string  `json:"jetId"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
	GroundSpeedKts float64 `json:"groundSpeedKts"`
	AltitudeFt     float64 `json:"altitudeFt"`
}
