package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixAirport   CachePrefix = "AIRPORT_"
	CachePrefixFleet     CachePrefix = "FLEET_"
	CachePrefixAgreement CachePrefix = "AGREEMENT_"
)

const (
	// BookingAcceptedStream is the Redis stream carrying booking-accepted
	// events for the empty-leg worker.
	BookingAcceptedStream = "booking:accepted"
	// BookingAcceptedGroup is the consumer group on that stream.
	BookingAcceptedGroup = "empty-leg-workers"

	// BookingAcceptedMaxStreamLen caps the stream so acknowledged history
	// does not grow without bound.
	BookingAcceptedMaxStreamLen = 10000

	// FerryTransitSpeedKmh is the fixed transit-speed assumption used for
	// lead-time feasibility, independent of the per-class cruise table.
	FerryTransitSpeedKmh = 800.0

	// ManualDealSpeedKmh is the lighter average-speed assumption for the
	// operator-facing manual deal form.
	ManualDealSpeedKmh = 700.0

	// EmptyLegMinBlockHours floors the repositioning duration used when
	// pricing an empty leg.
	EmptyLegMinBlockHours = 0.8

	// EmptyLegSafetyBufferHours is subtracted from the bookable window so
	// a deal never stays visible right up to wheels-off.
	EmptyLegSafetyBufferHours = 2.0
)
