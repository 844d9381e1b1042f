package constants

const (
	// ListAvailableFleet is the hot-path fleet listing used by the
	// matcher: every available jet joined with its owning company, in
	// stable id order so tie-breaks stay deterministic for a fixed fleet
	// snapshot.
	ListAvailableFleet = `
	SELECT j.id, j.company_id, c.name AS company_name, j.name, j.type,
	       j.class, j.seats, j.range_km, j.status, j.current_iata,
	       j.current_lat, j.current_lng, j.lead_time_hours,
	       j.price_per_hour, j.min_booking_price, j.home_base_iata,
	       j.allow_empty_legs, j.empty_leg_discount
	FROM jets j
	JOIN companies c ON c.id = j.company_id
	WHERE j.status = 'available' AND c.is_active = TRUE
	ORDER BY j.id
	`

	GetStatusByApiKey = `
	SELECT * FROM api_keys WHERE api_key = $1
	`
)
