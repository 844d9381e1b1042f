package constants

const (
	ErrAirportNotFound   = "airport not found"
	ErrJetNotFound       = "jet not found"
	ErrBookingNotFound   = "booking not found"
	ErrEmptyLegNotFound  = "empty leg not found"
	ErrInvalidIATA       = "IATA code must be three letters"
	ErrInvalidPassengers = "passenger count must be positive"
	ErrInvalidDateTime   = "dateTime must be a valid ISO-8601 timestamp"
	ErrNoJetAvailable    = "no jet available for this request"
)
