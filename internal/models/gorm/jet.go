package gorm

import (
	"time"

	"charterhub/skybroker/internal/pricing"
)

// Jet statuses
const (
	JetStatusAvailable   = "available"
	JetStatusInFlight    = "in_flight"
	JetStatusBooked      = "booked"
	JetStatusMaintenance = "maintenance"
)

// Jet is an aircraft in a charter company's fleet. Class is derived from
// Type once at ingestion; position and rate fields are nullable. A jet
// without a known position cannot be ferry-planned and a jet without a
// configured rate prices at the per-class fallback.
type Jet struct {
	ID               string    `gorm:"column:id;primaryKey;type:uuid"`
	CompanyID        string    `gorm:"column:company_id;type:uuid;not null;index"`
	Name             string    `gorm:"column:name;not null"`
	Type             string    `gorm:"column:type;not null"`
	Class            string    `gorm:"column:class;index"`
	Seats            int       `gorm:"column:seats;not null"`
	RangeKm          float64   `gorm:"column:range_km;not null"`
	Status           string    `gorm:"column:status;default:available;index"`
	CurrentIATA      string    `gorm:"column:current_iata;type:varchar(3)"`
	CurrentLat       *float64  `gorm:"column:current_lat;type:numeric(10,6)"`
	CurrentLng       *float64  `gorm:"column:current_lng;type:numeric(10,6)"`
	LeadTimeHours    float64   `gorm:"column:lead_time_hours;default:4"`
	PricePerHour     *float64  `gorm:"column:price_per_hour"`
	MinBookingPrice  float64   `gorm:"column:min_booking_price;default:5000"`
	HomeBaseIATA     string    `gorm:"column:home_base_iata;type:varchar(3)"`
	AllowEmptyLegs   bool      `gorm:"column:allow_empty_legs;default:true"`
	EmptyLegDiscount float64   `gorm:"column:empty_leg_discount;default:50"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Jet) TableName() string {
	return "jets"
}

// EffectiveLeadTimeHours falls back to the 4h default for unset values.
func (j *Jet) EffectiveLeadTimeHours() float64 {
	if j.LeadTimeHours <= 0 {
		return 4
	}
	return j.LeadTimeHours
}

// EffectiveMinBookingPrice falls back to the default floor for unset
// values.
func (j *Jet) EffectiveMinBookingPrice() float64 {
	if j.MinBookingPrice <= 0 {
		return pricing.DefaultMinBookingPrice
	}
	return j.MinBookingPrice
}

// HasPosition reports whether the jet has a known current position.
func (j *Jet) HasPosition() bool {
	return j.CurrentLat != nil && j.CurrentLng != nil
}

// JetClass resolves the stored class, re-classifying from the type string
// if the column is empty (older rows).
func (j *Jet) JetClass() pricing.JetClass {
	if j.Class != "" {
		for c := pricing.ClassVeryLight; c <= pricing.ClassBizliner; c++ {
			if c.String() == j.Class {
				return c
			}
		}
	}
	return pricing.ClassifyType(j.Type)
}

// PricingView converts the jet into the pricing engine's input shape.
func (j *Jet) PricingView() pricing.Jet {
	return pricing.Jet{
		Class:           j.JetClass(),
		HourlyRate:      j.PricePerHour,
		MinBookingPrice: j.MinBookingPrice,
		RangeKm:         j.RangeKm,
		Seats:           j.Seats,
	}
}
