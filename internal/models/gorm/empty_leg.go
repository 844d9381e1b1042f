package gorm

import "time"

// Empty leg sources
const (
	EmptyLegSourceAuto   = "auto"
	EmptyLegSourceManual = "manual"
)

// EmptyLeg is a discounted repositioning-flight offer. The composite
// unique index is the idempotency guard: one active offer per jet per
// repositioning window, enforced at the storage layer so concurrent
// booking-accept events cannot publish duplicates.
type EmptyLeg struct {
	ID              string    `gorm:"column:id;primaryKey;type:uuid"`
	JetID           string    `gorm:"column:jet_id;type:uuid;not null;uniqueIndex:idx_empty_leg_window"`
	CompanyID       string    `gorm:"column:company_id;type:uuid;not null;index"`
	FromIATA        string    `gorm:"column:from_iata;type:varchar(3);not null;uniqueIndex:idx_empty_leg_window"`
	FromLat         float64   `gorm:"column:from_lat;type:numeric(10,6)"`
	FromLng         float64   `gorm:"column:from_lng;type:numeric(10,6)"`
	ToIATA          string    `gorm:"column:to_iata;type:varchar(3);not null;uniqueIndex:idx_empty_leg_window"`
	ToLat           float64   `gorm:"column:to_lat;type:numeric(10,6)"`
	ToLng           float64   `gorm:"column:to_lng;type:numeric(10,6)"`
	NormalPrice     float64   `gorm:"column:normal_price;not null"`
	DiscountedPrice float64   `gorm:"column:discounted_price;not null"`
	Discount        float64   `gorm:"column:discount;not null"`
	AvailableUntil  time.Time `gorm:"column:available_until;not null;uniqueIndex:idx_empty_leg_window"`
	IsActive        bool      `gorm:"column:is_active;default:true;index"`
	Reason          string    `gorm:"column:reason"`
	Source          string    `gorm:"column:source;default:auto"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (EmptyLeg) TableName() string {
	return "empty_legs"
}
