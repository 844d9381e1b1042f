package gorm

import "time"

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// Booking is a customer charter request against one jet. Status moves
// pending -> accepted/rejected by the operator and accepted -> completed
// on landing detection.
type Booking struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	JetID         string    `gorm:"column:jet_id;type:uuid;not null;index"`
	CompanyID     string    `gorm:"column:company_id;type:uuid;not null;index"`
	CustomerEmail string    `gorm:"column:customer_email;not null"`
	FromIATA      string    `gorm:"column:from_iata;type:varchar(3);not null"`
	ToIATA        string    `gorm:"column:to_iata;type:varchar(3);not null"`
	DepartureDate time.Time `gorm:"column:departure_date;not null"`
	Passengers    int       `gorm:"column:passengers;not null"`
	Status        string    `gorm:"column:status;default:pending;index"`
	TotalPrice    float64   `gorm:"column:total_price"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Booking) TableName() string {
	return "bookings"
}
