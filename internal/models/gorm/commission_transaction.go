package gorm

import "time"

// CommissionTransaction records the marketplace commission earned on one
// accepted booking: charter price times the company's agreed rate.
type CommissionTransaction struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	BookingID string    `gorm:"column:booking_id;type:uuid;not null;uniqueIndex"`
	CompanyID string    `gorm:"column:company_id;type:uuid;not null;index"`
	Rate      float64   `gorm:"column:rate;not null"`
	Amount    float64   `gorm:"column:amount;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (CommissionTransaction) TableName() string {
	return "commission_transactions"
}
