package entities

import "time"

// ApiKey is a service caller credential checked by the auth middleware.
type ApiKey struct {
	ID        string    `db:"id"`
	ApiKey    string    `db:"api_key"`
	Label     string    `db:"label"`
	CompanyID string    `db:"company_id"`
	Status    bool      `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
