package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB is the raw sqlx handle used by the hand-written hot paths (fleet
// listing, api keys) and the health-check ping.
var DB *sqlx.DB

// InitPostgres connects with a short retry loop so the service survives
// the database coming up a moment after it does.
func InitPostgres() error {
	dsn := PostgresDSN()

	var err error
	for attempt := 0; attempt < 10; attempt++ {
		DB, err = sqlx.Connect("postgres", dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("failed to connect to postgres: %w", err)
}

// PostgresDSN assembles the connection string from the PG_* environment
// variables. Shared by the sqlx and GORM paths.
func PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("PG_USER"),
		os.Getenv("PG_PASSWORD"),
		os.Getenv("PG_HOST"),
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DB"),
	)
}
