// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/notedraft/notedraft/internal/config"
)

// MySQL builds the go-sql-driver DSN from the configuration.
func MySQL(db config.DB) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.Extras,
	)
}

// Postgres builds a key/value pgx DSN from the configuration.
// Extras are appended verbatim, e.g. "sslmode=disable TimeZone=UTC".
func Postgres(db config.DB) string {
	out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		db.Host,
		db.Port,
		db.User,
		db.Password,
		db.Name,
	)

	if extras := strings.TrimSpace(db.Extras); extras != "" {
		out += " " + extras
	}

	return out
}
