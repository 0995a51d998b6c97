package pgsql

import (
	"database/sql"
)

// nullableString maps the empty string to SQL NULL for optional foreign keys.
func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
