package repository

import (
	"database/sql"
	"time"
)

// dateLayout is the date-only storage format for every date column;
// timeLayout is the timestamp format for created_at/updated_at columns.
const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

// parseDate parses a stored ISO date. A malformed value yields the zero
// time rather than an error; date columns are written by this package only.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseNullableDate parses a nullable ISO date column.
func parseNullableDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t := parseDate(s.String)
	return &t
}

// nullableString converts a *string to a SQLite-storable value.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// stringPtr converts a nullable column back to a *string.
func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// boolToInt converts a Go bool to 0/1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a stored 0/1 back to a bool.
func intToBool(i int) bool {
	return i != 0
}

// parseTime parses a stored RFC3339 timestamp, zero time on failure.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
