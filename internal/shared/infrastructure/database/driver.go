package database

import (
	"strconv"
	"strings"
)

// Driver identifies a SQL backend and the dialect its queries are written in.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// DetectDriver infers the driver from a connection string.
// An empty URL selects SQLite so the CLI works without configuration.
func DetectDriver(url string) Driver {
	if url == "" {
		return DriverSQLite
	}

	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}

	if strings.HasPrefix(url, "sqlite://") ||
		strings.HasPrefix(url, "file:") ||
		strings.HasSuffix(url, ".db") ||
		strings.HasSuffix(url, ".sqlite") ||
		strings.HasSuffix(url, ".sqlite3") {
		return DriverSQLite
	}

	return DriverPostgres
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverPostgres, DriverSQLite:
		return true
	default:
		return false
	}
}

// Placeholder returns the bind parameter for the n-th (1-based) argument.
func (d Driver) Placeholder(n int) string {
	if d == DriverPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// BinaryCollation returns the COLLATE clause that orders text byte-wise.
func (d Driver) BinaryCollation() string {
	if d == DriverPostgres {
		return `COLLATE "C"`
	}
	return "COLLATE BINARY"
}

// Args accumulates query arguments and hands out matching placeholders.
type Args struct {
	driver Driver
	values []any
}

// NewArgs creates an empty argument list for driver.
func NewArgs(driver Driver) *Args {
	return &Args{driver: driver}
}

// Add appends v and returns its placeholder.
func (a *Args) Add(v any) string {
	a.values = append(a.values, v)
	return a.driver.Placeholder(len(a.values))
}

// Values returns the accumulated arguments in bind order.
func (a *Args) Values() []any {
	return a.values
}
