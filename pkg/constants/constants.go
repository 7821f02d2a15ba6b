// Package constants provides shared constants for the finance-projections application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// CurrencyDecimalPlaces is the number of decimal places monetary results are rounded to
	CurrencyDecimalPlaces int32 = 2

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxProjectionYears is the longest time period a projection accepts
	MaxProjectionYears = 1000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default projection file read by the CLI
	DefaultConfigFile = "projections.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum JSON request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeoutSeconds = 15
)

// Scenario store drivers
const (
	// StoreDriverMemory keeps scenarios in process memory only
	StoreDriverMemory = "memory"

	// StoreDriverSQLite persists scenarios in a SQLite database file
	StoreDriverSQLite = "sqlite"

	// DefaultSQLitePath is the database file used when the sqlite driver has no path
	DefaultSQLitePath = "data/scenarios.db"
)
