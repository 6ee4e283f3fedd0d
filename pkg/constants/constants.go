// Package constants provides shared constants for the debt-capacity application.
package constants

// Statutory and engine constants
const (
	// StatutoryDebtRatio is the share of prior-year audited revenue a
	// municipality may carry as debt.
	StatutoryDebtRatio = 0.75

	// BindingTolerance is the relative tolerance used when deciding whether
	// the statutory ceiling is the binding one.
	BindingTolerance = 1e-6

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// BaselineScenarioName names the scenario built from the common block
	// when a configuration defines no scenarios.
	BaselineScenarioName = "baseline"
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
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides for the server.
	EnvPrefix = "DEBT_CAPACITY"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// CacheBackendNone disables response caching.
	CacheBackendNone = "none"

	// CacheBackendMemory caches responses in process memory.
	CacheBackendMemory = "memory"

	// CacheBackendRedis caches responses in Redis.
	CacheBackendRedis = "redis"

	// DefaultCacheTTL is the default lifetime of a cached response.
	DefaultCacheTTL = "15m"
)
