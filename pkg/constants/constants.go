// Package constants provides shared constants for the dpa-navigator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for cent rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Affordability policy reference values. These are policy choices rather than
// derived values and can be overridden through configuration.
const (
	// DefaultIncomeMultiplier is the multiple of annual income used to estimate the maximum home price
	DefaultIncomeMultiplier = 4.5

	// DefaultPriceCap is the ceiling applied to the estimated maximum home price
	DefaultPriceCap = 600000.0

	// DefaultAnnualRate is the nominal annual mortgage rate as a fraction
	DefaultAnnualRate = 0.0675

	// DefaultTermMonths is the mortgage term in monthly periods
	DefaultTermMonths = 360

	// DefaultMinDownFraction is the conventional minimum down payment fraction
	DefaultMinDownFraction = 0.035

	// DefaultAnnualTaxRate is the annual property tax estimate as a fraction of price
	DefaultAnnualTaxRate = 0.007

	// DefaultMonthlyInsurance is the fixed monthly homeowners insurance estimate
	DefaultMonthlyInsurance = 150.0
)

// Recommendation defaults
const (
	// DefaultTopPackages is the number of ranked packages returned
	DefaultTopPackages = 4

	// DefaultMaxCombinationSize is the largest program set generated as a package
	DefaultMaxCombinationSize = 2

	// DefaultMaxCombinations bounds the number of generated candidate packages
	DefaultMaxCombinations = 256

	// DefaultLenderShortlist is the number of lenders kept in a "multiple" match summary
	DefaultLenderShortlist = 3
)

// Catalog / profile sentinels
const (
	// AllCounties marks a program or provider available statewide
	AllCounties = "all"

	// FirstTimeBuyerRequirement is the machine-checked requirement marker
	FirstTimeBuyerRequirement = "First-time buyer"

	// VeteranOccupation is the occupation tag satisfied by veteran status rather than occupation
	VeteranOccupation = "veteran"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultProfileFile is the default buyer profile file name
	DefaultProfileFile = "profile.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Cache defaults
const (
	// CacheBackendNone disables recommendation caching
	CacheBackendNone = "none"

	// CacheBackendMemory keeps recommendations in process memory
	CacheBackendMemory = "memory"

	// CacheBackendRedis stores recommendations in Redis
	CacheBackendRedis = "redis"

	// DefaultCacheTTLSeconds is the default recommendation cache lifetime
	DefaultCacheTTLSeconds = 600

	// DefaultCacheKeyPrefix namespaces cache keys
	DefaultCacheKeyPrefix = "dpa-navigator:recommendation:"
)
