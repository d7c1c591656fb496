// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Provider Registry - the providers key holds the array of configured panel accounts.
const (
	Providers = "providers"
)

// Output Configuration - these keys govern where and how catalog exports are written.
const (
	OutputDir       = "output.dir"
	OutputDelimiter = "output.delimiter"
)

// Extraction Behavior - these keys control which content types are pulled and how cells are scheduled.
const (
	ExtractTypes      = "extract.types"
	ExtractConcurrent = "extract.concurrent"
)

// Network Parameters - these keys tune the shared HTTP client used for panel requests.
const (
	NetworkTimeoutSeconds = "network.timeout_seconds"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output behavior.
const (
	CliColored = "cli.colored"
)
