package config

// CLI defaults.
const (
	// DefaultLogLevel is the log level used when --log-level is not set.
	DefaultLogLevel = "info"
	// ValueSeparator separates values and operations on the command line.
	ValueSeparator = ","
	// MaxScriptOps limits the number of operations accepted in one script.
	MaxScriptOps = 1 << 16
	// DefaultBenchCount is the default element count for the bench command.
	DefaultBenchCount = 100_000
)
