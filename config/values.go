package config

import "os"

// MetricsFile returns the path the CLI dumps Prometheus metrics to on exit.
// Set with the LISTCTL_METRICS_FILE environment variable. Empty disables the dump.
func MetricsFile() string {
	return os.Getenv("LISTCTL_METRICS_FILE")
}

// LogJSON reports whether the LISTCTL_LOG_JSON environment variable is set to "1".
func LogJSON() bool {
	return os.Getenv("LISTCTL_LOG_JSON") == "1"
}
