package domain

import "time"

// DefaultIdleTimeout is how long the daemon stays alive without requests.
const DefaultIdleTimeout = 30 * time.Minute

// LogFormat selects the daemon's log rendering.
type LogFormat string

const (
	// LogPretty renders colored human-readable log lines.
	LogPretty LogFormat = "pretty"
	// LogJSON renders one JSON object per log line.
	LogJSON LogFormat = "json"
)

// Config is the resolved service configuration.
type Config struct {
	// Socket is the Unix socket path the daemon listens on.
	Socket string
	// IdleTimeout is the daemon inactivity timeout.
	IdleTimeout time.Duration
	// LogFormat selects pretty or JSON logging.
	LogFormat LogFormat
	// PluginDirs are directories watched for rebuilt artifacts.
	PluginDirs []string
}

// DefaultConfig returns the configuration used when no mexpd.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		Socket:      DefaultSocketPath(),
		IdleTimeout: DefaultIdleTimeout,
		LogFormat:   LogPretty,
	}
}
