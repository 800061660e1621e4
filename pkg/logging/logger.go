package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Prefix is written in front of every non-JSON log line.
const Prefix = "🤖 "

// Options controls logger construction.
type Options struct {
	Name string
	// Level may be "json" or "json:<level>" to switch to JSON output.
	Level  string
	Output io.Writer
}

// NewLogger creates a new hclog logger with standard settings
func NewLogger(opts Options) hclog.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
		if logPath := os.Getenv("MIA_LOG_PATH"); logPath != "" {
			if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				output = file
			}
		}
	}

	level, jsonFormat := ParseLevel(opts.Level)
	if os.Getenv("MIA_JSON_LOG") == "1" {
		jsonFormat = true
	}

	if !jsonFormat {
		output = NewPrefixWriter(Prefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ParseLevel splits an optional "json:" prefix off a level string.
func ParseLevel(level string) (string, bool) {
	if !strings.HasPrefix(level, "json") {
		return level, false
	}
	parts := strings.SplitN(level, ":", 2)
	if len(parts) > 1 && parts[1] != "" {
		return parts[1], true
	}
	return "info", true
}

// ResolveLevel picks the log level from the CLI flag, then the given
// environment variables in order, then "info". The second return value
// names where the level came from.
func ResolveLevel(cliLevel string, envKeys ...string) (string, string) {
	if cliLevel != "" {
		return cliLevel, "CLI --log-level"
	}
	for _, key := range envKeys {
		if envLevel := os.Getenv(key); envLevel != "" {
			return envLevel, key
		}
	}
	return "info", "default"
}
