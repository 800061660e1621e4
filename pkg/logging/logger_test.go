package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		level    string
		jsonMode bool
	}{
		{"", "", false},
		{"debug", "debug", false},
		{"json", "info", true},
		{"json:", "info", true},
		{"json:trace", "trace", true},
	}
	for _, tt := range tests {
		level, jsonMode := ParseLevel(tt.in)
		if level != tt.level || jsonMode != tt.jsonMode {
			t.Errorf("ParseLevel(%q) = (%q, %v), want (%q, %v)", tt.in, level, jsonMode, tt.level, tt.jsonMode)
		}
	}
}

func TestResolveLevel(t *testing.T) {
	t.Setenv("MIA_TEST_TOOL_LOG_LEVEL", "")
	t.Setenv("MIA_TEST_LOG_LEVEL", "warn")

	if level, source := ResolveLevel("debug", "MIA_TEST_TOOL_LOG_LEVEL", "MIA_TEST_LOG_LEVEL"); level != "debug" || source != "CLI --log-level" {
		t.Errorf("CLI level not preferred: got (%q, %q)", level, source)
	}
	if level, source := ResolveLevel("", "MIA_TEST_TOOL_LOG_LEVEL", "MIA_TEST_LOG_LEVEL"); level != "warn" || source != "MIA_TEST_LOG_LEVEL" {
		t.Errorf("env fallback: got (%q, %q)", level, source)
	}

	t.Setenv("MIA_TEST_TOOL_LOG_LEVEL", "error")
	if level, _ := ResolveLevel("", "MIA_TEST_TOOL_LOG_LEVEL", "MIA_TEST_LOG_LEVEL"); level != "error" {
		t.Errorf("tool-specific env not preferred: got %q", level)
	}

	if level, source := ResolveLevel(""); level != "info" || source != "default" {
		t.Errorf("default: got (%q, %q)", level, source)
	}
}

func TestNewLoggerPrefixesLines(t *testing.T) {
	t.Setenv("MIA_JSON_LOG", "")

	var buf bytes.Buffer
	logger := NewLogger(Options{Name: "test", Level: "info", Output: &buf})
	logger.Info("copying skeleton", "dst", "out/APP")
	logger.Debug("hidden")

	out := buf.String()
	if !strings.HasPrefix(out, Prefix) {
		t.Errorf("missing prefix in %q", out)
	}
	if !strings.Contains(out, "copying skeleton") || !strings.Contains(out, "dst=out/APP") {
		t.Errorf("unexpected log line %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Options{Name: "test", Level: "json:info", Output: &buf})
	logger.Info("creating", "path", "favicon.ico")

	out := buf.String()
	if strings.HasPrefix(out, Prefix) {
		t.Errorf("JSON output must not be prefixed: %q", out)
	}
	if !strings.Contains(out, `"path":"favicon.ico"`) {
		t.Errorf("expected JSON field in %q", out)
	}
}
