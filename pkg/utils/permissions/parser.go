// Package permissions parses octal permission strings used in layout files.
package permissions

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Default modes for generated files and directories.
const (
	DefaultFilePerms os.FileMode = 0o644
	DefaultDirPerms  os.FileMode = 0o755
)

// ParseOctalString parses an octal permission string such as "755", "0755"
// or "0o755". An empty string yields def.
func ParseOctalString(s string, def os.FileMode) (os.FileMode, error) {
	if s == "" {
		return def, nil
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0")
	if trimmed == "" {
		trimmed = "0"
	}

	val, err := strconv.ParseUint(trimmed, 8, 32)
	if err != nil {
		return def, fmt.Errorf("invalid permission string %q: %w", s, err)
	}
	if val > 0o777 {
		return def, fmt.Errorf("invalid permission string %q: out of range", s)
	}

	return os.FileMode(val), nil
}

// FormatOctal formats a permission value as an octal string
func FormatOctal(perm os.FileMode) string {
	return fmt.Sprintf("0%o", perm.Perm())
}

// IsTraversable reports whether the owner may enter a directory with perm.
func IsTraversable(perm os.FileMode) bool {
	return perm&0o100 != 0
}
