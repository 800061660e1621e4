package archive

import (
	"fmt"
	"sort"
	"strings"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// Format is a chain of operations, bundle first, then compressions.
type Format []uint8

// Named chains for parsing
var namedFormats = map[string]Format{
	"tar":     {OpTar},
	"tar.gz":  {OpTar, OpGzip},
	"tar.bz2": {OpTar, OpBzip2},

	// Alternative names
	"tgz":  {OpTar, OpGzip},
	"tbz2": {OpTar, OpBzip2},
}

// Canonical extensions, keyed by chain
var extensions = map[string]string{
	"01":    "tar",
	"01-10": "tar.gz",
	"01-13": "tar.bz2",
}

// ParseFormat resolves a format name such as "tar.gz" or "tbz2".
func ParseFormat(name string) (Format, error) {
	f, ok := namedFormats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", miaerrors.ErrUnknownArchive, name, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames lists every accepted format name, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(namedFormats))
	for name := range namedFormats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extension returns the canonical file extension, without a leading dot.
func (f Format) Extension() string {
	return extensions[f.chain()]
}

// String renders the chain as pipe-separated operation names.
func (f Format) String() string {
	names := make([]string, len(f))
	for i, op := range f {
		names[i] = strings.ToLower(OpName(op))
	}
	return strings.Join(names, "|")
}

// compressors returns the compression stages after the bundle operation.
func (f Format) compressors() ([]Compressor, error) {
	if len(f) == 0 || f[0] != OpTar {
		return nil, fmt.Errorf("%w: chain %s does not start with tar", miaerrors.ErrUnknownArchive, f)
	}
	var out []Compressor
	for _, op := range f[1:] {
		c, err := compressor(op)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", miaerrors.ErrUnknownArchive, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// chain converts the operations to a string for map lookup
func (f Format) chain() string {
	parts := make([]string, len(f))
	for i, op := range f {
		parts[i] = fmt.Sprintf("%02x", op)
	}
	return strings.Join(parts, "-")
}
