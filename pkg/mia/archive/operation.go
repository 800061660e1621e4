// Package archive packs a materialized project directory into a single
// tar file, optionally compressed.
package archive

import (
	"fmt"
	"io"
)

// Operation identifiers. A format is a chain of operations applied in
// order, bundle first.
const (
	OpNone = 0x00

	// Bundle operations (0x01-0x0F)
	OpTar = 0x01

	// Compression operations (0x10-0x2F)
	OpGzip  = 0x10
	OpBzip2 = 0x13
)

// Compressor is a stream compression stage of a format.
type Compressor interface {
	// ID returns the operation identifier (e.g., OpGzip)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Wrap returns a writer compressing into w. Closing it flushes the
	// stream but does not close w.
	Wrap(w io.Writer) (io.WriteCloser, error)

	// Unwrap returns a reader decompressing r.
	Unwrap(r io.Reader) (io.ReadCloser, error)
}

type baseCompressor struct {
	id   uint8
	name string
}

func (c baseCompressor) ID() uint8 {
	return c.id
}

func (c baseCompressor) Name() string {
	return c.name
}

var registry = make(map[uint8]Compressor)

func register(c Compressor) {
	registry[c.ID()] = c
}

// compressor retrieves a registered compressor by ID.
func compressor(id uint8) (Compressor, error) {
	c, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown compression operation: 0x%02x", id)
	}
	return c, nil
}

// OpName returns the name of an operation by ID.
func OpName(id uint8) string {
	switch id {
	case OpNone:
		return "NONE"
	case OpTar:
		return "TAR"
	case OpGzip:
		return "GZIP"
	case OpBzip2:
		return "BZIP2"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
