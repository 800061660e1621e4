package archive

import (
	"errors"
	"testing"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
		wantStr string
	}{
		{"tar", "tar", "tar"},
		{"tar.gz", "tar.gz", "tar|gzip"},
		{"TGZ", "tar.gz", "tar|gzip"},
		{"tar.bz2", "tar.bz2", "tar|bzip2"},
		{" tbz2 ", "tar.bz2", "tar|bzip2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFormat(tt.name)
			if err != nil {
				t.Fatalf("ParseFormat(%q) failed: %v", tt.name, err)
			}
			if got := f.Extension(); got != tt.wantExt {
				t.Errorf("Extension() = %q, want %q", got, tt.wantExt)
			}
			if got := f.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestParseFormatUnknown(t *testing.T) {
	for _, name := range []string{"", "zip", "tar.xz", "gzip"} {
		if _, err := ParseFormat(name); !errors.Is(err, miaerrors.ErrUnknownArchive) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownArchive", name, err)
		}
	}
}

func TestFormatNames(t *testing.T) {
	want := []string{"tar", "tar.bz2", "tar.gz", "tbz2", "tgz"}
	got := FormatNames()
	if len(got) != len(want) {
		t.Fatalf("FormatNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FormatNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOpName(t *testing.T) {
	tests := map[uint8]string{
		OpNone:  "NONE",
		OpTar:   "TAR",
		OpGzip:  "GZIP",
		OpBzip2: "BZIP2",
		0x42:    "UNKNOWN_42",
	}
	for id, want := range tests {
		if got := OpName(id); got != want {
			t.Errorf("OpName(0x%02x) = %q, want %q", id, got, want)
		}
	}
}

func TestCompressorsRejectBadChain(t *testing.T) {
	if _, err := (Format{OpGzip}).compressors(); !errors.Is(err, miaerrors.ErrUnknownArchive) {
		t.Errorf("chain without tar: got %v", err)
	}
	if _, err := (Format{OpTar, 0x16}).compressors(); !errors.Is(err, miaerrors.ErrUnknownArchive) {
		t.Errorf("unregistered compressor: got %v", err)
	}
}
