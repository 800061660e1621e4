package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// Archiver writes and checks project archives.
type Archiver struct {
	format Format
	perm   os.FileMode
	logger hclog.Logger
}

// New returns an Archiver writing files with perm. A nil logger discards
// output.
func New(format Format, perm os.FileMode, logger hclog.Logger) *Archiver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Archiver{format: format, perm: perm, logger: logger}
}

// PathFor returns where the archive of projectDir is written: next to it,
// named after it, with the format's extension.
func (a *Archiver) PathFor(projectDir string) string {
	clean := filepath.Clean(projectDir)
	return clean + "." + a.format.Extension()
}

// Create packs projectDir into dst. Entries are named after the base name
// of projectDir. An existing dst is an error.
func (a *Archiver) Create(projectDir, dst string) (entries []string, err error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", miaerrors.ErrSourceMissing, projectDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", miaerrors.ErrSourceMissing, projectDir)
	}

	stages, err := a.format.compressors()
	if err != nil {
		return nil, err
	}

	a.logger.Info("📦 Creating archive", "source", projectDir, "path", dst, "format", a.format)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, a.perm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", miaerrors.ErrDestinationExists, dst)
		}
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}

	// closers run innermost first, the file last
	closers := []io.Closer{f}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i].Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to finish archive: %w", cerr)
			}
		}
	}()

	var w io.Writer = f
	for i := len(stages) - 1; i >= 0; i-- {
		cw, err := stages[i].Wrap(w)
		if err != nil {
			return nil, err
		}
		closers = append(closers, cw)
		w = cw
	}

	tw := tar.NewWriter(w)
	closers = append(closers, tw)

	entries, err = writeTree(tw, projectDir, filepath.Base(filepath.Clean(projectDir)))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("📦 Archive entries written", "count", len(entries))
	return entries, nil
}

// List reads back the entry names of an archive at path.
func (a *Archiver) List(path string) ([]string, error) {
	stages, err := a.format.compressors()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	for _, stage := range stages {
		rc, err := stage.Unwrap(r)
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		r = rc
	}

	var names []string
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading tar header: %w", err)
		}
		names = append(names, header.Name)
	}
}

// Verify reads the archive back and checks it holds exactly want, in order.
func (a *Archiver) Verify(path string, want []string) error {
	got, err := a.List(path)
	if err != nil {
		a.logger.Error("✗ Archive verification failed", "path", path, "error", err)
		return err
	}
	if len(got) != len(want) {
		a.logger.Error("✗ Archive verification failed", "path", path, "expected", len(want), "found", len(got))
		return fmt.Errorf("archive %s holds %d entries, expected %d", path, len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			a.logger.Error("✗ Archive verification failed", "path", path, "index", i, "expected", want[i], "found", got[i])
			return fmt.Errorf("archive %s entry %d is %q, expected %q", path, i, got[i], want[i])
		}
	}
	a.logger.Info("✓ Archive verification passed", "path", path, "entries", len(got))
	return nil
}
