package fsops

import (
	"fmt"
	"os"
	"path/filepath"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// Move renames src to dst. Moving a path onto itself is a no-op; an
// existing, different dst is an error.
func Move(src, dst string) error {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	if _, err := os.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", miaerrors.ErrSourceMissing, src)
		}
		return err
	}

	if src == dst {
		return nil
	}

	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", miaerrors.ErrDestinationExists, dst)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to rename %s: %w", src, err)
	}
	return nil
}
