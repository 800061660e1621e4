package templater

import (
	"fmt"
	"os"
	"path/filepath"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// ApplyFile reads src, applies m and writes the result to dst, creating
// missing parent directories with dirPerms. dst gets src's file mode.
func ApplyFile(src, dst string, m Mapping, dirPerms os.FileMode) error {
	if m.Len() == 0 {
		return miaerrors.ErrEmptyMapping
	}

	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", miaerrors.ErrSourceMissing, src)
		}
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", src, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), dirPerms); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	if err := os.WriteFile(dst, []byte(m.Apply(string(data))), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// ApplyInPlace rewrites path with m applied.
func ApplyInPlace(path string, m Mapping, dirPerms os.FileMode) error {
	return ApplyFile(path, path, m, dirPerms)
}
