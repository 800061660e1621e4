package fsops

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirectorySpec specifies a directory to create
type DirectorySpec struct {
	Path string
	Mode os.FileMode
}

// CreateDirs creates root and every listed directory below it. A zero Mode
// means 0755. Existing directories are left as they are.
func CreateDirs(root string, dirs []DirectorySpec) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}

	for _, dir := range dirs {
		mode := dir.Mode
		if mode == 0 {
			mode = 0o755
		}

		dirPath := filepath.Join(root, dir.Path)
		if err := os.MkdirAll(dirPath, mode); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir.Path, err)
		}
	}

	return nil
}
