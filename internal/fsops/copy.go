// Package fsops holds the filesystem steps of project materialization:
// tree copies, renames and directory creation.
package fsops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// CopyFile copies a single file from src to dst, keeping the source mode.
func CopyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	sourceInfo, err := sourceFile.Stat()
	if err != nil {
		return err
	}

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, sourceInfo.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	if err := destFile.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, sourceInfo.Mode().Perm())
}

// CopyTree recursively copies the directory src to dst. dst must not exist
// yet; its parent directories are created. Symbolic links are followed.
func CopyTree(src, dst string) error {
	sourceInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", miaerrors.ErrSourceMissing, src)
		}
		return err
	}
	if !sourceInfo.IsDir() {
		return fmt.Errorf("copy tree %s: not a directory", src)
	}

	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", miaerrors.ErrDestinationExists, dst)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	return copyDirAll(src, dst, sourceInfo)
}

func copyDirAll(src, dst string, info os.FileInfo) error {
	if err := os.Mkdir(dst, info.Mode().Perm()|0o700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		entryInfo, err := os.Stat(srcPath)
		if err != nil {
			return err
		}

		if entryInfo.IsDir() {
			if err := copyDirAll(srcPath, dstPath, entryInfo); err != nil {
				return err
			}
		} else if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return os.Chmod(dst, info.Mode().Perm())
}
