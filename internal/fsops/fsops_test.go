package fsops

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestCopyTree(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "in")
	writeFile(t, filepath.Join(src, "app", "build.gradle"), "apply plugin")
	writeFile(t, filepath.Join(src, "app", "src", "main", "AndroidManifest.xml"), "<manifest/>")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o755))

	script := filepath.Join(src, "gradlew")
	writeFile(t, script, "#!/bin/sh")
	require.NoError(t, os.Chmod(script, 0o755))

	dst := filepath.Join(root, "out", "APP")
	require.NoError(t, CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "app", "build.gradle"))
	require.NoError(t, err)
	assert.Equal(t, "apply plugin", string(data))

	data, err = os.ReadFile(filepath.Join(dst, "app", "src", "main", "AndroidManifest.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<manifest/>", string(data))

	info, err := os.Stat(filepath.Join(dst, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = os.Stat(filepath.Join(dst, "gradlew"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopyTreeMissingSource(t *testing.T) {
	root := t.TempDir()
	err := CopyTree(filepath.Join(root, "nope"), filepath.Join(root, "dst"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, miaerrors.ErrSourceMissing))

	_, statErr := os.Stat(filepath.Join(root, "dst"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCopyTreeExistingDestination(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	writeFile(t, filepath.Join(src, "a.txt"), "a")
	dst := filepath.Join(root, "dst")
	require.NoError(t, os.MkdirAll(dst, 0o755))

	err := CopyTree(src, dst)
	assert.ErrorIs(t, err, miaerrors.ErrDestinationExists)
}

func TestCopyTreeSourceIsFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "file.txt")
	writeFile(t, src, "x")

	assert.Error(t, CopyTree(src, filepath.Join(root, "dst")))
}

func TestMove(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "java", "de", "horsimann", "mia")
	writeFile(t, filepath.Join(src, "Main.java"), "package x;")

	dst := filepath.Join(root, "java", "de", "horsimann", "tea")
	require.NoError(t, Move(src, dst))

	assert.FileExists(t, filepath.Join(dst, "Main.java"))
	assert.NoDirExists(t, src)
}

func TestMoveOntoItself(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "java", "de")
	writeFile(t, filepath.Join(dir, "x"), "x")

	require.NoError(t, Move(dir+string(filepath.Separator), dir))
	assert.FileExists(t, filepath.Join(dir, "x"))
}

func TestMoveErrors(t *testing.T) {
	root := t.TempDir()

	err := Move(filepath.Join(root, "missing"), filepath.Join(root, "dst"))
	assert.ErrorIs(t, err, miaerrors.ErrSourceMissing)

	src := filepath.Join(root, "a")
	dst := filepath.Join(root, "b")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.MkdirAll(dst, 0o755))
	assert.ErrorIs(t, Move(src, dst), miaerrors.ErrDestinationExists)
}

func TestCreateDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "icons")

	err := CreateDirs(root, []DirectorySpec{
		{Path: "mipmap-mdpi"},
		{Path: "mipmap-hdpi", Mode: 0o700},
	})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(root, "mipmap-mdpi"))
	info, err := os.Stat(filepath.Join(root, "mipmap-hdpi"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	// second run over existing directories succeeds
	require.NoError(t, CreateDirs(root, []DirectorySpec{{Path: "mipmap-mdpi"}}))
}
