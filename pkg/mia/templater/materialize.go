package templater

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/horsimann/mia/go/miatools/internal/fsops"
)

// Materializer builds a rebranded project from a Layout.
type Materializer struct {
	layout Layout
	logger hclog.Logger
}

// NewMaterializer creates a Materializer. A nil logger discards output.
func NewMaterializer(layout Layout, logger hclog.Logger) *Materializer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Materializer{layout: layout, logger: logger}
}

// Materialize validates the layout, runs every step in order and returns
// the project directory.
// The first failing step aborts the run; whatever was built so far stays on
// disk for inspection.
func (m *Materializer) Materialize(cfg Config) (string, error) {
	l := m.layout
	if err := l.Validate(); err != nil {
		return "", err
	}
	id := cfg.Identity()
	staging := l.StagingDir()

	m.logger.Info("🧹 Removing previous output", "dir", l.OutputDir)
	if err := os.RemoveAll(l.OutputDir); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", l.OutputDir, err)
	}

	m.logger.Info("📁 Copying project skeleton", "src", l.SkeletonDir, "dst", staging)
	if err := fsops.CopyTree(l.SkeletonDir, staging); err != nil {
		return "", fmt.Errorf("copying skeleton: %w", err)
	}

	trees := []struct{ name, src, dst string }{
		{"include", l.IncludeDir, NativeIncludePath},
		{"src", l.SourceDir, NativeSourcePath},
		{"res", l.ResourceDir, AssetsResPath},
	}
	for _, tree := range trees {
		dst := filepath.Join(staging, filepath.FromSlash(tree.dst))
		m.logger.Info("📁 Copying "+tree.name, "src", tree.src, "dst", dst)
		if err := fsops.CopyTree(tree.src, dst); err != nil {
			return "", fmt.Errorf("copying %s: %w", tree.name, err)
		}
	}

	m.logger.Info("🖼️ Copying logo", "logo", cfg.Logo(), "densities", len(l.Densities))
	for _, density := range l.Densities {
		src := l.LogoDensityDir(cfg.Logo(), density)
		dst := filepath.Join(staging, filepath.FromSlash(MipmapParentPath), MipmapPrefix+density)
		m.logger.Debug("Copying logo density", "src", src, "dst", dst)
		if err := fsops.CopyTree(src, dst); err != nil {
			return "", fmt.Errorf("copying logo %s: %w", density, err)
		}
	}

	mapping := cfg.Mapping()
	m.logger.Info("🔤 Replacing package names", "files", len(l.TemplateFiles), "rules", mapping.Len(), "features", cfg.EnabledFeatures())
	for _, rel := range l.TemplateFiles {
		target := filepath.Join(staging, filepath.FromSlash(rel))
		m.logger.Debug("Applying template", "file", target)
		if err := ApplyInPlace(target, mapping, l.DirMode()); err != nil {
			return "", fmt.Errorf("applying template to %s: %w", rel, err)
		}
	}

	m.logger.Info("🚚 Renaming package directories", "package", id.Dotted())
	if err := m.renamePackage(staging, id); err != nil {
		return "", err
	}

	project := l.ProjectDir(id)
	if err := fsops.Move(staging, project); err != nil {
		return "", fmt.Errorf("renaming project: %w", err)
	}

	m.logger.Info("✅ Project materialized", "dir", project, "package", l.PackageDir(project, id))
	return project, nil
}

// renamePackage moves the skeleton package a/b/c to id's namespace, one
// segment at a time from the deepest up: a/b/c -> a/b/app, a/b -> a/domain,
// a -> namespace.
func (m *Materializer) renamePackage(staging string, id Identity) error {
	javaRoot := filepath.Join(staging, filepath.FromSlash(m.layout.JavaRoot))
	from := strings.Split(strings.Trim(m.layout.SkeletonPackage, "/"), "/")
	to := []string{id.Namespace, id.Domain, id.AppLower()}

	for depth := len(from); depth > 0; depth-- {
		parent := filepath.Join(append([]string{javaRoot}, from[:depth-1]...)...)
		src := filepath.Join(parent, from[depth-1])
		dst := filepath.Join(parent, to[depth-1])
		m.logger.Debug("Renaming package directory", "src", src, "dst", dst)
		if err := fsops.Move(src, dst); err != nil {
			return fmt.Errorf("renaming package directory: %w", err)
		}
	}
	return nil
}
