package templater

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
	"github.com/horsimann/mia/go/miatools/pkg/utils/permissions"
)

// EnvPrefix prefixes environment overrides of layout keys, e.g.
// MIA_OUTPUT_DIR=build/out.
const EnvPrefix = "MIA_"

// Fixed locations inside the materialized project.
const (
	NativeIncludePath = "app/jni/mia/include"
	NativeSourcePath  = "app/jni/mia/src"
	AssetsResPath     = "app/src/main/assets/res"
	MipmapParentPath  = "app/src/main/res"
	MipmapPrefix      = "mipmap-"
)

// Layout describes where materialization reads from and writes to. Paths
// inside the project use forward slashes.
type Layout struct {
	SkeletonDir string `json:"skeleton_dir" koanf:"skeleton_dir" validate:"required"`
	OutputDir   string `json:"output_dir" koanf:"output_dir" validate:"required"`
	StagingName string `json:"staging_name" koanf:"staging_name" validate:"required,excludesall=/\\"`
	IncludeDir  string `json:"include_dir" koanf:"include_dir" validate:"required"`
	SourceDir   string `json:"source_dir" koanf:"source_dir" validate:"required"`
	ResourceDir string `json:"resource_dir" koanf:"resource_dir" validate:"required"`
	LogoDir     string `json:"logo_dir" koanf:"logo_dir" validate:"required"`

	Densities     []string `json:"densities" koanf:"densities" validate:"required,dive,required"`
	TemplateFiles []string `json:"template_files" koanf:"template_files" validate:"required,dive,required"`

	JavaRoot        string `json:"java_root" koanf:"java_root" validate:"required"`
	SkeletonPackage string `json:"skeleton_package" koanf:"skeleton_package" validate:"required"`

	DirPerms  string `json:"dir_perms" koanf:"dir_perms"`
	FilePerms string `json:"file_perms" koanf:"file_perms"`
}

// DefaultLayout is the layout of the mia repository: the skeleton in ./in
// next to the engine's include, src, res and logo trees one level up.
func DefaultLayout() Layout {
	return Layout{
		SkeletonDir: "in",
		OutputDir:   "out",
		StagingName: "APP",
		IncludeDir:  "../include",
		SourceDir:   "../src",
		ResourceDir: "../res",
		LogoDir:     "../logo",
		Densities:   []string{"mdpi", "hdpi", "xhdpi", "xxhdpi", "xxxhdpi"},
		TemplateFiles: []string{
			"app/jni/mia/Android.mk",
			"app/src/main/java/de/horsimann/mia/Main.java",
			"app/src/main/AndroidManifest.xml",
			"app/build.gradle",
			"app/src/main/res/values/strings.xml",
			"app/src/main/res/values/styles.xml",
		},
		JavaRoot:        "app/src/main/java",
		SkeletonPackage: "de/horsimann/mia",
		DirPerms:        permissions.FormatOctal(permissions.DefaultDirPerms),
		FilePerms:       permissions.FormatOctal(permissions.DefaultFilePerms),
	}
}

// LoadLayout builds the layout from the defaults, the optional JSON file
// at filename and MIA_* environment variables, in increasing priority.
func LoadLayout(filename string) (Layout, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultLayout(), "koanf"), nil); err != nil {
		return Layout{}, fmt.Errorf("failed to load layout defaults: %w", err)
	}

	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			return Layout{}, fmt.Errorf("%w: failed to load %s: %v", miaerrors.ErrInvalidLayout, filename, err)
		}
	}

	// MIA_OUTPUT_DIR -> output_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return Layout{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var layout Layout
	if err := k.UnmarshalWithConf("", &layout, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", miaerrors.ErrInvalidLayout, err)
	}

	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// Validate checks that all paths are set, the skeleton package has three
// segments and the permission strings parse. Directories must stay
// traversable for their owner. The output directory is removed before every
// run, so it must not be the working directory, its parent, or hold any of
// the input trees.
func (l Layout) Validate() error {
	if err := checkStruct(l, "layout"); err != nil {
		return err
	}
	if err := l.checkOutputDir(); err != nil {
		return err
	}
	if n := len(strings.Split(strings.Trim(l.SkeletonPackage, "/"), "/")); n != 3 {
		return fmt.Errorf("%w: skeleton_package %q has %d segments, want 3", miaerrors.ErrInvalidLayout, l.SkeletonPackage, n)
	}
	dirMode, err := permissions.ParseOctalString(l.DirPerms, permissions.DefaultDirPerms)
	if err != nil {
		return fmt.Errorf("%w: dir_perms: %v", miaerrors.ErrInvalidLayout, err)
	}
	if !permissions.IsTraversable(dirMode) {
		return fmt.Errorf("%w: dir_perms %s does not let the owner enter directories", miaerrors.ErrInvalidLayout, l.DirPerms)
	}
	if _, err := permissions.ParseOctalString(l.FilePerms, permissions.DefaultFilePerms); err != nil {
		return fmt.Errorf("%w: file_perms: %v", miaerrors.ErrInvalidLayout, err)
	}
	return nil
}

func (l Layout) checkOutputDir() error {
	switch filepath.Clean(l.OutputDir) {
	case ".", "..":
		return fmt.Errorf("%w: output_dir %q would remove the working directory", miaerrors.ErrInvalidLayout, l.OutputDir)
	}

	inputs := []struct{ key, dir string }{
		{"skeleton_dir", l.SkeletonDir},
		{"include_dir", l.IncludeDir},
		{"source_dir", l.SourceDir},
		{"resource_dir", l.ResourceDir},
		{"logo_dir", l.LogoDir},
	}
	for _, in := range inputs {
		inside, err := isWithin(l.OutputDir, in.dir)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", miaerrors.ErrInvalidLayout, in.key, err)
		}
		if inside {
			return fmt.Errorf("%w: output_dir %q contains %s %q", miaerrors.ErrInvalidLayout, l.OutputDir, in.key, in.dir)
		}
	}
	return nil
}

// isWithin reports whether target is dir or lies below it.
func isWithin(dir, target string) (bool, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	absPath, err := filepath.Abs(target)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		// different volumes
		return false, nil
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

// DirMode returns the parsed directory permissions, or the default when
// DirPerms does not parse. Validate rejects such layouts.
func (l Layout) DirMode() os.FileMode {
	mode, _ := permissions.ParseOctalString(l.DirPerms, permissions.DefaultDirPerms)
	return mode
}

// FileMode returns the parsed file permissions, or the default when
// FilePerms does not parse. Validate rejects such layouts.
func (l Layout) FileMode() os.FileMode {
	mode, _ := permissions.ParseOctalString(l.FilePerms, permissions.DefaultFilePerms)
	return mode
}

// StagingDir is where the skeleton is assembled before the final rename.
func (l Layout) StagingDir() string {
	return filepath.Join(l.OutputDir, l.StagingName)
}

// ProjectDir is the final location of the project for id.
func (l Layout) ProjectDir(id Identity) string {
	return filepath.Join(l.OutputDir, id.AppLower())
}

// LogoDensityDir is the pre-rendered mipmap directory for one density.
func (l Layout) LogoDensityDir(logo, density string) string {
	return filepath.Join(l.LogoDir, logo, MipmapPrefix+density)
}

// PackageDir returns the Java package directory of id inside project,
// e.g. app/src/main/java/de/horsimann/tea.
func (l Layout) PackageDir(project string, id Identity) string {
	return filepath.Join(project, filepath.FromSlash(l.JavaRoot), filepath.FromSlash(id.Slashed()))
}

// RenamedTemplateFile maps a template file path of the skeleton to where it
// lives after the package directories were renamed for id.
func (l Layout) RenamedTemplateFile(rel string, id Identity) string {
	prefix := path.Join(l.JavaRoot, strings.Trim(l.SkeletonPackage, "/")) + "/"
	if strings.HasPrefix(rel, prefix) {
		return path.Join(l.JavaRoot, id.Slashed(), strings.TrimPrefix(rel, prefix))
	}
	return rel
}
