package iconset

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/horsimann/mia/go/miatools/internal/fsops"
	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
	"github.com/horsimann/mia/go/miatools/pkg/utils/permissions"
)

// DefaultTemplate is the template file looked up in the working directory.
const DefaultTemplate = "icon16_template.png"

// Options configures a generator run.
type Options struct {
	// Template is the base image; defaults to DefaultTemplate.
	Template string
	// OutputDir is the root all table paths are relative to; defaults to ".".
	OutputDir string
	// Table lists the icons to write; defaults to DefaultTable().
	Table Table
}

// Generator writes an icon table derived from one template image.
type Generator struct {
	opts   Options
	logger hclog.Logger
}

// NewGenerator fills in defaults for unset options. A nil logger discards
// output.
func NewGenerator(opts Options, logger hclog.Logger) *Generator {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Table == nil {
		opts.Table = DefaultTable()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Generator{opts: opts, logger: logger}
}

// LoadTemplate decodes the square base image at path.
func LoadTemplate(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", miaerrors.ErrTemplateLoad, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", miaerrors.ErrTemplateLoad, path, err)
	}

	b := img.Bounds()
	if b.Dx() != b.Dy() || b.Dx() == 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", miaerrors.ErrTemplateNotSquare, path, b.Dx(), b.Dy())
	}
	return img, nil
}

// Run loads the template and writes every table entry. Files written
// before a failure are kept.
func (g *Generator) Run() ([]string, error) {
	base, err := LoadTemplate(g.opts.Template)
	if err != nil {
		return nil, err
	}
	g.logger.Info("🖼️ Loaded template", "path", g.opts.Template, "size", base.Bounds().Dx())

	var written []string

	// favicon entries sharing a path go into one bundle
	var bundles []string
	bundled := map[string][]image.Image{}
	for _, e := range g.opts.Table.Family(Favicon) {
		icon, err := Derive(base, e.Size)
		if err != nil {
			return written, fmt.Errorf("deriving %s at %d: %w", e.Path, e.Size, err)
		}
		if _, ok := bundled[e.Path]; !ok {
			bundles = append(bundles, e.Path)
		}
		bundled[e.Path] = append(bundled[e.Path], icon)
	}
	for _, p := range bundles {
		dst, err := g.prepare(p)
		if err != nil {
			return written, err
		}
		g.logger.Info("✍️ Creating favicon", "path", dst, "images", len(bundled[p]))
		if err := WriteICO(dst, bundled[p], permissions.DefaultFilePerms); err != nil {
			return written, err
		}
		written = append(written, dst)
	}

	for _, e := range g.opts.Table {
		if e.Family == Favicon {
			continue
		}
		dst, err := g.prepare(e.Path)
		if err != nil {
			return written, err
		}
		icon, err := Derive(base, e.Size)
		if err != nil {
			return written, fmt.Errorf("deriving %s at %d: %w", e.Path, e.Size, err)
		}
		g.logger.Info("✍️ Creating "+e.Family.String()+" icon", "path", dst, "size", e.Size)
		if err := WritePNG(dst, icon, permissions.DefaultFilePerms); err != nil {
			return written, err
		}
		written = append(written, dst)
	}

	g.logger.Info("✅ Icons generated", "files", len(written))
	return written, nil
}

// prepare creates the directory of a table path and returns its full path.
func (g *Generator) prepare(rel string) (string, error) {
	var dirs []fsops.DirectorySpec
	if dir := path.Dir(rel); dir != "." {
		dirs = append(dirs, fsops.DirectorySpec{Path: filepath.FromSlash(dir), Mode: permissions.DefaultDirPerms})
	}
	if err := fsops.CreateDirs(g.opts.OutputDir, dirs); err != nil {
		return "", err
	}
	return filepath.Join(g.opts.OutputDir, filepath.FromSlash(rel)), nil
}
