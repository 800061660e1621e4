// Package iconset derives a fixed set of app icons from one small pixel-art
// template by integer nearest-neighbour upscaling and center-cropping.
package iconset

import (
	"fmt"
	"path"
)

// Family groups icons written in the same container format.
type Family int

const (
	// Favicon icons are bundled into one multi-image ICO file.
	Favicon Family = iota
	// Web icons are single PNG files.
	Web
	// Android icons are PNG files inside density-named directories.
	Android
)

func (f Family) String() string {
	switch f {
	case Favicon:
		return "favicon"
	case Web:
		return "web"
	case Android:
		return "android"
	default:
		return "unknown"
	}
}

// Entry is one icon to derive: its output path below the output root and
// its edge length in pixels.
type Entry struct {
	Family Family
	Path   string
	Size   int
}

// Table is the ordered list of icons to generate.
type Table []Entry

// Density is an Android launcher icon density bucket.
type Density struct {
	Dir  string
	Size int
}

var (
	// FaviconSizes are bundled into FaviconFile.
	FaviconSizes = []int{16, 24, 32, 48, 64, 128, 256}
	// WebSizes are written as icon<size>.png.
	WebSizes = []int{180, 196, 512}
	// AndroidDensities are written as <dir>/ic_launcher.png.
	AndroidDensities = []Density{
		{"mipmap-mdpi", 48},
		{"mipmap-hdpi", 72},
		{"mipmap-xhdpi", 96},
		{"mipmap-xxhdpi", 144},
		{"mipmap-xxxhdpi", 192},
	}
)

const (
	FaviconFile     = "favicon.ico"
	LauncherIcon    = "ic_launcher.png"
	webIconTemplate = "icon%d.png"
)

// DefaultTable returns the favicon, web and Android icons, in that order.
func DefaultTable() Table {
	var t Table
	for _, size := range FaviconSizes {
		t = append(t, Entry{Family: Favicon, Path: FaviconFile, Size: size})
	}
	for _, size := range WebSizes {
		t = append(t, Entry{Family: Web, Path: fmt.Sprintf(webIconTemplate, size), Size: size})
	}
	for _, d := range AndroidDensities {
		t = append(t, Entry{Family: Android, Path: path.Join(d.Dir, LauncherIcon), Size: d.Size})
	}
	return t
}

// Family returns the entries of family f, in table order.
func (t Table) Family(f Family) Table {
	var out Table
	for _, e := range t {
		if e.Family == f {
			out = append(out, e)
		}
	}
	return out
}
