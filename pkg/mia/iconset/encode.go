package iconset

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/tc-hib/winres"
)

// EncodeICO writes images as one multi-resolution ICO file. Every image
// must be at most 256×256.
func EncodeICO(w io.Writer, images []image.Image) error {
	icon, err := winres.NewIconFromImages(images)
	if err != nil {
		return fmt.Errorf("building icon: %w", err)
	}
	if err := icon.SaveICO(w); err != nil {
		return fmt.Errorf("writing icon: %w", err)
	}
	return nil
}

// WriteICO encodes images into the ICO file at path.
func WriteICO(path string, images []image.Image, perm os.FileMode) error {
	return writeFile(path, perm, func(w io.Writer) error {
		return EncodeICO(w, images)
	})
}

// WritePNG encodes img into the PNG file at path.
func WritePNG(path string, img image.Image, perm os.FileMode) error {
	return writeFile(path, perm, func(w io.Writer) error {
		return png.Encode(w, img)
	})
}

func writeFile(path string, perm os.FileMode, encode func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
