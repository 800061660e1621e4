package iconset

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	miaerrors "github.com/horsimann/mia/go/miatools/pkg/mia/errors"
)

// Scale returns the integer upscale factor for a target size.
func Scale(baseSize, size int) int {
	if baseSize <= 0 {
		return 0
	}
	return size / baseSize
}

// Derive produces a size×size icon from base. base is magnified by
// size/baseWidth (floor) with pixel replication, then a size×size window
// centred on the magnified image is cut out. Parts of the window outside
// the magnified image stay transparent, so a target that is not a multiple
// of the base size is padded rather than stretched.
func Derive(base image.Image, size int) (*image.NRGBA, error) {
	b := base.Bounds()
	scale := Scale(b.Dx(), size)
	if scale < 1 {
		return nil, fmt.Errorf("%w: %d < %d", miaerrors.ErrTargetTooSmall, size, b.Dx())
	}

	magnified := Magnify(base, scale)
	mb := magnified.Bounds()

	// crop window [center-size/2, center-size/2+size) on each axis
	x0 := mb.Dx()/2 - size/2
	y0 := mb.Dy()/2 - size/2
	window := image.Rect(x0, y0, x0+size, y0+size)

	icon := image.NewNRGBA(image.Rect(0, 0, size, size))
	visible := window.Intersect(mb)
	if !visible.Empty() {
		dst := visible.Sub(window.Min)
		draw.Draw(icon, dst, magnified, visible.Min, draw.Src)
	}
	return icon, nil
}

// Magnify replicates every pixel of img scale times along both axes.
func Magnify(img image.Image, scale int) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}
