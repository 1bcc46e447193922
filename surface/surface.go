// Package surface provides a CPU pixel surface in the library's
// canonical RGBA layout. Surfaces are composed on the CPU and uploaded
// to engine textures for display; they are the software path for image
// loading, scaling and simple compositing.
package surface

import (
	"errors"
	"image"
	"image/color"
	stddraw "image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gale-engine/gale"
)

// Surface is a CPU canvas backed by an *image.RGBA.
//
// Surfaces are not safe for concurrent use.
type Surface struct {
	img    *image.RGBA
	closed bool
}

// ErrClosed is returned by operations on a closed surface.
var ErrClosed = errors.New("surface: closed")

// Filter selects the resampling kernel for scaled blits.
type Filter uint8

const (
	// FilterNearest is nearest-neighbor sampling, fastest and blocky.
	FilterNearest Filter = iota

	// FilterLinear is approximate bilinear sampling.
	FilterLinear

	// FilterCatmullRom is Catmull-Rom sampling, slowest and sharpest.
	FilterCatmullRom
)

func (f Filter) scaler() xdraw.Scaler {
	switch f {
	case FilterLinear:
		return xdraw.ApproxBiLinear
	case FilterCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.NearestNeighbor
	}
}

// New creates a surface of the given size. Dimensions are clamped to a
// minimum of 1x1.
func New(size gale.Size) *Surface {
	w, h := int(size.Width), int(size.Height)
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FromImage creates a surface holding a copy of img's pixels.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(dst, dst.Bounds(), img, b.Min, stddraw.Src)
	return &Surface{img: dst}
}

// Size returns the surface dimensions, or the zero Size after Close.
func (s *Surface) Size() gale.Size {
	if s.closed {
		return gale.Size{}
	}
	b := s.img.Bounds()
	return gale.Sz(int32(b.Dx()), int32(b.Dy()))
}

// Image returns the backing image. The reference is live; drawing on it
// draws on the surface.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c gale.Color) error {
	if s.closed {
		return ErrClosed
	}
	u := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	stddraw.Draw(s.img, s.img.Bounds(), u, image.Point{}, stddraw.Src)
	return nil
}

// FillRect fills rect with c using source-over compositing.
func (s *Surface) FillRect(rect gale.Rect, c gale.Color) error {
	if s.closed {
		return ErrClosed
	}
	if rect.Empty() {
		return nil
	}
	u := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	r := image.Rect(int(rect.X), int(rect.Y), int(rect.X+rect.W), int(rect.Y+rect.H))
	stddraw.Draw(s.img, r.Intersect(s.img.Bounds()), u, image.Point{}, stddraw.Over)
	return nil
}

// Blit draws src onto s with its top-left corner at p, unscaled, using
// source-over compositing.
func (s *Surface) Blit(src *Surface, p gale.Point) error {
	if s.closed {
		return ErrClosed
	}
	if src.closed {
		return ErrClosed
	}
	b := src.img.Bounds()
	r := image.Rect(int(p.X), int(p.Y), int(p.X)+b.Dx(), int(p.Y)+b.Dy())
	stddraw.Draw(s.img, r.Intersect(s.img.Bounds()), src.img, b.Min, stddraw.Over)
	return nil
}

// BlitScaled draws src stretched to dst using the given filter.
func (s *Surface) BlitScaled(src *Surface, dst gale.Rect, filter Filter) error {
	if s.closed {
		return ErrClosed
	}
	if src.closed {
		return ErrClosed
	}
	if dst.Empty() {
		return nil
	}
	r := image.Rect(int(dst.X), int(dst.Y), int(dst.X+dst.W), int(dst.Y+dst.H))
	filter.scaler().Scale(s.img, r, src.img, src.img.Bounds(), xdraw.Over, nil)
	return nil
}

// Scaled returns a new surface holding s resampled to size.
func (s *Surface) Scaled(size gale.Size, filter Filter) (*Surface, error) {
	if s.closed {
		return nil, ErrClosed
	}
	out := New(size)
	filter.scaler().Scale(out.img, out.img.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
	return out, nil
}

// Snapshot returns a copy of the surface pixels.
func (s *Surface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// Upload copies the surface pixels into tex. The texture must match the
// surface size.
func (s *Surface) Upload(tex gale.TextureHandle) error {
	if s.closed {
		return ErrClosed
	}
	if tex.Size() != s.Size() {
		return errors.New("surface: texture size mismatch")
	}
	return tex.Update(nil, s.img.Pix, s.img.Stride)
}

// Close releases the backing image. Close is idempotent; operations
// after Close return ErrClosed.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	return nil
}
