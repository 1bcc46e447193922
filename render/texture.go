package render

import (
	"fmt"
	"image"

	"github.com/gale-engine/gale"
)

// Texture owns an engine texture created from a renderer.
type Texture struct {
	handle gale.TextureHandle
	closed bool
}

// CreateTexture creates a texture on r.
func (r *Renderer) CreateTexture(format gale.PixelFormat, access gale.TextureAccess, size gale.Size) (*Texture, error) {
	handle, err := r.handle.CreateTexture(format, access, size)
	if err != nil {
		return nil, fmt.Errorf("render: create texture: %w", err)
	}
	return &Texture{handle: handle}, nil
}

// TextureFromImage creates a static RGBA texture holding img's pixels.
func (r *Renderer) TextureFromImage(img *image.RGBA) (*Texture, error) {
	b := img.Bounds()
	size := gale.Sz(int32(b.Dx()), int32(b.Dy()))

	t, err := r.CreateTexture(gale.PixelRGBA8888, gale.TextureStatic, size)
	if err != nil {
		return nil, err
	}
	if err := t.handle.Update(nil, img.Pix, img.Stride); err != nil {
		t.Close()
		return nil, fmt.Errorf("render: upload image: %w", err)
	}
	return t, nil
}

// Size returns the texture size in pixels.
func (t *Texture) Size() gale.Size { return t.handle.Size() }

// Access returns how the texture may be updated.
func (t *Texture) Access() gale.TextureAccess { return t.handle.Access() }

// Format returns the texture pixel layout.
func (t *Texture) Format() gale.PixelFormat { return t.handle.Format() }

// Update replaces pixel data in region (nil for the whole texture).
// pixels holds rows of pitch bytes each.
func (t *Texture) Update(region *gale.Rect, pixels []byte, pitch int) error {
	return t.handle.Update(region, pixels, pitch)
}

// SetBlendMode sets how the texture combines with the target when copied.
func (t *Texture) SetBlendMode(mode gale.BlendMode) error {
	return t.handle.SetBlendMode(mode)
}

// Close destroys the texture. Close is idempotent.
func (t *Texture) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	return t.handle.Destroy()
}
