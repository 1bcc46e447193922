package render

import (
	"image"
	"testing"

	"github.com/gale-engine/gale"
	"github.com/gale-engine/gale/window"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	ctx, err := gale.New(gale.WithEngine(gale.NewMemoryEngine()))
	if err != nil {
		t.Fatalf("gale.New() error: %v", err)
	}
	t.Cleanup(func() { ctx.Close() })

	w, err := window.New(ctx, window.WithSize(320, 200))
	if err != nil {
		t.Fatalf("window.New() error: %v", err)
	}
	t.Cleanup(func() { w.Close() })

	r, err := New(w)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

// TestFrameLoop verifies the basic clear/draw/present sequence.
func TestFrameLoop(t *testing.T) {
	r := newTestRenderer(t)

	if err := r.SetDrawColor(gale.Black); err != nil {
		t.Fatalf("SetDrawColor() error: %v", err)
	}
	if err := r.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if err := r.FillRect(gale.Rct(10, 10, 50, 50)); err != nil {
		t.Fatalf("FillRect() error: %v", err)
	}
	if err := r.DrawLine(gale.Pt(0, 0), gale.Pt(319, 199)); err != nil {
		t.Fatalf("DrawLine() error: %v", err)
	}
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	size, err := r.OutputSize()
	if err != nil || size != gale.Sz(320, 200) {
		t.Errorf("OutputSize() = %+v, %v, want 320x200", size, err)
	}
}

// TestPushColorRestores verifies the scoped color change.
func TestPushColorRestores(t *testing.T) {
	r := newTestRenderer(t)

	if err := r.SetDrawColor(gale.RGB(10, 20, 30)); err != nil {
		t.Fatalf("SetDrawColor() error: %v", err)
	}

	restore, err := r.PushColor(gale.White)
	if err != nil {
		t.Fatalf("PushColor() error: %v", err)
	}
	c, _ := r.DrawColor()
	if c != gale.White {
		t.Errorf("DrawColor() = %v inside scope, want white", c)
	}

	restore()
	c, _ = r.DrawColor()
	if c != gale.RGB(10, 20, 30) {
		t.Errorf("DrawColor() = %v after restore, want original", c)
	}
}

// TestPushBlendModeRestores verifies the scoped blend change.
func TestPushBlendModeRestores(t *testing.T) {
	r := newTestRenderer(t)

	restore, err := r.PushBlendMode(gale.BlendAdditive)
	if err != nil {
		t.Fatalf("PushBlendMode() error: %v", err)
	}
	mode, _ := r.BlendMode()
	if mode != gale.BlendAdditive {
		t.Errorf("BlendMode() = %v inside scope, want additive", mode)
	}

	restore()
	mode, _ = r.BlendMode()
	if mode != gale.BlendNone {
		t.Errorf("BlendMode() = %v after restore, want none", mode)
	}
}

// TestPushViewportRestores verifies the scoped viewport change,
// including restoring the full-output default.
func TestPushViewportRestores(t *testing.T) {
	r := newTestRenderer(t)

	restore, err := r.PushViewport(gale.Rct(10, 10, 100, 100))
	if err != nil {
		t.Fatalf("PushViewport() error: %v", err)
	}
	v, _ := r.Viewport()
	if v != gale.Rct(10, 10, 100, 100) {
		t.Errorf("Viewport() = %+v inside scope", v)
	}

	restore()
	v, _ = r.Viewport()
	if v != gale.Rct(0, 0, 320, 200) {
		t.Errorf("Viewport() = %+v after restore, want full output", v)
	}
}

// TestTextureFromImage verifies image upload and copy.
func TestTextureFromImage(t *testing.T) {
	r := newTestRenderer(t)

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	tex, err := r.TextureFromImage(img)
	if err != nil {
		t.Fatalf("TextureFromImage() error: %v", err)
	}
	defer tex.Close()

	if tex.Size() != gale.Sz(8, 8) {
		t.Errorf("Size() = %+v, want 8x8", tex.Size())
	}
	if tex.Format() != gale.PixelRGBA8888 {
		t.Errorf("Format() = %v, want RGBA8888", tex.Format())
	}

	if err := r.Copy(tex, nil, nil); err != nil {
		t.Errorf("Copy() error: %v", err)
	}
	dst := gale.Rct(0, 0, 16, 16)
	if err := r.Copy(tex, nil, &dst); err != nil {
		t.Errorf("scaled Copy() error: %v", err)
	}
}

// TestCloseIdempotent verifies renderer and texture Close.
func TestCloseIdempotent(t *testing.T) {
	r := newTestRenderer(t)

	tex, err := r.CreateTexture(gale.PixelRGBA8888, gale.TextureStreaming, gale.Sz(4, 4))
	if err != nil {
		t.Fatalf("CreateTexture() error: %v", err)
	}
	if err := tex.Close(); err != nil {
		t.Errorf("texture Close() error: %v", err)
	}
	if err := tex.Close(); err != nil {
		t.Errorf("second texture Close() error: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("renderer Close() error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second renderer Close() error: %v", err)
	}
}
