package gale

import (
	"errors"
	"testing"
)

// TestMemoryQueueRoundTrip verifies push, poll and range flushing
// through the EventQueue interface.
func TestMemoryQueueRoundTrip(t *testing.T) {
	q := NewMemoryEngine().Events()

	q.Push(RawEvent{Type: KindQuit, Timestamp: 1})
	q.Push(RawEvent{Type: KindWindowShown, Timestamp: 2})
	q.Push(RawEvent{Type: KindKeyDown, Timestamp: 3})

	q.FlushRange(KindWindowShown, KindWindowDisplayChanged)

	var ev RawEvent
	if !q.Poll(&ev) || ev.Type != KindQuit {
		t.Fatalf("Poll() = %#x, want quit", ev.Type)
	}
	if !q.Poll(&ev) || ev.Type != KindKeyDown {
		t.Fatalf("Poll() = %#x, want key down", ev.Type)
	}
	if q.Poll(&ev) {
		t.Error("Poll on drained queue should report false")
	}
}

// TestMemoryQuitClosesQueue verifies Quit unblocks waiters so shutdown
// does not hang a consumer goroutine.
func TestMemoryQuitClosesQueue(t *testing.T) {
	e := NewMemoryEngine()
	if err := e.Init(SubsystemEvents); err != nil {
		t.Fatalf("Init() error: %v", err)
	}

	done := make(chan bool, 1)
	go func() {
		var ev RawEvent
		done <- e.Events().Wait(&ev)
	}()

	e.Quit(SubsystemEvents)
	if got := <-done; got {
		t.Error("Wait should report false after Quit")
	}
	if e.Initialized() != 0 {
		t.Errorf("Initialized() = %#x after Quit, want 0", uint32(e.Initialized()))
	}
}

// TestMemoryWindowLifecycle verifies window state recording and the
// destroyed guard.
func TestMemoryWindowLifecycle(t *testing.T) {
	e := NewMemoryEngine()
	w, err := e.Create(WindowOptions{Title: "demo", Size: Sz(640, 480)})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if !w.ID().Valid() {
		t.Error("window ID should be valid")
	}
	if w.Title() != "demo" {
		t.Errorf("Title() = %q, want %q", w.Title(), "demo")
	}

	if err := w.SetSize(Sz(800, 600)); err != nil {
		t.Fatalf("SetSize() error: %v", err)
	}
	size, err := w.Size()
	if err != nil || size != Sz(800, 600) {
		t.Errorf("Size() = %+v, %v, want 800x600", size, err)
	}

	if err := w.SetPosition(Pt(30, 40)); err != nil {
		t.Fatalf("SetPosition() error: %v", err)
	}
	pos, err := w.Position()
	if err != nil || pos != Pt(30, 40) {
		t.Errorf("Position() = %+v, %v, want (30,40)", pos, err)
	}

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error: %v", err)
	}
	if err := w.SetTitle("late"); !errors.Is(err, errWindowDestroyed) {
		t.Errorf("SetTitle after Destroy = %v, want destroyed error", err)
	}
	if _, err := w.Size(); !errors.Is(err, errWindowDestroyed) {
		t.Errorf("Size after Destroy = %v, want destroyed error", err)
	}
}

// TestMemoryWindowUniqueIDs verifies each window gets a distinct ID.
func TestMemoryWindowUniqueIDs(t *testing.T) {
	e := NewMemoryEngine()
	a, _ := e.Create(WindowOptions{Size: Sz(100, 100)})
	b, _ := e.Create(WindowOptions{Size: Sz(100, 100)})
	if a.ID() == b.ID() {
		t.Errorf("both windows got ID %d", a.ID())
	}
}

// TestMemoryRendererState verifies draw state round-trips and the
// viewport defaults to the output rect.
func TestMemoryRendererState(t *testing.T) {
	e := NewMemoryEngine()
	w, _ := e.Create(WindowOptions{Size: Sz(320, 200)})
	r, err := w.CreateRenderer(RendererOptions{})
	if err != nil {
		t.Fatalf("CreateRenderer() error: %v", err)
	}

	v, err := r.Viewport()
	if err != nil || v != Rct(0, 0, 320, 200) {
		t.Errorf("default Viewport() = %+v, %v, want full output", v, err)
	}

	if err := r.SetViewport(Rct(10, 10, 50, 50)); err != nil {
		t.Fatalf("SetViewport() error: %v", err)
	}
	v, _ = r.Viewport()
	if v != Rct(10, 10, 50, 50) {
		t.Errorf("Viewport() = %+v, want the set rect", v)
	}
	if err := r.ResetViewport(); err != nil {
		t.Fatalf("ResetViewport() error: %v", err)
	}
	v, _ = r.Viewport()
	if v != Rct(0, 0, 320, 200) {
		t.Errorf("Viewport() after reset = %+v, want full output", v)
	}

	if err := r.SetDrawColor(RGB(1, 2, 3)); err != nil {
		t.Fatalf("SetDrawColor() error: %v", err)
	}
	c, _ := r.DrawColor()
	if c != RGB(1, 2, 3) {
		t.Errorf("DrawColor() = %v, want #010203ff", c)
	}

	if err := r.FillRects([]Rect{Rct(0, 0, 5, 5)}); err != nil {
		t.Fatalf("FillRects() error: %v", err)
	}
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}
}

// TestMemoryTextureUpdate verifies bounds checking and pitch handling.
func TestMemoryTextureUpdate(t *testing.T) {
	e := NewMemoryEngine()
	w, _ := e.Create(WindowOptions{Size: Sz(64, 64)})
	r, _ := w.CreateRenderer(RendererOptions{})

	tex, err := r.CreateTexture(PixelRGBA8888, TextureStreaming, Sz(4, 4))
	if err != nil {
		t.Fatalf("CreateTexture() error: %v", err)
	}
	if tex.Size() != Sz(4, 4) {
		t.Errorf("Size() = %+v, want 4x4", tex.Size())
	}

	row := make([]byte, 4*4*4)
	if err := tex.Update(nil, row, 4*4); err != nil {
		t.Errorf("full Update() error: %v", err)
	}

	region := Rct(2, 2, 2, 2)
	if err := tex.Update(&region, make([]byte, 2*2*4), 2*4); err != nil {
		t.Errorf("region Update() error: %v", err)
	}

	bad := Rct(3, 3, 2, 2)
	if err := tex.Update(&bad, make([]byte, 2*2*4), 2*4); err == nil {
		t.Error("out-of-bounds Update should fail")
	}

	if _, err := r.CreateTexture(PixelRGBA8888, TextureStatic, Sz(0, 4)); err == nil {
		t.Error("zero-width texture should fail")
	}
}

// TestMemoryInputSnapshots verifies the settable input knobs and
// defensive copying.
func TestMemoryInputSnapshots(t *testing.T) {
	e := NewMemoryEngine()
	in := e.Input()

	pressed := []bool{false, true, false}
	e.SetKeyboardState(pressed, 0x40)
	pressed[1] = false

	got := in.KeyboardState()
	if len(got) != 3 || !got[1] {
		t.Errorf("KeyboardState() = %v, want snapshot unaffected by caller mutation", got)
	}
	if in.ModState() != 0x40 {
		t.Errorf("ModState() = %#x, want 0x40", in.ModState())
	}

	e.SetMouseState(Pt(12, 34), MouseButtonMask(1))
	p, buttons := in.MouseState()
	if p != Pt(12, 34) || buttons != 1 {
		t.Errorf("MouseState() = %+v, %#x", p, buttons)
	}

	if err := in.WarpMouse(WindowID(1), Pt(50, 60)); err != nil {
		t.Fatalf("WarpMouse() error: %v", err)
	}
	p, _ = in.MouseState()
	if p != Pt(50, 60) {
		t.Errorf("MouseState() after warp = %+v, want (50,60)", p)
	}

	if err := in.SetRelativeMouseMode(true); err != nil {
		t.Fatalf("SetRelativeMouseMode() error: %v", err)
	}
	if !in.RelativeMouseMode() {
		t.Error("RelativeMouseMode() = false after enabling")
	}
}
