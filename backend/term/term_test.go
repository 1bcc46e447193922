package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/gale-engine/gale"
)

// newSimEngine wires the engine to a tcell simulation screen, bypassing
// the real terminal.
func newSimEngine(t *testing.T) (*engine, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init() error: %v", err)
	}
	e := newEngine()
	e.screen = sim
	t.Cleanup(func() {
		e.screen = nil
		sim.Fini()
		e.events.Close()
	})
	return e, sim
}

func drain(t *testing.T, e *engine) []gale.RawEvent {
	t.Helper()
	var out []gale.RawEvent
	var ev gale.RawEvent
	for e.Events().Poll(&ev) {
		out = append(out, ev)
	}
	return out
}

// TestTranslateRuneKey verifies a printable key yields a key-down and a
// text-input record.
func TestTranslateRuneKey(t *testing.T) {
	e, _ := newSimEngine(t)

	e.translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))

	got := drain(t, e)
	if len(got) != 2 {
		t.Fatalf("got %d records, want key-down + text-input", len(got))
	}
	if got[0].Type != gale.KindKeyDown || got[0].Keycode != 'a' {
		t.Errorf("first record = %#x keycode %d", got[0].Type, got[0].Keycode)
	}
	if got[1].Type != gale.KindTextInput || got[1].Text[0] != 'a' {
		t.Errorf("second record = %#x text %q", got[1].Type, got[1].Text[:1])
	}
}

// TestTranslateCtrlKeySuppressesText verifies modified keys do not emit
// text input, and Ctrl+C becomes quit.
func TestTranslateCtrlKeySuppressesText(t *testing.T) {
	e, _ := newSimEngine(t)

	e.translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	got := drain(t, e)
	if len(got) != 1 || got[0].Type != gale.KindKeyDown {
		t.Errorf("modified rune: got %d records, want key-down only", len(got))
	}
	if got[0].Mod&gale.ModAlt == 0 {
		t.Errorf("Mod = %#x, want alt bit", got[0].Mod)
	}

	e.translate(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	got = drain(t, e)
	if len(got) != 1 || got[0].Type != gale.KindQuit {
		t.Errorf("ctrl+c: got %v, want a quit record", got)
	}
}

// TestTranslateMouse verifies motion, button diffing and state tracking.
func TestTranslateMouse(t *testing.T) {
	e, _ := newSimEngine(t)

	e.translate(tcell.NewEventMouse(5, 3, tcell.Button1, 0))
	got := drain(t, e)
	if len(got) != 2 {
		t.Fatalf("got %d records, want motion + button-down", len(got))
	}
	if got[0].Type != gale.KindMouseMotion || got[0].X != 5 || got[0].Y != 3 {
		t.Errorf("motion record = %+v", got[0])
	}
	if got[1].Type != gale.KindMouseButtonDown || got[1].Button != 1 {
		t.Errorf("button record = %+v", got[1])
	}

	// Release without moving: only a button-up.
	e.translate(tcell.NewEventMouse(5, 3, 0, 0))
	got = drain(t, e)
	if len(got) != 1 || got[0].Type != gale.KindMouseButtonUp {
		t.Errorf("release: got %v, want button-up only", got)
	}

	p, buttons := e.Input().MouseState()
	if p != gale.Pt(5, 3) || buttons != 0 {
		t.Errorf("MouseState() = %+v, %#x", p, buttons)
	}
}

// TestTranslateWheel verifies wheel bits become one wheel record.
func TestTranslateWheel(t *testing.T) {
	e, _ := newSimEngine(t)

	e.translate(tcell.NewEventMouse(0, 0, tcell.WheelUp, 0))
	got := drain(t, e)
	if len(got) != 1 || got[0].Type != gale.KindMouseWheel {
		t.Fatalf("got %v, want one wheel record", got)
	}
	if got[0].WheelY != 1 || got[0].PreciseY != 1 {
		t.Errorf("WheelY = %d, PreciseY = %v, want 1", got[0].WheelY, got[0].PreciseY)
	}
}

// TestTranslateResize verifies resize becomes a window size record.
func TestTranslateResize(t *testing.T) {
	e, sim := newSimEngine(t)

	sim.SetSize(100, 40)
	e.translate(tcell.NewEventResize(100, 40))

	got := drain(t, e)
	if len(got) != 1 || got[0].Type != gale.KindWindowSizeChanged {
		t.Fatalf("got %v, want one size-changed record", got)
	}
	if got[0].Data1 != 100 || got[0].Data2 != 40 {
		t.Errorf("size payload = %d x %d, want 100x40", got[0].Data1, got[0].Data2)
	}
	if got[0].WindowID != terminalWindowID {
		t.Errorf("WindowID = %d, want the terminal window", got[0].WindowID)
	}
}

// TestSingleWindow verifies the terminal can be claimed exactly once.
func TestSingleWindow(t *testing.T) {
	e, _ := newSimEngine(t)

	w, err := e.Create(gale.WindowOptions{Title: "tui"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if w.ID() != terminalWindowID {
		t.Errorf("ID() = %d, want %d", w.ID(), terminalWindowID)
	}
	if _, err := e.Create(gale.WindowOptions{}); err == nil {
		t.Error("second Create should fail")
	}

	if err := w.Destroy(); err != nil {
		t.Fatalf("Destroy() error: %v", err)
	}
	if _, err := e.Create(gale.WindowOptions{}); err != nil {
		t.Errorf("Create after Destroy error: %v", err)
	}
}

// TestRendererCells verifies cell painting through the renderer.
func TestRendererCells(t *testing.T) {
	e, sim := newSimEngine(t)
	sim.SetSize(20, 10)

	w, err := e.Create(gale.WindowOptions{})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	r, err := w.CreateRenderer(gale.RendererOptions{})
	if err != nil {
		t.Fatalf("CreateRenderer() error: %v", err)
	}

	size, err := r.OutputSize()
	if err != nil || size != gale.Sz(20, 10) {
		t.Fatalf("OutputSize() = %+v, %v", size, err)
	}

	if err := r.SetDrawColor(gale.RGB(255, 0, 0)); err != nil {
		t.Fatalf("SetDrawColor() error: %v", err)
	}
	if err := r.FillRects([]gale.Rect{gale.Rct(1, 1, 3, 2)}); err != nil {
		t.Fatalf("FillRects() error: %v", err)
	}
	if err := r.Present(); err != nil {
		t.Fatalf("Present() error: %v", err)
	}

	_, _, style, _ := sim.GetContent(2, 1)
	_, bg, _ := style.Decompose()
	cr, cg, cb := bg.RGB()
	if cr != 255 || cg != 0 || cb != 0 {
		t.Errorf("cell background = %d,%d,%d, want red", cr, cg, cb)
	}
}

// TestWindowGeometryUnsupported verifies geometry ops report the
// degraded-backend error.
func TestWindowGeometryUnsupported(t *testing.T) {
	e, _ := newSimEngine(t)
	w, err := e.Create(gale.WindowOptions{})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := w.SetSize(gale.Sz(10, 10)); err != errUnsupported {
		t.Errorf("SetSize() = %v, want errUnsupported", err)
	}
	if err := w.SetFullscreen(true); err != errUnsupported {
		t.Errorf("SetFullscreen() = %v, want errUnsupported", err)
	}
}
