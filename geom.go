package gale

import "fmt"

// Point is an integer 2D coordinate, in the engine's pixel space.
type Point struct {
	X, Y int32
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int32
}

// Sz creates a Size from width and height.
func Sz(w, h int32) Size {
	return Size{Width: w, Height: h}
}

// Rect is an axis-aligned rectangle with integer coordinates.
type Rect struct {
	X, Y int32
	W, H int32
}

// Rct creates a Rect from position and dimensions.
func Rct(x, y, w, h int32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Color is an 8-bit-per-channel RGBA color in the engine's color space.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 0xFF}
	White       = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Transparent = Color{}
)

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// WindowID identifies an engine window for event correlation.
// The zero value is never a valid window.
type WindowID uint32

// Valid reports whether the ID refers to a window.
func (id WindowID) Valid() bool {
	return id != 0
}
