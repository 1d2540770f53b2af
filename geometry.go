package azure

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/gogpu/azure/backend"
)

// Point2D is a point in draw-target coordinates.
type Point2D struct {
	X, Y float32
}

// Pt is shorthand for Point2D{X: x, Y: y}.
func Pt(x, y float32) Point2D {
	return Point2D{X: x, Y: y}
}

func (p Point2D) wire() backend.Point {
	return backend.Point{X: p.X, Y: p.Y}
}

// Size2D is a fractional size.
type Size2D struct {
	Width, Height float32
}

func (s Size2D) wire() backend.Size {
	return backend.Size{Width: s.Width, Height: s.Height}
}

// IntSize is a size in whole pixels.
type IntSize struct {
	Width, Height int32
}

// IntSizeFromImage returns the size of r.
func IntSizeFromImage(r image.Rectangle) IntSize {
	return IntSize{Width: int32(r.Dx()), Height: int32(r.Dy())}
}

// Empty reports whether s has no pixels.
func (s IntSize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s IntSize) wire() backend.IntSize {
	return backend.IntSize{Width: s.Width, Height: s.Height}
}

func intSizeFromWire(s backend.IntSize) IntSize {
	return IntSize{Width: s.Width, Height: s.Height}
}

// Rect is an axis-aligned rectangle given by its origin and size.
type Rect struct {
	X, Y, Width, Height float32
}

// RectFromImage converts an integer rectangle.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{
		X:      float32(r.Min.X),
		Y:      float32(r.Min.Y),
		Width:  float32(r.Dx()),
		Height: float32(r.Dy()),
	}
}

// NewRect returns the rectangle with origin p and size s.
func NewRect(p Point2D, s Size2D) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point2D { return Point2D{X: r.X, Y: r.Y} }

// Size returns the rectangle size.
func (r Rect) Size() Size2D { return Size2D{Width: r.Width, Height: r.Height} }

// RoundOut returns the smallest rectangle with integer edges containing r.
func (r Rect) RoundOut() Rect {
	x0, y0 := math32.Floor(r.X), math32.Floor(r.Y)
	x1, y1 := math32.Ceil(r.X+r.Width), math32.Ceil(r.Y+r.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ImageRect returns r rounded out to an image.Rectangle.
func (r Rect) ImageRect() image.Rectangle {
	o := r.RoundOut()
	return image.Rect(int(o.X), int(o.Y), int(o.X+o.Width), int(o.Y+o.Height))
}

func (r Rect) wire() backend.Rect {
	return backend.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Matrix2D is a 2x3 affine transform in row-vector convention:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
type Matrix2D struct {
	M11, M12 float32
	M21, M22 float32
	M31, M32 float32
}

// Identity returns the identity transform.
func Identity() Matrix2D {
	return Matrix2D{M11: 1, M22: 1}
}

// Translation returns a transform that moves by (x, y).
func Translation(x, y float32) Matrix2D {
	return Matrix2D{M11: 1, M22: 1, M31: x, M32: y}
}

// Scaling returns a transform that scales by (sx, sy).
func Scaling(sx, sy float32) Matrix2D {
	return Matrix2D{M11: sx, M22: sy}
}

// Rotation returns a transform that rotates by theta radians.
func Rotation(theta float32) Matrix2D {
	s, c := math32.Sincos(theta)
	return Matrix2D{M11: c, M12: s, M21: -s, M22: c}
}

// Then returns the transform that applies m and then n.
func (m Matrix2D) Then(n Matrix2D) Matrix2D {
	return Matrix2D{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		M31: m.M31*n.M11 + m.M32*n.M21 + n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

// Transform applies m to p.
func (m Matrix2D) Transform(p Point2D) Point2D {
	return Point2D{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix2D) Determinant() float32 {
	return m.M11*m.M22 - m.M12*m.M21
}

// Inverse returns the inverse transform. ok is false when m is singular.
func (m Matrix2D) Inverse() (inv Matrix2D, ok bool) {
	det := m.Determinant()
	if math32.Abs(det) < 1e-12 || math32.IsNaN(det) {
		return Matrix2D{}, false
	}
	d := 1 / det
	inv.M11 = m.M22 * d
	inv.M12 = -m.M12 * d
	inv.M21 = -m.M21 * d
	inv.M22 = m.M11 * d
	inv.M31 = (m.M21*m.M32 - m.M22*m.M31) * d
	inv.M32 = (m.M12*m.M31 - m.M11*m.M32) * d
	return inv, true
}

func (m Matrix2D) wire() backend.Matrix {
	return backend.Matrix{
		M11: m.M11, M12: m.M12,
		M21: m.M21, M22: m.M22,
		M31: m.M31, M32: m.M32,
	}
}
