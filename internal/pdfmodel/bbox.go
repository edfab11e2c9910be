package pdfmodel

import "math"

// BBox is an axis-aligned bounding box in top-left page coordinates:
// y increases downward, x0 <= x1, top <= bottom.
type BBox struct {
	X0, Top, X1, Bottom float64
}

func (b BBox) Width() float64  { return b.X1 - b.X0 }
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Valid reports whether the box satisfies the universal invariant from
// spec.md §8: x0 <= x1 and top <= bottom.
func (b BBox) Valid() bool {
	return b.X0 <= b.X1 && b.Top <= b.Bottom
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0:     math.Min(b.X0, other.X0),
		Top:    math.Min(b.Top, other.Top),
		X1:     math.Max(b.X1, other.X1),
		Bottom: math.Max(b.Bottom, other.Bottom),
	}
}

// UnionAll folds Union over a non-empty slice of boxes.
func UnionAll(boxes []BBox) BBox {
	if len(boxes) == 0 {
		return BBox{}
	}
	acc := boxes[0]
	for _, b := range boxes[1:] {
		acc = acc.Union(b)
	}
	return acc
}

// CenterX and CenterY are used by table text assignment and word
// clustering, which compare char/word centers against cell/line bounds.
func (b BBox) CenterX() float64 { return (b.X0 + b.X1) / 2 }
func (b BBox) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Expand grows the box by dx on each side horizontally and dy
// vertically; used by table text assignment tolerances.
func (b BBox) Expand(dx, dy float64) BBox {
	return BBox{X0: b.X0 - dx, Top: b.Top - dy, X1: b.X1 + dx, Bottom: b.Bottom + dy}
}

// Contains reports whether the point (x, y) lies within the box.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Top && y <= b.Bottom
}
