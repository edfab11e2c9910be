package pdfmodel

// ColorKind tags the variant carried by Color, per spec.md §3.
type ColorKind int

const (
	ColorGray ColorKind = iota
	ColorRGB
	ColorCMYK
	ColorOther
)

// Color is a tagged variant over the PDF device color spaces. NewGray,
// NewRGB and NewCMYK clamp components to [0, 1]; NewOther stores its
// components as given. Conversions to RGB are lossless-defined as in
// spec.md §3 (matches the teacher's cmykToRGB in pkg/gopdf/operators.go).
type Color struct {
	Kind       ColorKind
	Gray       float64
	R, G, B    float64
	C, M, Y, K float64
	Other      []float64
}

func NewGray(g float64) Color { return Color{Kind: ColorGray, Gray: clamp01(g)} }

func NewRGB(r, g, b float64) Color {
	return Color{Kind: ColorRGB, R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

func NewCMYK(c, m, y, k float64) Color {
	return Color{Kind: ColorCMYK, C: clamp01(c), M: clamp01(m), Y: clamp01(y), K: clamp01(k)}
}

func NewOther(components []float64) Color {
	return Color{Kind: ColorOther, Other: append([]float64(nil), components...)}
}

// RGB converts any Color variant to its RGB representation.
func (c Color) RGB() (r, g, b float64) {
	switch c.Kind {
	case ColorGray:
		return c.Gray, c.Gray, c.Gray
	case ColorRGB:
		return c.R, c.G, c.B
	case ColorCMYK:
		return (1 - c.C) * (1 - c.K), (1 - c.M) * (1 - c.K), (1 - c.Y) * (1 - c.K)
	default:
		if len(c.Other) >= 3 {
			return c.Other[0], c.Other[1], c.Other[2]
		}
		return 0, 0, 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
