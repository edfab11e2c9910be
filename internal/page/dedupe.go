package page

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// DedupeOptions controls duplicate-character removal (an optional page
// operation, off by default): some PDF generators draw the same glyph
// twice at nearly the same position to fake bold, or do so as an
// encoding bug. Mirrors the original dedupe_chars/DedupeOptions design
// (pdfplumber(Py)'s Page.dedupe_chars, carried over to this Go build
// since it enriches the word/text pipeline without requiring a new
// dependency).
type DedupeOptions struct {
	// Tolerance is the maximum distance in points between two chars'
	// (X0, Top) to still treat them as the same glyph. Default 1.0.
	Tolerance float64
	// ExtraAttrs lists additional attributes that must also match.
	// Supported: "fontname", "size", "upright", "stroking_color",
	// "non_stroking_color". Default: fontname and size.
	ExtraAttrs []string
}

func NewDedupeOptions() DedupeOptions {
	return DedupeOptions{Tolerance: 1.0, ExtraAttrs: []string{"fontname", "size"}}
}

// DedupeChars returns a new slice with duplicate overlapping
// characters removed, keeping the first occurrence of each. The input
// slice is left untouched.
func DedupeChars(chars []pdfmodel.Char, opts DedupeOptions) []pdfmodel.Char {
	kept := make([]pdfmodel.Char, 0, len(chars))
	for _, ch := range chars {
		dominated := false
		for _, k := range kept {
			if isDuplicateChar(k, ch, opts) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, ch)
		}
	}
	return kept
}

func isDuplicateChar(a, b pdfmodel.Char, opts DedupeOptions) bool {
	if a.Text != b.Text {
		return false
	}
	if absF(a.BBox.X0-b.BBox.X0) > opts.Tolerance || absF(a.BBox.Top-b.BBox.Top) > opts.Tolerance {
		return false
	}
	for _, attr := range opts.ExtraAttrs {
		if !charAttrMatches(a, b, attr) {
			return false
		}
	}
	return true
}

func charAttrMatches(a, b pdfmodel.Char, attr string) bool {
	switch attr {
	case "fontname":
		return a.FontName == b.FontName
	case "size":
		return a.Size == b.Size
	case "upright":
		return a.Upright == b.Upright
	case "stroking_color":
		return colorsEqual(a.StrokeColor, b.StrokeColor)
	case "non_stroking_color":
		return colorsEqual(a.FillColor, b.FillColor)
	default:
		return true
	}
}

func colorsEqual(a, b *pdfmodel.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case pdfmodel.ColorGray:
		return a.Gray == b.Gray
	case pdfmodel.ColorRGB:
		return a.R == b.R && a.G == b.G && a.B == b.B
	case pdfmodel.ColorCMYK:
		return a.C == b.C && a.M == b.M && a.Y == b.Y && a.K == b.K
	default:
		if len(a.Other) != len(b.Other) {
			return false
		}
		for i := range a.Other {
			if a.Other[i] != b.Other[i] {
				return false
			}
		}
		return true
	}
}
