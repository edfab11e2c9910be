package encoding

// FontKind distinguishes the two width/encoding regimes a PDF font
// dictionary falls into, per spec.md §4.2.
type FontKind int

const (
	FontSimple FontKind = iota // Type1, TrueType, MMType1
	FontType0                  // composite/CID-keyed
)

// CIDWidthRange is a /W array entry for a composite font: either a
// single width applied to the whole CID range, or an explicit array.
type CIDWidthRange struct {
	StartCID uint16
	EndCID   uint16
	Width    float64
	Widths   []float64
}

// FontWidths carries the width table for either font regime. Grounded
// on the teacher's text_operators.go FontWidths/GetWidth, generalized
// to live independently of the render-time Font struct.
type FontWidths struct {
	FirstChar int
	LastChar  int
	Widths    []float64

	CIDWidths map[uint32]float64
	CIDRanges []CIDWidthRange
}

// GetWidth returns a glyph's advance width in 1/1000 em, falling back
// through DefaultWidth/MissingWidth to the universal default of 500
// when no table entry covers the code, matching the teacher's
// fallback order exactly.
func (w *FontWidths) GetWidth(code uint32, kind FontKind, defaultWidth, missingWidth float64) float64 {
	if w == nil {
		if defaultWidth > 0 {
			return defaultWidth
		}
		return 500.0
	}

	if kind == FontType0 || len(w.CIDWidths) > 0 || len(w.CIDRanges) > 0 {
		if width, ok := w.CIDWidths[code]; ok && width != 0 {
			return width
		}
		for _, r := range w.CIDRanges {
			if code < uint32(r.StartCID) || code > uint32(r.EndCID) {
				continue
			}
			if r.Width > 0 {
				return r.Width
			}
			if len(r.Widths) > 0 {
				offset := int(code - uint32(r.StartCID))
				if offset < len(r.Widths) && r.Widths[offset] != 0 {
					return r.Widths[offset]
				}
			}
		}
		if defaultWidth > 0 {
			return defaultWidth
		}
		if missingWidth > 0 {
			return missingWidth
		}
		return 500.0
	}

	if len(w.Widths) > 0 {
		idx := int(code)
		if idx >= w.FirstChar && idx <= w.LastChar {
			offset := idx - w.FirstChar
			if offset < len(w.Widths) && w.Widths[offset] != 0 {
				return w.Widths[offset]
			}
		}
	}
	if missingWidth > 0 {
		return missingWidth
	}
	return 500.0
}

// Font is the resolved, extraction-time view of a PDF font resource:
// enough to turn a content-stream character code into text and an
// advance width, independent of any rendering concern.
type Font struct {
	Name     string
	BaseFont string
	Kind     FontKind

	// Simple-font encoding chain.
	BaseEncoding StandardEncodingName
	Differences  map[byte]string // code -> glyph name override
	Symbolic     bool

	// Composite-font chain.
	ToUnicode   *ToUnicodeCMap
	CIDIdentity bool // Identity-H/Identity-V: CID == code, no CMap indirection
	CJK         CJKEncoding

	Widths       *FontWidths
	DefaultWidth float64
	MissingWidth float64
}

// Resolve turns a character code into text, per the three-step chain
// of spec.md §4.2: ToUnicode first, then explicit encoding, then an
// implicit per-font-type default. ok is false only when every step
// fails to produce a rune, in which case callers should emit U+FFFD
// and record a font warning.
func (f *Font) Resolve(code uint32) (string, bool) {
	if f.ToUnicode != nil {
		if s, ok := f.ToUnicode.Lookup(code); ok {
			return s, true
		}
	}

	if f.Kind == FontType0 {
		if f.CIDIdentity {
			return string(rune(code)), true
		}
		if f.CJK != CJKNone {
			if r, ok := DecodeCJKCode(f.CJK, code); ok {
				return string(r), true
			}
		}
		return string(replacementRune), false
	}

	if f.Differences != nil {
		if code <= 0xFF {
			if name, ok := f.Differences[byte(code)]; ok {
				if r, ok := RuneForGlyphName(name); ok {
					return string(r), true
				}
			}
		}
	}

	if code <= 0xFF {
		r := RuneForCode(f.BaseEncoding, byte(code))
		if r != replacementRune {
			return string(r), true
		}
	}

	return string(replacementRune), false
}

// GetWidth is a thin forwarder to FontWidths.GetWidth carrying this
// font's regime and fallback widths.
func (f *Font) GetWidth(code uint32) float64 {
	return f.Widths.GetWidth(code, f.Kind, f.DefaultWidth, f.MissingWidth)
}
