package content

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/encoding"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

type fakeCollector struct {
	chars    []pdfmodel.Char
	lines    []pdfmodel.Line
	rects    []pdfmodel.Rect
	curves   []pdfmodel.Curve
	images   []pdfmodel.Image
	warnings []string
}

func (f *fakeCollector) AddChar(c pdfmodel.Char)   { f.chars = append(f.chars, c) }
func (f *fakeCollector) AddLine(l pdfmodel.Line)   { f.lines = append(f.lines, l) }
func (f *fakeCollector) AddRect(r pdfmodel.Rect)   { f.rects = append(f.rects, r) }
func (f *fakeCollector) AddCurve(c pdfmodel.Curve) { f.curves = append(f.curves, c) }
func (f *fakeCollector) AddImage(i pdfmodel.Image) { f.images = append(f.images, i) }
func (f *fakeCollector) Warn(code, message string) {
	f.warnings = append(f.warnings, code+": "+message)
}

func newTestInterpreter(collector Collector) *Interpreter {
	res := NewResources()
	res.Font["F1"] = &encoding.Font{BaseEncoding: encoding.WinAnsiEncoding}
	return NewInterpreter(res, 792, 1, collector)
}

func TestRunEmitsCharsForSimpleText(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("BT /F1 12 Tf 100 700 Td (Hi) Tj ET")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fc.chars) != 2 {
		t.Fatalf("expected 2 chars, got %d: %+v", len(fc.chars), fc.chars)
	}
	if fc.chars[0].Text != "H" || fc.chars[1].Text != "i" {
		t.Fatalf("unexpected char text: %q %q", fc.chars[0].Text, fc.chars[1].Text)
	}
	for _, c := range fc.chars {
		if c.Size != 12 {
			t.Fatalf("expected font size 12, got %v", c.Size)
		}
		if c.FontName != "" {
			t.Fatalf("expected empty font name since font.Name was never set, got %q", c.FontName)
		}
		if c.Page != 1 {
			t.Fatalf("expected page 1, got %d", c.Page)
		}
	}
	if fc.chars[1].BBox.X0 <= fc.chars[0].BBox.X0 {
		t.Fatalf("expected second char to advance rightward: %+v then %+v", fc.chars[0].BBox, fc.chars[1].BBox)
	}
}

func TestRunDrawsAxisAlignedRectAsRect(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("1 0 0 RG 10 20 100 50 re S")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fc.rects) != 1 {
		t.Fatalf("expected 1 rect, got %d: %+v", len(fc.rects), fc.rects)
	}
	r := fc.rects[0]
	if !r.Stroke || r.Fill {
		t.Fatalf("expected stroke-only rect, got %+v", r)
	}
	if r.BBox.X0 != 10 || r.BBox.X1 != 110 {
		t.Fatalf("unexpected rect x-extent: %+v", r.BBox)
	}
}

func TestRunDrawsThinRectAsLine(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("10 20 100 0.0001 re S")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fc.rects) != 0 {
		t.Fatalf("expected zero-height rect to become a line, not a rect: %+v", fc.rects)
	}
	if len(fc.lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %+v", len(fc.lines), fc.lines)
	}
}

func TestRunTracksGraphicsStackPushPop(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("2 w q 5 w Q")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ip.Graphics.Current().LineWidth; got != 2 {
		t.Fatalf("expected line width restored to 2 after Q, got %v", got)
	}
}

func TestRunUnbalancedQDoesNotUnderflowStack(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("Q Q Q")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ip.Graphics.Depth() != 1 {
		t.Fatalf("expected stack depth to stay at 1, got %d", ip.Graphics.Depth())
	}
}

func TestRunWarnsOnUnsupportedKnownOperator(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("ID")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.warnings) != 1 {
		t.Fatalf("expected exactly 1 warning, got %d: %v", len(fc.warnings), fc.warnings)
	}
}

func TestRunWarnsOnTextWithNoFontSet(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("BT (hi) Tj ET")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.chars) != 0 {
		t.Fatalf("expected no chars emitted without a font, got %d", len(fc.chars))
	}
	if len(fc.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(fc.warnings), fc.warnings)
	}
}

func TestDecodeCodesSingleBytePerCodeForSimpleFont(t *testing.T) {
	font := &encoding.Font{Kind: encoding.FontSimple}
	codes := decodeCodes("AB", font)
	want := []uint32{'A', 'B'}
	if len(codes) != len(want) || codes[0] != want[0] || codes[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, codes)
	}
}

func TestDecodeCodesDoubleBytePerCodeForIdentityType0(t *testing.T) {
	font := &encoding.Font{Kind: encoding.FontType0, CIDIdentity: true}
	codes := decodeCodes("\x00\x41\x00\x42", font)
	want := []uint32{0x0041, 0x0042}
	if len(codes) != len(want) || codes[0] != want[0] || codes[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, codes)
	}
}

func TestEmitCodesEmitsCharForEmptyResolvedText(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	cmap, err := encoding.ParseToUnicodeCMap([]byte("beginbfchar\n<0041> <>\nendbfchar\n"))
	if err != nil {
		t.Fatalf("unexpected cmap parse error: %v", err)
	}
	ip.Resources.Font["F2"] = &encoding.Font{ToUnicode: cmap}

	if err := ip.Run([]byte("BT /F2 12 Tf (A) Tj ET")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.chars) != 1 {
		t.Fatalf("expected 1 char even though the resolved text is empty, got %d", len(fc.chars))
	}
	if fc.chars[0].Text != "" {
		t.Fatalf("expected empty resolved text, got %q", fc.chars[0].Text)
	}
	if fc.chars[0].CharCode != 'A' {
		t.Fatalf("expected char code %d, got %d", 'A', fc.chars[0].CharCode)
	}
}

func TestMarkedContentCurrentCarriesMCIDOntoChar(t *testing.T) {
	fc := &fakeCollector{}
	ip := newTestInterpreter(fc)

	if err := ip.Run([]byte("/Span << /MCID 3 >> BDC BT /F1 12 Tf (A) Tj ET EMC")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.chars) != 1 {
		t.Fatalf("expected 1 char, got %d", len(fc.chars))
	}
	c := fc.chars[0]
	if c.StructTag != "Span" {
		t.Fatalf("expected struct tag %q, got %q", "Span", c.StructTag)
	}
	if c.MCID == nil || *c.MCID != 3 {
		t.Fatalf("expected MCID 3, got %v", c.MCID)
	}
}
