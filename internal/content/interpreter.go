// Package content implements the content-stream interpreter of
// spec.md §4.1: it turns a decoded page/Form content stream into the
// shared Char/Line/Rect/Curve/Image event stream, tracking graphics
// state, text state, and marked-content nesting the way a painting
// interpreter would, but emitting structured records instead of
// drawing to a surface.
package content

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// maxFormDepth bounds Form XObject recursion (spec.md §4.1); a page
// that nests forms deeper than this is treated as malformed and the
// interpreter stops descending rather than risking runaway recursion.
const maxFormDepth = 32

// Collector receives events as the interpreter walks a content stream.
// The page package implements this to build its per-page slices.
type Collector interface {
	AddChar(pdfmodel.Char)
	AddLine(pdfmodel.Line)
	AddRect(pdfmodel.Rect)
	AddCurve(pdfmodel.Curve)
	AddImage(pdfmodel.Image)
	Warn(code, message string)
}

// Interpreter walks one page's content stream (plus any Form XObjects
// it invokes) and reports events to a Collector. Grounded on the
// teacher's pkg/gopdf/operators.go RenderContext, with CairoCtx/path
// rasterization replaced by geometry bookkeeping and event emission.
type Interpreter struct {
	Graphics      *GraphicsStateStack
	Text          *TextState
	MarkedContent *MarkedContentStack
	Resources     *Resources
	Path          *pathBuilder

	collector  Collector
	pageHeight float64
	pageNum    int
	formDepth  int
	inText     bool
}

func NewInterpreter(resources *Resources, pageHeight float64, pageNum int, collector Collector) *Interpreter {
	return &Interpreter{
		Graphics:      NewGraphicsStateStack(),
		Text:          NewTextState(),
		MarkedContent: &MarkedContentStack{},
		Resources:     resources,
		Path:          newPathBuilder(),
		collector:     collector,
		pageHeight:    pageHeight,
		pageNum:       pageNum,
	}
}

// Run executes a content stream. Malformed individual operators are
// skipped with a recorded warning rather than aborting the page, per
// spec.md §4.1's failure-tolerance rule; a completely undecodable
// stream is the caller's concern (it never reaches Run).
func (ip *Interpreter) Run(data []byte) error {
	tokens := tokenize(data)
	var stack []operand

	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t {
		case "[":
			arr, ni := parseArray(tokens, i+1)
			stack = append(stack, operand(arr))
			i = ni
			continue
		case "<<":
			dict, ni := parseDict(tokens, i+1)
			stack = append(stack, operand(dict))
			i = ni
			continue
		}

		if isKnownOperator(string(t)) {
			if err := ip.dispatch(string(t), stack); err != nil {
				ip.collector.Warn("operator", fmt.Sprintf("%s: %v", t, err))
			}
			stack = nil
			i++
			continue
		}

		stack = append(stack, parseScalar(t))
		i++
	}
	return nil
}

func operandFloat(v operand) float64 {
	switch x := v.(type) {
	case float64:
		return x
	}
	return 0
}

func operandString(v operand) string {
	switch x := v.(type) {
	case string:
		return x
	case name:
		return string(x)
	}
	return ""
}

func operandName(v operand) string {
	if n, ok := v.(name); ok {
		return string(n)
	}
	return operandString(v)
}

func operandArray(v operand) []operand {
	if a, ok := v.([]operand); ok {
		return a
	}
	return nil
}

// dispatch runs one operator against the current interpreter state.
// Grounded on pkg/gopdf/parser.go's createOperator switch and the
// per-operator Execute methods across operators.go/text_operators.go/
// xobject_operators.go, trimmed to the operators that affect extracted
// geometry/text/state rather than paint color/compositing detail.
func (ip *Interpreter) dispatch(opName string, args []operand) error {
	gs := ip.Graphics.Current()
	arg := func(i int) float64 {
		if i < len(args) {
			return operandFloat(args[i])
		}
		return 0
	}

	switch opName {
	case "q":
		ip.Graphics.Push()
	case "Q":
		ip.Graphics.Pop()
	case "cm":
		if len(args) < 6 {
			return errors.New("cm: too few operands")
		}
		m := pdfmodel.Matrix{A: arg(0), B: arg(1), C: arg(2), D: arg(3), E: arg(4), F: arg(5)}
		gs.CTM = m.Multiply(gs.CTM)
	case "w":
		gs.LineWidth = arg(0)
	case "J", "j", "M", "d", "ri", "i", "gs":
		// line-cap/join/miter/dash/rendering-intent/flatness/ExtGState:
		// paint-only, no effect on extracted geometry or text.
	case "m":
		ip.Path.moveTo(arg(0), arg(1))
	case "l":
		ip.Path.lineTo(arg(0), arg(1))
	case "c":
		ip.Path.curveTo(arg(0), arg(1), arg(2), arg(3), arg(4), arg(5))
	case "v":
		ip.Path.curveTo(ip.Path.curX, ip.Path.curY, arg(0), arg(1), arg(2), arg(3))
	case "y":
		ip.Path.curveTo(arg(0), arg(1), arg(2), arg(3), arg(2), arg(3))
	case "re":
		ip.Path.rectangle(arg(0), arg(1), arg(2), arg(3))
	case "h":
		ip.Path.closePath()
	case "S":
		ip.paintPath(true, false, false)
	case "s":
		ip.Path.closePath()
		ip.paintPath(true, false, false)
	case "f", "F":
		ip.paintPath(false, true, false)
	case "f*":
		ip.paintPath(false, true, true)
	case "B":
		ip.paintPath(true, true, false)
	case "B*":
		ip.paintPath(true, true, true)
	case "b":
		ip.Path.closePath()
		ip.paintPath(true, true, false)
	case "b*":
		ip.Path.closePath()
		ip.paintPath(true, true, true)
	case "n":
		ip.paintPath(false, false, false)
	case "W", "W*":
		gs.ClipActive = true
	case "RG":
		gs.StrokeColor = pdfmodel.NewRGB(arg(0), arg(1), arg(2))
	case "rg":
		gs.FillColor = pdfmodel.NewRGB(arg(0), arg(1), arg(2))
	case "G":
		gs.StrokeColor = pdfmodel.NewGray(arg(0))
	case "g":
		gs.FillColor = pdfmodel.NewGray(arg(0))
	case "K":
		gs.StrokeColor = pdfmodel.NewCMYK(arg(0), arg(1), arg(2), arg(3))
	case "k":
		gs.FillColor = pdfmodel.NewCMYK(arg(0), arg(1), arg(2), arg(3))
	case "SC", "SCN":
		gs.StrokeColor = colorFromComponents(args)
	case "sc", "scn":
		gs.FillColor = colorFromComponents(args)
	case "cs", "CS":
		// color space selection: tracked implicitly via sc/scn components.
	case "BT":
		ip.Text = NewTextState()
		ip.inText = true
	case "ET":
		ip.inText = false
	case "Tm":
		if len(args) < 6 {
			return errors.New("Tm: too few operands")
		}
		m := pdfmodel.Matrix{A: arg(0), B: arg(1), C: arg(2), D: arg(3), E: arg(4), F: arg(5)}
		ip.Text.TextMatrix = m
		ip.Text.TextLineMatrix = m
	case "Td":
		ip.textMoveTo(arg(0), arg(1))
	case "TD":
		ip.Text.Leading = -arg(1)
		ip.textMoveTo(arg(0), arg(1))
	case "T*":
		ip.textMoveTo(0, -ip.Text.Leading)
	case "Tc":
		ip.Text.CharSpacing = arg(0)
	case "Tw":
		ip.Text.WordSpacing = arg(0)
	case "Tz":
		ip.Text.HorizontalScaling = arg(0)
	case "TL":
		ip.Text.Leading = arg(0)
	case "Tf":
		if len(args) < 2 {
			return errors.New("Tf: too few operands")
		}
		fontName := operandName(args[0])
		ip.Text.FontSize = arg(1)
		font := ip.Resources.GetFont(fontName)
		if font == nil {
			ip.collector.Warn("font", "undefined font resource "+fontName)
		}
		ip.Text.Font = font
	case "Tr":
		ip.Text.RenderMode = int(arg(0))
	case "Ts":
		ip.Text.Rise = arg(0)
	case "Tj":
		ip.showText(operandString(arg0(args)), nil)
	case "'":
		ip.textMoveTo(0, -ip.Text.Leading)
		ip.showText(operandString(arg0(args)), nil)
	case "\"":
		if len(args) >= 3 {
			ip.Text.WordSpacing = arg(0)
			ip.Text.CharSpacing = arg(1)
			ip.textMoveTo(0, -ip.Text.Leading)
			ip.showText(operandString(args[2]), nil)
		}
	case "TJ":
		ip.showText("", operandArray(arg0(args)))
	case "Do":
		return ip.doXObject(operandName(arg0(args)))
	case "BI":
		// inline image: scanning its binary payload is out of scope for
		// text/geometry extraction; skipped as a no-op.
	case "BMC":
		ip.MarkedContent.Push(operandName(arg0(args)), nil)
	case "BDC":
		tag := ""
		if len(args) > 0 {
			tag = operandName(args[0])
		}
		var mcid *int
		if len(args) > 1 {
			if dict, ok := args[1].(map[string]operand); ok {
				if v, ok := dict["MCID"]; ok {
					f := operandFloat(v)
					id := int(f)
					mcid = &id
				}
			}
		}
		ip.MarkedContent.Push(tag, mcid)
	case "EMC":
		ip.MarkedContent.Pop()
	case "sh", "d0", "d1":
		// shading/glyph-metrics-declaration: paint-only.
	default:
		return errors.Errorf("unsupported operator %q", opName)
	}
	return nil
}

func arg0(args []operand) operand {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

func colorFromComponents(args []operand) pdfmodel.Color {
	var nums []float64
	for _, a := range args {
		if _, isName := a.(name); isName {
			continue
		}
		nums = append(nums, operandFloat(a))
	}
	switch len(nums) {
	case 1:
		return pdfmodel.NewGray(nums[0])
	case 3:
		return pdfmodel.NewRGB(nums[0], nums[1], nums[2])
	case 4:
		return pdfmodel.NewCMYK(nums[0], nums[1], nums[2], nums[3])
	default:
		return pdfmodel.NewOther(nums)
	}
}

// textMoveTo applies a Td/TD/T* style translation: Tlm = translation x
// Tlm, Tm = Tlm. Grounded on pkg/gopdf/text_operators.go
// OpMoveTextPosition/OpMoveToNextLine.
func (ip *Interpreter) textMoveTo(tx, ty float64) {
	translation := pdfmodel.Translation(tx, ty)
	ip.Text.TextLineMatrix = translation.Multiply(ip.Text.TextLineMatrix)
	ip.Text.TextMatrix = ip.Text.TextLineMatrix
}

// paintPath converts the accumulated path into Line/Rect/Curve events
// in page (top-left-origin) coordinates, then clears it. Each subpath
// is classified independently: a 4-point axis-aligned subpath becomes
// a Rect (or a Line when its width or height is effectively zero,
// whatever the paint mode, matching the "drawn ruling" convention of
// scanned table borders); a 2-point subpath becomes a Line; anything
// else becomes a Curve.
func (ip *Interpreter) paintPath(stroke, fill, evenOdd bool) {
	_ = evenOdd
	gs := ip.Graphics.Current()
	for _, sp := range ip.Path.subpaths {
		transformed := make([]pdfmodel.Point, len(sp.points))
		for i, pt := range sp.points {
			x, y := gs.CTM.Transform(pt.X, pt.Y)
			transformed[i] = pdfmodel.Point{X: x, Y: ip.pageHeight - y}
		}
		if x0, y0, x1, y1, ok := isAxisAlignedRect(transformed); ok {
			bbox := pdfmodel.BBox{X0: x0, Top: y0, X1: x1, Bottom: y1}
			if bbox.Height() < 1e-3 || bbox.Width() < 1e-3 {
				ip.collector.AddLine(pdfmodel.Line{
					BBox: bbox, LineWidth: gs.LineWidth,
					Orientation: pdfmodel.OrientationOf(bbox),
					StrokeColor: gs.StrokeColor, Page: ip.pageNum,
				})
				continue
			}
			ip.collector.AddRect(pdfmodel.Rect{
				BBox: bbox, LineWidth: gs.LineWidth, Stroke: stroke, Fill: fill,
				StrokeColor: gs.StrokeColor, FillColor: gs.FillColor, Page: ip.pageNum,
			})
			continue
		}
		if len(transformed) == 2 {
			bbox := pdfmodel.BBox{
				X0: minF(transformed[0].X, transformed[1].X), X1: maxF(transformed[0].X, transformed[1].X),
				Top: minF(transformed[0].Y, transformed[1].Y), Bottom: maxF(transformed[0].Y, transformed[1].Y),
			}
			ip.collector.AddLine(pdfmodel.Line{
				BBox: bbox, LineWidth: gs.LineWidth,
				Orientation: pdfmodel.OrientationOf(bbox),
				StrokeColor: gs.StrokeColor, Page: ip.pageNum,
			})
			continue
		}
		if len(transformed) > 0 {
			bbox := boundingBoxOf(transformed)
			ip.collector.AddCurve(pdfmodel.Curve{
				BBox: bbox, Points: transformed, Stroke: stroke, Fill: fill,
				StrokeColor: gs.StrokeColor, FillColor: gs.FillColor, Page: ip.pageNum,
			})
		}
	}
	ip.Path.reset()
}

func boundingBoxOf(pts []pdfmodel.Point) pdfmodel.BBox {
	b := pdfmodel.BBox{X0: pts[0].X, X1: pts[0].X, Top: pts[0].Y, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		if p.X < b.X0 {
			b.X0 = p.X
		}
		if p.X > b.X1 {
			b.X1 = p.X
		}
		if p.Y < b.Top {
			b.Top = p.Y
		}
		if p.Y > b.Bottom {
			b.Bottom = p.Y
		}
	}
	return b
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

var operatorNames = map[string]bool{
	"q": true, "Q": true, "cm": true, "w": true, "J": true, "j": true, "M": true,
	"d": true, "ri": true, "i": true, "gs": true, "m": true, "l": true, "c": true,
	"v": true, "y": true, "re": true, "h": true, "S": true, "s": true, "f": true,
	"F": true, "f*": true, "B": true, "B*": true, "b": true, "b*": true, "n": true,
	"W": true, "W*": true, "RG": true, "rg": true, "G": true, "g": true, "K": true,
	"k": true, "SC": true, "SCN": true, "sc": true, "scn": true, "cs": true, "CS": true,
	"BT": true, "ET": true, "Tm": true, "Td": true, "TD": true, "T*": true, "Tc": true,
	"Tw": true, "Tz": true, "TL": true, "Tf": true, "Tr": true, "Ts": true, "Tj": true,
	"'": true, "\"": true, "TJ": true, "Do": true, "BI": true, "ID": true, "EI": true,
	"BMC": true, "BDC": true, "EMC": true, "sh": true, "d0": true, "d1": true,
	"MP": true, "DP": true,
}

func isKnownOperator(t string) bool {
	return operatorNames[t]
}
