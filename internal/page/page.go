// Package page is the per-page facade of spec.md §4.6: it owns a
// page's already-interpreted geometry (chars, lines, rects, curves,
// images) and exposes the derived-data operations (edges, words,
// tables, text, search) callers actually want.
package page

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// Page is one fully-interpreted page. Construction (running the
// content-stream interpreter) happens in internal/document, which
// owns the pdfcpu context Page needs none of.
type Page struct {
	Geometry pdfmodel.PageGeometry
	Number   int // 1-based

	chars  []pdfmodel.Char
	lines  []pdfmodel.Line
	rects  []pdfmodel.Rect
	curves []pdfmodel.Curve
	images []pdfmodel.Image

	warnings []pdfmodel.Warning
}

// New builds a Page from the raw event slices a content.Interpreter
// run produced.
func New(geom pdfmodel.PageGeometry, number int, chars []pdfmodel.Char, lines []pdfmodel.Line, rects []pdfmodel.Rect, curves []pdfmodel.Curve, images []pdfmodel.Image, warnings []pdfmodel.Warning) *Page {
	return &Page{
		Geometry: geom,
		Number:   number,
		chars:    chars,
		lines:    lines,
		rects:    rects,
		curves:   curves,
		images:   images,
		warnings: warnings,
	}
}

func (p *Page) Chars() []pdfmodel.Char   { return p.chars }
func (p *Page) Lines() []pdfmodel.Line   { return p.lines }
func (p *Page) Rects() []pdfmodel.Rect   { return p.rects }
func (p *Page) Curves() []pdfmodel.Curve { return p.curves }
func (p *Page) Images() []pdfmodel.Image { return p.images }
func (p *Page) Warnings() []pdfmodel.Warning { return p.warnings }
