package page

import (
	"github.com/plumbergo/pdfplumb/internal/geometry"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// Edges derives table-finder edges from the page's drawn lines, rects,
// and curves (spec.md §4.3).
func (p *Page) Edges() []pdfmodel.Edge {
	return geometry.DeriveEdges(p.lines, p.rects, p.curves)
}
