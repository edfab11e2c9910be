// Package svgdebug renders a page's chars/lines/rects/edges/tables as
// a reproducible line-drawing SVG for visual diagnosis (spec.md §6);
// it is not part of the extraction contract. Grounded on
// pkg/gopdf/surface.go's psSurface, the teacher's one real from-scratch
// vector-format writer (its svgSurface is a thin Cairo-backed stub with
// no Go-side drawing code): a bufio.Writer fed by fmt.Fprintf calls,
// the same direct-text-format-emission style used there.
package svgdebug

import (
	"bufio"
	"fmt"
	"io"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// Styles controls the stroke colors used per element kind. A nil
// Input.Styles selects the default palette below; a non-nil Styles is
// used as given, so an empty field yields an empty stroke color.
type Styles struct {
	CharColor  string
	LineColor  string
	RectColor  string
	EdgeColor  string
	TableColor string
}

func defaultStyles() Styles {
	return Styles{
		CharColor:  "#2563eb",
		LineColor:  "#16a34a",
		RectColor:  "#ca8a04",
		EdgeColor:  "#dc2626",
		TableColor: "#9333ea",
	}
}

// Input is everything one debug render draws; callers pass whichever
// of these slices they want visible, nil slices are simply skipped.
type Input struct {
	Width, Height float64
	Chars         []pdfmodel.Char
	Lines         []pdfmodel.Line
	Rects         []pdfmodel.Rect
	Curves        []pdfmodel.Curve
	Edges         []pdfmodel.Edge
	Tables        []pdfmodel.Table
	Styles        *Styles
}

// Render writes the SVG document to w. Output is deterministic: the
// same Input always produces byte-identical SVG, since every drawn
// element's order follows its slice's order with no map iteration in
// between.
func Render(w io.Writer, in Input) error {
	styles := defaultStyles()
	if in.Styles != nil {
		styles = *in.Styles
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.2f\" height=\"%.2f\" viewBox=\"0 0 %.2f %.2f\">\n",
		in.Width, in.Height, in.Width, in.Height)
	fmt.Fprintf(bw, "<rect x=\"0\" y=\"0\" width=\"%.2f\" height=\"%.2f\" fill=\"white\"/>\n", in.Width, in.Height)

	for _, r := range in.Rects {
		fmt.Fprintf(bw, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.75\"/>\n",
			r.BBox.X0, r.BBox.Top, r.BBox.Width(), r.BBox.Height(), styles.RectColor)
	}

	for _, l := range in.Lines {
		fmt.Fprintf(bw, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.75\"/>\n",
			l.BBox.X0, l.BBox.Top, l.BBox.X1, l.BBox.Bottom, styles.LineColor)
	}

	for _, c := range in.Curves {
		writePolyline(bw, c.Points, "none", styles.LineColor)
	}

	for _, e := range in.Edges {
		fmt.Fprintf(bw, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"0.5\" stroke-dasharray=\"2,2\"/>\n",
			e.BBox.X0, e.BBox.Top, e.BBox.X1, e.BBox.Bottom, styles.EdgeColor)
	}

	for _, ch := range in.Chars {
		fmt.Fprintf(bw, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.25\"/>\n",
			ch.BBox.X0, ch.BBox.Top, ch.BBox.Width(), ch.BBox.Height(), styles.CharColor)
	}

	for _, t := range in.Tables {
		fmt.Fprintf(bw, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-width=\"1.5\"/>\n",
			t.BBox.X0, t.BBox.Top, t.BBox.Width(), t.BBox.Height(), styles.TableColor)
		for _, cell := range t.Cells {
			fmt.Fprintf(bw, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
				cell.BBox.X0, cell.BBox.Top, cell.BBox.Width(), cell.BBox.Height(), styles.TableColor)
		}
	}

	fmt.Fprint(bw, "</svg>\n")
	return bw.Flush()
}

func writePolyline(w io.Writer, pts []pdfmodel.Point, fill, stroke string) {
	if len(pts) == 0 {
		return
	}
	fmt.Fprint(w, "<polyline points=\"")
	for i, p := range pts {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(w, "\" fill=\"%s\" stroke=\"%s\" stroke-width=\"0.5\"/>\n", fill, stroke)
}
