package content

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// subpath is one m...h run of a path under construction, in user space
// (pre-CTM). points also records the intermediate control/anchor
// points supplied by c/v/y, so a later-painted subpath can be classified
// as a Curve rather than a Line/Rect when it is not a 4-point
// axis-aligned rectangle.
type subpath struct {
	points []pdfmodel.Point
	closed bool
}

// pathBuilder accumulates path-construction operators (m/l/c/v/y/re/h)
// between the last painting operator and the next one, matching the
// PDF path-construction/painting split (spec.md §4.1).
type pathBuilder struct {
	subpaths []subpath
	current  *subpath
	curX     float64
	curY     float64
	startX   float64
	startY   float64
}

func newPathBuilder() *pathBuilder { return &pathBuilder{} }

func (p *pathBuilder) moveTo(x, y float64) {
	p.subpaths = append(p.subpaths, subpath{points: []pdfmodel.Point{{X: x, Y: y}}})
	p.current = &p.subpaths[len(p.subpaths)-1]
	p.curX, p.curY = x, y
	p.startX, p.startY = x, y
}

func (p *pathBuilder) lineTo(x, y float64) {
	if p.current == nil {
		p.moveTo(x, y)
		return
	}
	p.current.points = append(p.current.points, pdfmodel.Point{X: x, Y: y})
	p.curX, p.curY = x, y
}

func (p *pathBuilder) curveTo(x1, y1, x2, y2, x3, y3 float64) {
	if p.current == nil {
		p.moveTo(p.curX, p.curY)
	}
	p.current.points = append(p.current.points,
		pdfmodel.Point{X: x1, Y: y1}, pdfmodel.Point{X: x2, Y: y2}, pdfmodel.Point{X: x3, Y: y3})
	p.curX, p.curY = x3, y3
}

func (p *pathBuilder) rectangle(x, y, w, h float64) {
	p.moveTo(x, y)
	p.current.points = []pdfmodel.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
	p.current.closed = true
	p.curX, p.curY = x, y
}

func (p *pathBuilder) closePath() {
	if p.current != nil {
		p.current.closed = true
		p.curX, p.curY = p.startX, p.startY
	}
}

func (p *pathBuilder) reset() {
	p.subpaths = nil
	p.current = nil
}

// isAxisAlignedRect reports whether a 4- or 5-point subpath (the 5th
// point closing back to the first is tolerated) forms an axis-aligned
// rectangle, the shape re draws and the common case for ruled-line
// table borders drawn as filled boxes.
func isAxisAlignedRect(pts []pdfmodel.Point) (x0, y0, x1, y1 float64, ok bool) {
	n := len(pts)
	if n == 5 && pts[0] == pts[4] {
		n = 4
	}
	if n != 4 {
		return 0, 0, 0, 0, false
	}
	xs := map[float64]bool{}
	ys := map[float64]bool{}
	for _, pt := range pts[:4] {
		xs[pt.X] = true
		ys[pt.Y] = true
	}
	if len(xs) != 2 || len(ys) != 2 {
		return 0, 0, 0, 0, false
	}
	minX, maxX := extent(xs)
	minY, maxY := extent(ys)
	return minX, minY, maxX, maxY, true
}

func extent(set map[float64]bool) (min, max float64) {
	first := true
	for v := range set {
		if first || v < min {
			min = v
		}
		if first || v > max {
			max = v
		}
		first = false
	}
	return min, max
}
