package table

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// buildCells implements spec.md §4.4 step 5: a cell is the rectangle
// between two consecutive distinct x-coordinates and two consecutive
// distinct y-coordinates of the intersection set, kept only when all
// four corners are present (within tolerance) in that set.
func buildCells(points []pdfmodel.Intersection, xTol, yTol float64) []pdfmodel.Cell {
	xs := distinctCoords(points, func(p pdfmodel.Intersection) float64 { return p.X }, xTol)
	ys := distinctCoords(points, func(p pdfmodel.Intersection) float64 { return p.Y }, yTol)

	has := func(x, y float64) bool {
		for _, p := range points {
			if absF(p.X-x) <= xTol && absF(p.Y-y) <= yTol {
				return true
			}
		}
		return false
	}

	var cells []pdfmodel.Cell
	for i := 0; i+1 < len(xs); i++ {
		for j := 0; j+1 < len(ys); j++ {
			x0, x1 := xs[i], xs[i+1]
			y0, y1 := ys[j], ys[j+1]
			if has(x0, y0) && has(x1, y0) && has(x0, y1) && has(x1, y1) {
				cells = append(cells, pdfmodel.Cell{
					BBox: pdfmodel.BBox{X0: x0, Top: y0, X1: x1, Bottom: y1},
				})
			}
		}
	}
	return cells
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
