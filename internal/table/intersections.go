package table

import (
	"math"
	"sort"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// findIntersections implements spec.md §4.4 step 4: a horizontal edge
// H and vertical edge V intersect iff V.x falls within
// intersectionXTolerance of H's x-range and H.y falls within
// intersectionYTolerance of V's y-range. Results are de-duplicated by
// rounding to a fine grid, since two edges that both snapped to the
// same representative coordinate can otherwise report
// floating-point-distinct intersection points for what is really one
// grid line.
func findIntersections(horizontals, verticals []pdfmodel.Edge, xTol, yTol float64) []pdfmodel.Intersection {
	seen := map[[2]int64]pdfmodel.Intersection{}
	for _, h := range horizontals {
		for _, v := range verticals {
			if v.BBox.X0 < h.BBox.X0-xTol || v.BBox.X0 > h.BBox.X1+xTol {
				continue
			}
			if h.BBox.Top < v.BBox.Top-yTol || h.BBox.Top > v.BBox.Bottom+yTol {
				continue
			}
			x, y := v.BBox.X0, h.BBox.Top
			key := [2]int64{snapGrid(x), snapGrid(y)}
			if _, ok := seen[key]; !ok {
				seen[key] = pdfmodel.Intersection{X: x, Y: y}
			}
		}
	}
	out := make([]pdfmodel.Intersection, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Y != out[b].Y {
			return out[a].Y < out[b].Y
		}
		return out[a].X < out[b].X
	})
	return out
}

// gridResolution is the rounding grid used to de-duplicate
// intersection points; finer than any realistic snap tolerance so it
// never merges genuinely distinct grid lines.
const gridResolution = 0.1

func snapGrid(v float64) int64 {
	return int64(math.Round(v / gridResolution))
}

func distinctCoords(points []pdfmodel.Intersection, axis func(pdfmodel.Intersection) float64, tolerance float64) []float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = axis(p)
	}
	sort.Float64s(values)

	var out []float64
	for _, v := range values {
		if len(out) == 0 || v-out[len(out)-1] > tolerance {
			out = append(out, v)
		}
	}
	return out
}
