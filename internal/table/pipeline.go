package table

import (
	"sort"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// snapEdges groups parallel edges by their perpendicular coordinate
// (Top for horizontal, X0 for vertical) within the given tolerance and
// replaces each member's coordinate with the cluster mean, per spec.md
// §4.4 step 1. Edges are scanned once in coordinate order; an edge
// joins the current cluster if it falls within tolerance of that
// cluster's representative, else starts a new cluster.
func snapEdges(edges []pdfmodel.Edge, horizontal bool, tolerance float64) []pdfmodel.Edge {
	coord := func(e pdfmodel.Edge) float64 {
		if horizontal {
			return e.BBox.Top
		}
		return e.BBox.X0
	}

	idx := make([]int, len(edges))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return coord(edges[idx[a]]) < coord(edges[idx[b]]) })

	out := make([]pdfmodel.Edge, len(edges))
	copy(out, edges)

	var clusterSum float64
	var clusterCount int
	var clusterMembers []int
	flush := func() {
		if clusterCount == 0 {
			return
		}
		mean := clusterSum / float64(clusterCount)
		for _, i := range clusterMembers {
			if horizontal {
				h := out[i].BBox.Bottom - out[i].BBox.Top
				out[i].BBox.Top = mean
				out[i].BBox.Bottom = mean + h
			} else {
				w := out[i].BBox.X1 - out[i].BBox.X0
				out[i].BBox.X0 = mean
				out[i].BBox.X1 = mean + w
			}
		}
		clusterSum, clusterCount, clusterMembers = 0, 0, nil
	}

	var repr float64
	started := false
	for _, i := range idx {
		c := coord(edges[i])
		if !started || c-repr > tolerance {
			flush()
			repr = c
			started = true
		}
		clusterSum += c
		clusterCount++
		clusterMembers = append(clusterMembers, i)
		repr = clusterSum / float64(clusterCount)
	}
	flush()

	return out
}

// joinEdges merges collinear edges within the same snapped group whose
// gap is within tolerance, per spec.md §4.4 step 2. Provenance of the
// merged edge is the provenance of the first contributing edge.
func joinEdges(edges []pdfmodel.Edge, horizontal bool, tolerance float64) []pdfmodel.Edge {
	groups := groupByPerpendicular(edges, horizontal)

	var out []pdfmodel.Edge
	for _, group := range groups {
		sort.Slice(group, func(a, b int) bool {
			return primaryStart(group[a], horizontal) < primaryStart(group[b], horizontal)
		})

		merged := group[0]
		for _, e := range group[1:] {
			prevEnd := primaryEnd(merged, horizontal)
			nextStart := primaryStart(e, horizontal)
			if prevEnd+tolerance >= nextStart {
				merged = extendPrimary(merged, e, horizontal)
				continue
			}
			out = append(out, merged)
			merged = e
		}
		out = append(out, merged)
	}
	return out
}

// filterShortEdges discards edges shorter than minLength, per spec.md
// §4.4 step 3.
func filterShortEdges(edges []pdfmodel.Edge, minLength float64) []pdfmodel.Edge {
	var out []pdfmodel.Edge
	for _, e := range edges {
		length := e.BBox.Width()
		if e.Orientation == pdfmodel.OrientationVertical {
			length = e.BBox.Height()
		}
		if length >= minLength {
			out = append(out, e)
		}
	}
	return out
}

func groupByPerpendicular(edges []pdfmodel.Edge, horizontal bool) [][]pdfmodel.Edge {
	byCoord := map[float64][]pdfmodel.Edge{}
	var coords []float64
	for _, e := range edges {
		c := e.BBox.X0
		if horizontal {
			c = e.BBox.Top
		}
		if _, ok := byCoord[c]; !ok {
			coords = append(coords, c)
		}
		byCoord[c] = append(byCoord[c], e)
	}
	sort.Float64s(coords)
	groups := make([][]pdfmodel.Edge, 0, len(coords))
	for _, c := range coords {
		groups = append(groups, byCoord[c])
	}
	return groups
}

func primaryStart(e pdfmodel.Edge, horizontal bool) float64 {
	if horizontal {
		return e.BBox.X0
	}
	return e.BBox.Top
}

func primaryEnd(e pdfmodel.Edge, horizontal bool) float64 {
	if horizontal {
		return e.BBox.X1
	}
	return e.BBox.Bottom
}

func extendPrimary(a, b pdfmodel.Edge, horizontal bool) pdfmodel.Edge {
	out := a
	if horizontal {
		out.BBox.X1 = maxF(a.BBox.X1, b.BBox.X1)
	} else {
		out.BBox.Bottom = maxF(a.BBox.Bottom, b.BBox.Bottom)
	}
	return out
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
