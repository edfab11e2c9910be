package table

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// Find runs the table-finding pipeline described in spec.md §4.4 over
// a page's already-derived edges (and, for the stream strategy, its
// extracted words), returning zero or more Tables. An empty
// intersection set yields zero tables, never an error.
func Find(edges []pdfmodel.Edge, words []pdfmodel.Word, settings Settings, page int) []pdfmodel.Table {
	settings.applyDefaults()

	working := append([]pdfmodel.Edge(nil), edges...)

	switch settings.Strategy {
	case StrategyExplicit:
		working = nil
	case StrategyLatticeStrict:
		working = filterSynthesized(working)
	case StrategyStream:
		// caller already derived word-edges via internal/geometry and
		// passed them in `edges`; nothing extra to do here beyond
		// honoring explicit lines below.
	}
	working = append(working, explicitEdges(settings)...)

	horizontals := filterOrientation(working, pdfmodel.OrientationHorizontal)
	verticals := filterOrientation(working, pdfmodel.OrientationVertical)

	horizontals = snapEdges(horizontals, true, settings.SnapYTolerance)
	verticals = snapEdges(verticals, false, settings.SnapXTolerance)

	horizontals = joinEdges(horizontals, true, settings.JoinXTolerance)
	verticals = joinEdges(verticals, false, settings.JoinYTolerance)

	horizontals = filterShortEdges(horizontals, settings.EdgeMinLength)
	verticals = filterShortEdges(verticals, settings.EdgeMinLength)

	points := findIntersections(horizontals, verticals, settings.IntersectionXTolerance, settings.IntersectionYTolerance)
	if len(points) == 0 {
		return nil
	}

	cells := buildCells(points, settings.IntersectionXTolerance, settings.IntersectionYTolerance)
	if len(cells) == 0 {
		return nil
	}

	cells = assignText(cells, words, settings.TextXTolerance, settings.TextYTolerance)

	return groupTables(cells, settings.SnapTolerance, page)
}

func filterOrientation(edges []pdfmodel.Edge, o pdfmodel.Orientation) []pdfmodel.Edge {
	var out []pdfmodel.Edge
	for _, e := range edges {
		if e.Orientation == o {
			out = append(out, e)
		}
	}
	return out
}

// filterSynthesized drops curve- and stream-derived edges, keeping
// only drawn lines and rect sides, for the LatticeStrict strategy.
func filterSynthesized(edges []pdfmodel.Edge) []pdfmodel.Edge {
	var out []pdfmodel.Edge
	for _, e := range edges {
		if e.Provenance == pdfmodel.ProvenanceCurve || e.Provenance == pdfmodel.ProvenanceStream {
			continue
		}
		out = append(out, e)
	}
	return out
}

func explicitEdges(settings Settings) []pdfmodel.Edge {
	var out []pdfmodel.Edge
	for _, l := range settings.ExplicitVerticalLines {
		out = append(out, pdfmodel.Edge{
			BBox:        pdfmodel.BBox{X0: l.X0, X1: l.X1, Top: l.Top, Bottom: l.Bottom},
			Orientation: pdfmodel.OrientationVertical,
			Provenance:  pdfmodel.ProvenanceExplicit,
		})
	}
	for _, l := range settings.ExplicitHorizontalLines {
		out = append(out, pdfmodel.Edge{
			BBox:        pdfmodel.BBox{X0: l.X0, X1: l.X1, Top: l.Top, Bottom: l.Bottom},
			Orientation: pdfmodel.OrientationHorizontal,
			Provenance:  pdfmodel.ProvenanceExplicit,
		})
	}
	return out
}
