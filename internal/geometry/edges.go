// Package geometry derives table-finder Edge records from the raw
// Line/Rect/Curve events a page reports (spec.md §4.3).
package geometry

import (
	"sort"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// curveBBoxThreshold is the maximum bbox width or height (in points)
// for a Curve to still be treated as effectively axis-aligned and
// contribute an edge, per spec.md §4.3's documented 1e-3 rule for
// degenerate curves that are really straight lines in disguise.
const curveBBoxThreshold = 1e-3

// rowClusterTolerance is the vertical-center tolerance used to group
// words into rows before deriving stream-strategy edges, matching the
// default line-clustering tolerance internal/words uses for the same
// "same visual line" judgment.
const rowClusterTolerance = 3.0

// columnClusterTolerance is the horizontal tolerance used to decide
// whether a candidate column boundary found in one row is the same
// boundary as one found in another row, before min_words_vertical is
// applied across rows.
const columnClusterTolerance = 3.0

// streamGapMultiplier is how many times a row's mean adjacent-word gap
// a single gap must exceed before spec.md §4.3 treats it as a column
// boundary rather than ordinary intra-row word spacing. Not grounded
// in any retained original-source file (no core table algorithm source
// was kept in the retrieval pack); chosen as a conservative multiple
// that distinguishes a deliberate column gap from justified-text
// spacing, in the spirit of the nearby curveBBoxThreshold constant.
const streamGapMultiplier = 1.5

// DeriveEdges turns a page's raw vector primitives into Edges: every
// Line becomes an edge directly; every Rect contributes up to four
// edges (its four sides); every Curve whose bbox is degenerate in one
// axis contributes a single edge along that axis, others are dropped
// (non-degenerate curves do not bound table cells).
func DeriveEdges(lines []pdfmodel.Line, rects []pdfmodel.Rect, curves []pdfmodel.Curve) []pdfmodel.Edge {
	var edges []pdfmodel.Edge

	for _, l := range lines {
		edges = append(edges, pdfmodel.Edge{
			BBox: l.BBox, Orientation: l.Orientation,
			Provenance: pdfmodel.ProvenanceLine, Page: l.Page,
		})
	}

	for _, r := range rects {
		if !r.Stroke && !r.Fill {
			continue
		}
		edges = append(edges,
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: r.BBox.X0, X1: r.BBox.X1, Top: r.BBox.Top, Bottom: r.BBox.Top},
				Orientation: pdfmodel.OrientationHorizontal, Provenance: pdfmodel.ProvenanceRectTop, Page: r.Page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: r.BBox.X0, X1: r.BBox.X1, Top: r.BBox.Bottom, Bottom: r.BBox.Bottom},
				Orientation: pdfmodel.OrientationHorizontal, Provenance: pdfmodel.ProvenanceRectBottom, Page: r.Page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: r.BBox.X0, X1: r.BBox.X0, Top: r.BBox.Top, Bottom: r.BBox.Bottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceRectLeft, Page: r.Page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: r.BBox.X1, X1: r.BBox.X1, Top: r.BBox.Top, Bottom: r.BBox.Bottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceRectRight, Page: r.Page,
			},
		)
	}

	for _, c := range curves {
		if !c.Stroke && !c.Fill {
			continue
		}
		w, h := c.BBox.Width(), c.BBox.Height()
		switch {
		case h <= curveBBoxThreshold && w > curveBBoxThreshold:
			edges = append(edges, pdfmodel.Edge{
				BBox: pdfmodel.BBox{X0: c.BBox.X0, X1: c.BBox.X1, Top: c.BBox.Top, Bottom: c.BBox.Top},
				Orientation: pdfmodel.OrientationHorizontal, Provenance: pdfmodel.ProvenanceCurve, Page: c.Page,
			})
		case w <= curveBBoxThreshold && h > curveBBoxThreshold:
			edges = append(edges, pdfmodel.Edge{
				BBox: pdfmodel.BBox{X0: c.BBox.X0, X1: c.BBox.X0, Top: c.BBox.Top, Bottom: c.BBox.Bottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceCurve, Page: c.Page,
			})
		}
	}

	return edges
}

// DeriveWordEdges synthesizes edges from word positions for the
// "stream" table strategy (spec.md §4.3), which has no ruled lines to
// work from. Words are projected onto the y-axis and clustered into
// rows; each qualifying row contributes its own top/bottom as
// horizontal edges spanning the shared left/right extent of all
// qualifying rows (so every row's boundary aligns to the same pair of
// vertical edges), and the mean gap between adjacent words in the row
// is computed so that any gap exceeding streamGapMultiplier times that
// mean becomes a candidate interior column boundary at the gap's
// midpoint. A candidate is kept only once it recurs, within
// columnClusterTolerance, across at least minWordsVertical rows
// (spec.md §4.4's min_words_vertical); rows with fewer than
// minWordsHorizontal words are skipped entirely.
func DeriveWordEdges(words []pdfmodel.Word, minWordsHorizontal, minWordsVertical, page int) []pdfmodel.Edge {
	rows := clusterWordRows(words, rowClusterTolerance)

	type rowSpan struct {
		words       []pdfmodel.Word
		top, bottom float64
	}
	var spans []rowSpan
	var blockLeft, blockRight float64
	for _, row := range rows {
		if len(row) < minWordsHorizontal {
			continue
		}
		sort.Slice(row, func(i, j int) bool { return row[i].BBox.X0 < row[j].BBox.X0 })

		rowBBox := row[0].BBox
		for _, w := range row[1:] {
			rowBBox = rowBBox.Union(w.BBox)
		}
		if len(spans) == 0 {
			blockLeft, blockRight = rowBBox.X0, rowBBox.X1
		} else {
			blockLeft = minF(blockLeft, rowBBox.X0)
			blockRight = maxF(blockRight, rowBBox.X1)
		}
		spans = append(spans, rowSpan{words: row, top: rowBBox.Top, bottom: rowBBox.Bottom})
	}

	type candidate struct {
		x                 float64
		rowTop, rowBottom float64
	}
	var candidates []candidate
	var edges []pdfmodel.Edge

	for _, span := range spans {
		edges = append(edges,
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: blockLeft, X1: blockRight, Top: span.top, Bottom: span.top},
				Orientation: pdfmodel.OrientationHorizontal, Provenance: pdfmodel.ProvenanceStream, Page: page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: blockLeft, X1: blockRight, Top: span.bottom, Bottom: span.bottom},
				Orientation: pdfmodel.OrientationHorizontal, Provenance: pdfmodel.ProvenanceStream, Page: page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: blockLeft, X1: blockLeft, Top: span.top, Bottom: span.bottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceStream, Page: page,
			},
			pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: blockRight, X1: blockRight, Top: span.top, Bottom: span.bottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceStream, Page: page,
			},
		)

		row := span.words
		if len(row) < 2 {
			continue
		}
		var gaps []float64
		for i := 1; i < len(row); i++ {
			gap := row[i].BBox.X0 - row[i-1].BBox.X1
			if gap > 0 {
				gaps = append(gaps, gap)
			}
		}
		if len(gaps) == 0 {
			continue
		}
		threshold := meanOf(gaps) * streamGapMultiplier

		for i := 1; i < len(row); i++ {
			gap := row[i].BBox.X0 - row[i-1].BBox.X1
			if gap <= threshold {
				continue
			}
			candidates = append(candidates, candidate{
				x:         (row[i-1].BBox.X1 + row[i].BBox.X0) / 2,
				rowTop:    span.top,
				rowBottom: span.bottom,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].x < candidates[j].x })
	var group []candidate
	flushGroup := func() {
		if len(group) < minWordsVertical {
			return
		}
		for _, c := range group {
			edges = append(edges, pdfmodel.Edge{
				BBox:        pdfmodel.BBox{X0: c.x, X1: c.x, Top: c.rowTop, Bottom: c.rowBottom},
				Orientation: pdfmodel.OrientationVertical, Provenance: pdfmodel.ProvenanceStream, Page: page,
			})
		}
	}
	var groupX float64
	for _, c := range candidates {
		if len(group) == 0 || c.x-groupX <= columnClusterTolerance {
			group = append(group, c)
			var sum float64
			for _, m := range group {
				sum += m.x
			}
			groupX = sum / float64(len(group))
			continue
		}
		flushGroup()
		group = []candidate{c}
		groupX = c.x
	}
	flushGroup()

	return edges
}

// clusterWordRows groups words into rows by vertical-center tolerance,
// the same approach internal/words uses to group chars into lines.
func clusterWordRows(words []pdfmodel.Word, tolerance float64) [][]pdfmodel.Word {
	ordered := append([]pdfmodel.Word(nil), words...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].BBox.CenterY() < ordered[j].BBox.CenterY() })

	var rows [][]pdfmodel.Word
	var current []pdfmodel.Word
	var rowCenter float64
	for _, w := range ordered {
		if len(current) == 0 {
			current = []pdfmodel.Word{w}
			rowCenter = w.BBox.CenterY()
			continue
		}
		if absF(w.BBox.CenterY()-rowCenter) <= tolerance {
			current = append(current, w)
			continue
		}
		rows = append(rows, current)
		current = []pdfmodel.Word{w}
		rowCenter = w.BBox.CenterY()
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

func meanOf(vs []float64) float64 {
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
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
