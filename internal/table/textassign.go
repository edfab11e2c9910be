package table

import (
	"sort"
	"strings"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// assignText implements spec.md §4.4 step 7: words whose bbox center
// falls inside the cell's bbox (expanded by the text tolerances) are
// collected, sorted in reading order, and joined with single spaces.
// A cell with no matching words keeps a nil Text, not an empty string,
// so callers can tell "blank cell" from "cell with an empty word".
func assignText(cells []pdfmodel.Cell, words []pdfmodel.Word, xTol, yTol float64) []pdfmodel.Cell {
	out := make([]pdfmodel.Cell, len(cells))
	copy(out, cells)

	for i, cell := range out {
		expanded := cell.BBox.Expand(xTol, yTol)
		var matched []pdfmodel.Word
		for _, w := range words {
			cx, cy := w.BBox.CenterX(), w.BBox.CenterY()
			if expanded.Contains(cx, cy) {
				matched = append(matched, w)
			}
		}
		if len(matched) == 0 {
			continue
		}
		sort.Slice(matched, func(a, b int) bool {
			if absF(matched[a].BBox.Top-matched[b].BBox.Top) > 0.01 {
				return matched[a].BBox.Top < matched[b].BBox.Top
			}
			return matched[a].BBox.X0 < matched[b].BBox.X0
		})
		texts := make([]string, len(matched))
		for j, w := range matched {
			texts[j] = w.Text
		}
		text := strings.Join(texts, " ")
		out[i].Text = &text
	}
	return out
}
