package table

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/geometry"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// a 2-row, 2-column header/data block with no ruled lines: each row
// has a tight gap between its first two words and a wide gap before
// the third, so the wide gap is the only one that should clear
// streamGapMultiplier times the row's mean gap and become a column
// boundary.
func twoByTwoStreamWords() []pdfmodel.Word {
	return []pdfmodel.Word{
		{Text: "First", BBox: pdfmodel.BBox{X0: 10, X1: 40, Top: 10, Bottom: 22}},
		{Text: "Last", BBox: pdfmodel.BBox{X0: 45, X1: 70, Top: 10, Bottom: 22}},
		{Text: "Score", BBox: pdfmodel.BBox{X0: 170, X1: 200, Top: 10, Bottom: 22}},
		{Text: "John", BBox: pdfmodel.BBox{X0: 10, X1: 35, Top: 24, Bottom: 36}},
		{Text: "Doe", BBox: pdfmodel.BBox{X0: 40, X1: 65, Top: 24, Bottom: 36}},
		{Text: "90", BBox: pdfmodel.BBox{X0: 170, X1: 185, Top: 24, Bottom: 36}},
	}
}

func TestFindTwoByTwoStreamTable(t *testing.T) {
	words := twoByTwoStreamWords()
	edges := geometry.DeriveWordEdges(words, 1, 2, 0)

	settings := NewSettings()
	settings.Strategy = StrategyStream
	settings.MinWordsVertical = 2

	tables := Find(edges, words, settings, 0)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	got := tables[0]
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if len(got.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(got.Columns))
	}
	if len(got.Cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(got.Cells))
	}

	var found int
	for _, c := range got.Cells {
		if c.Text == nil {
			continue
		}
		switch *c.Text {
		case "First Last", "Score", "John Doe", "90":
			found++
		}
	}
	if found != 4 {
		t.Fatalf("expected all 4 cells to carry assigned text, found %d", found)
	}
}

func TestFindStreamTableDropsColumnGapBelowMinWordsVertical(t *testing.T) {
	words := twoByTwoStreamWords()
	edges := geometry.DeriveWordEdges(words, 1, 3, 0)

	settings := NewSettings()
	settings.Strategy = StrategyStream
	settings.MinWordsVertical = 3

	tables := Find(edges, words, settings, 0)
	for _, tbl := range tables {
		if len(tbl.Columns) > 1 {
			t.Fatalf("expected no multi-column table once the gap's 2 occurrences fall below min_words_vertical=3, got %+v", tbl)
		}
	}
}
