package table

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// a 2x2 grid: three horizontal lines at y=0,50,100 and three vertical
// lines at x=0,50,100, each spanning the full grid.
func twoByTwoGridEdges() []pdfmodel.Edge {
	var edges []pdfmodel.Edge
	for _, y := range []float64{0, 50, 100} {
		edges = append(edges, pdfmodel.Edge{
			BBox:        pdfmodel.BBox{X0: 0, X1: 100, Top: y, Bottom: y},
			Orientation: pdfmodel.OrientationHorizontal,
		})
	}
	for _, x := range []float64{0, 50, 100} {
		edges = append(edges, pdfmodel.Edge{
			BBox:        pdfmodel.BBox{X0: x, X1: x, Top: 0, Bottom: 100},
			Orientation: pdfmodel.OrientationVertical,
		})
	}
	return edges
}

func TestFindTwoByTwoLatticeTable(t *testing.T) {
	edges := twoByTwoGridEdges()
	tables := Find(edges, nil, NewSettings(), 0)

	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}
	got := tables[0]
	if len(got.Cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(got.Cells))
	}
	if len(got.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got.Rows))
	}
	if len(got.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(got.Columns))
	}
	want := pdfmodel.BBox{X0: 0, X1: 100, Top: 0, Bottom: 100}
	if got.BBox != want {
		t.Fatalf("expected bbox %+v, got %+v", want, got.BBox)
	}
}

func TestFindEmptyEdgesYieldsNoTables(t *testing.T) {
	tables := Find(nil, nil, NewSettings(), 0)
	if tables != nil {
		t.Fatalf("expected nil tables for empty edge set, got %d", len(tables))
	}
}

func TestFindAssignsTextToCells(t *testing.T) {
	edges := twoByTwoGridEdges()
	words := []pdfmodel.Word{
		{Text: "A1", BBox: pdfmodel.BBox{X0: 10, X1: 30, Top: 10, Bottom: 30}},
		{Text: "B2", BBox: pdfmodel.BBox{X0: 60, X1: 80, Top: 60, Bottom: 80}},
	}
	tables := Find(edges, words, NewSettings(), 0)
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	var found int
	for _, c := range tables[0].Cells {
		if c.Text == nil {
			continue
		}
		if *c.Text == "A1" || *c.Text == "B2" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected both words assigned to cells, found %d", found)
	}
}

func TestFilterShortEdgesDropsBelowMinLength(t *testing.T) {
	edges := []pdfmodel.Edge{
		{BBox: pdfmodel.BBox{X0: 0, X1: 1, Top: 0, Bottom: 0}, Orientation: pdfmodel.OrientationHorizontal},
		{BBox: pdfmodel.BBox{X0: 0, X1: 10, Top: 5, Bottom: 5}, Orientation: pdfmodel.OrientationHorizontal},
	}
	out := filterShortEdges(edges, 3.0)
	if len(out) != 1 {
		t.Fatalf("expected 1 edge to survive, got %d", len(out))
	}
}
