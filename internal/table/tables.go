package table

import (
	"sort"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// groupTables implements spec.md §4.4 step 6: maximal connected
// components of cells under edge-sharing adjacency become separate
// Tables; each table's rows/columns are built by sorting and grouping
// within tolerance.
func groupTables(cells []pdfmodel.Cell, tolerance float64, page int) []pdfmodel.Table {
	n := len(cells)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cellsAdjacent(cells[i], cells[j], tolerance) {
				union(i, j)
			}
		}
	}

	groups := map[int][]int{}
	for i := 0; i < n; i++ {
		root := find(i)
		groups[root] = append(groups[root], i)
	}

	var roots []int
	for r := range groups {
		roots = append(roots, r)
	}
	sort.Ints(roots)

	var tables []pdfmodel.Table
	for _, r := range roots {
		members := groups[r]
		var boxes []pdfmodel.BBox
		var tCells []pdfmodel.Cell
		for _, idx := range members {
			tCells = append(tCells, cells[idx])
			boxes = append(boxes, cells[idx].BBox)
		}
		tables = append(tables, pdfmodel.Table{
			BBox:    pdfmodel.UnionAll(boxes),
			Cells:   tCells,
			Rows:    groupRows(tCells, tolerance),
			Columns: groupColumns(tCells, tolerance),
			Page:    page,
		})
	}
	return tables
}

// cellsAdjacent reports whether a and b share a full edge: equal
// x-range with vertically touching y-range, or equal y-range with
// horizontally touching x-range.
func cellsAdjacent(a, b pdfmodel.Cell, tol float64) bool {
	sameX := absF(a.BBox.X0-b.BBox.X0) <= tol && absF(a.BBox.X1-b.BBox.X1) <= tol
	sameY := absF(a.BBox.Top-b.BBox.Top) <= tol && absF(a.BBox.Bottom-b.BBox.Bottom) <= tol
	vTouch := absF(a.BBox.Bottom-b.BBox.Top) <= tol || absF(b.BBox.Bottom-a.BBox.Top) <= tol
	hTouch := absF(a.BBox.X1-b.BBox.X0) <= tol || absF(b.BBox.X1-a.BBox.X0) <= tol
	return (sameX && vTouch) || (sameY && hTouch)
}

func groupRows(cells []pdfmodel.Cell, tolerance float64) [][]pdfmodel.Cell {
	sorted := append([]pdfmodel.Cell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if absF(sorted[i].BBox.Top-sorted[j].BBox.Top) > tolerance {
			return sorted[i].BBox.Top < sorted[j].BBox.Top
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})

	var rows [][]pdfmodel.Cell
	var current []pdfmodel.Cell
	var rowTop float64
	for _, c := range sorted {
		if len(current) == 0 {
			current = []pdfmodel.Cell{c}
			rowTop = c.BBox.Top
			continue
		}
		if absF(c.BBox.Top-rowTop) <= tolerance {
			current = append(current, c)
			continue
		}
		rows = append(rows, current)
		current = []pdfmodel.Cell{c}
		rowTop = c.BBox.Top
	}
	if len(current) > 0 {
		rows = append(rows, current)
	}
	return rows
}

func groupColumns(cells []pdfmodel.Cell, tolerance float64) [][]pdfmodel.Cell {
	sorted := append([]pdfmodel.Cell(nil), cells...)
	sort.Slice(sorted, func(i, j int) bool {
		if absF(sorted[i].BBox.X0-sorted[j].BBox.X0) > tolerance {
			return sorted[i].BBox.X0 < sorted[j].BBox.X0
		}
		return sorted[i].BBox.Top < sorted[j].BBox.Top
	})

	var cols [][]pdfmodel.Cell
	var current []pdfmodel.Cell
	var colX float64
	for _, c := range sorted {
		if len(current) == 0 {
			current = []pdfmodel.Cell{c}
			colX = c.BBox.X0
			continue
		}
		if absF(c.BBox.X0-colX) <= tolerance {
			current = append(current, c)
			continue
		}
		cols = append(cols, current)
		current = []pdfmodel.Cell{c}
		colX = c.BBox.X0
	}
	if len(current) > 0 {
		cols = append(cols, current)
	}
	return cols
}
