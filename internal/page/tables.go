package page

import (
	"github.com/plumbergo/pdfplumb/internal/geometry"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
	"github.com/plumbergo/pdfplumb/internal/table"
	"github.com/plumbergo/pdfplumb/internal/words"
)

// FindTables runs the table finder over the page (spec.md §4.4). The
// Stream strategy has no drawn edges to work from, so words are
// extracted first, clustered into rows, and turned into synthetic
// edges per spec.md §4.3/§4.4's "stream strategy" description. The
// Explicit strategy passes no page edges (only the settings' explicit
// lines are used); the lattice strategies use the page's drawn-geometry
// edges directly.
func (p *Page) FindTables(settings table.Settings) []pdfmodel.Table {
	var edges []pdfmodel.Edge
	var wordList []pdfmodel.Word

	switch settings.Strategy {
	case table.StrategyStream:
		wordList = words.Extract(p.chars, words.NewOptions())
		edges = geometry.DeriveWordEdges(wordList, settings.MinWordsHorizontal, settings.MinWordsVertical, p.Number)
	case table.StrategyExplicit:
		wordList = words.Extract(p.chars, words.NewOptions())
	default:
		edges = p.Edges()
		wordList = words.Extract(p.chars, words.NewOptions())
	}

	return table.Find(edges, wordList, settings, p.Number)
}
