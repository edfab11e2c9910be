package page

import (
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
	"github.com/plumbergo/pdfplumb/internal/words"
)

// ExtractWords clusters the page's chars into words (spec.md §4.5).
func (p *Page) ExtractWords(opts words.Options) []pdfmodel.Word {
	return words.Extract(p.chars, opts)
}
