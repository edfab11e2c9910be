package page

import (
	"strings"
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func textChar(text string, x0, top, x1, bottom float64) pdfmodel.Char {
	return pdfmodel.Char{Text: text, BBox: pdfmodel.BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}}
}

func TestExtractTextSingleLine(t *testing.T) {
	chars := []pdfmodel.Char{
		textChar("H", 0, 0, 5, 10),
		textChar("i", 5, 0, 8, 10),
		textChar(" ", 8, 0, 12, 10),
		textChar("t", 12, 0, 17, 10),
		textChar("h", 17, 0, 22, 10),
		textChar("e", 22, 0, 27, 10),
		textChar("r", 27, 0, 32, 10),
		textChar("e", 32, 0, 37, 10),
	}
	pg := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, chars, nil, nil, nil, nil, nil)
	got := pg.ExtractText(NewTextOptions())
	if got != "Hi there" {
		t.Fatalf("expected %q, got %q", "Hi there", got)
	}
}

func TestExtractTextMultipleLines(t *testing.T) {
	chars := []pdfmodel.Char{
		textChar("a", 0, 0, 5, 10),
		textChar("b", 0, 20, 5, 30),
	}
	pg := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, chars, nil, nil, nil, nil, nil)
	got := pg.ExtractText(NewTextOptions())
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d (%q)", len(lines), got)
	}
	if lines[0] != "a" || lines[1] != "b" {
		t.Fatalf("unexpected lines: %q, %q", lines[0], lines[1])
	}
}

func TestExtractTextLayoutSplitsColumns(t *testing.T) {
	chars := []pdfmodel.Char{
		textChar("left", 0, 0, 20, 10),
		textChar("right", 200, 0, 220, 10),
	}
	opts := NewTextOptions()
	opts.Layout = true
	pg := New(pdfmodel.PageGeometry{Width: 400, Height: 200}, 1, chars, nil, nil, nil, nil, nil)
	got := pg.ExtractText(opts)
	if !strings.Contains(got, "\f") {
		t.Fatalf("expected a form feed between columns, got %q", got)
	}
}

func TestExtractTextEmptyPage(t *testing.T) {
	pg := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, nil, nil, nil, nil, nil, nil)
	if got := pg.ExtractText(NewTextOptions()); got != "" {
		t.Fatalf("expected empty text for an empty page, got %q", got)
	}
}
