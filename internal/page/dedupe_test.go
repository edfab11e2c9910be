package page

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func dedupeChar(text string, x0, top float64) pdfmodel.Char {
	return pdfmodel.Char{
		Text:     text,
		BBox:     pdfmodel.BBox{X0: x0, Top: top, X1: x0 + 10, Bottom: top + 12},
		FontName: "Helvetica",
		Size:     12,
	}
}

func TestDedupeCharsOverlappingKeepsFirst(t *testing.T) {
	chars := []pdfmodel.Char{
		dedupeChar("A", 10.0, 20.0),
		dedupeChar("A", 10.5, 20.3),
	}
	got := DedupeChars(chars, NewDedupeOptions())
	if len(got) != 1 {
		t.Fatalf("expected 1 char, got %d", len(got))
	}
	if got[0].BBox.X0 != 10.0 {
		t.Fatalf("expected first occurrence kept, got x0=%v", got[0].BBox.X0)
	}
}

func TestDedupeCharsFarApartPreserved(t *testing.T) {
	chars := []pdfmodel.Char{
		dedupeChar("A", 10.0, 20.0),
		dedupeChar("A", 50.0, 20.0),
	}
	got := DedupeChars(chars, NewDedupeOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(got))
	}
}

func TestDedupeCharsDifferentTextNotMerged(t *testing.T) {
	chars := []pdfmodel.Char{
		dedupeChar("A", 10.0, 20.0),
		dedupeChar("B", 10.0, 20.0),
	}
	got := DedupeChars(chars, NewDedupeOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(got))
	}
}

func TestDedupeCharsDifferentFontNotMerged(t *testing.T) {
	a := dedupeChar("A", 10.0, 20.0)
	b := dedupeChar("A", 10.0, 20.0)
	b.FontName = "Times-Roman"
	got := DedupeChars([]pdfmodel.Char{a, b}, NewDedupeOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 chars, got %d", len(got))
	}
}

func TestDedupeCharsCustomTolerance(t *testing.T) {
	chars := []pdfmodel.Char{
		dedupeChar("A", 10.0, 20.0),
		dedupeChar("A", 12.5, 20.0),
	}
	if got := DedupeChars(chars, NewDedupeOptions()); len(got) != 2 {
		t.Fatalf("default tolerance should not merge, got %d", len(got))
	}
	wide := NewDedupeOptions()
	wide.Tolerance = 3.0
	if got := DedupeChars(chars, wide); len(got) != 1 {
		t.Fatalf("wide tolerance should merge, got %d", len(got))
	}
}

func TestDedupeCharsEmptyExtraAttrsIgnoresFont(t *testing.T) {
	a := dedupeChar("A", 10.0, 20.0)
	b := dedupeChar("A", 10.0, 20.0)
	b.FontName = "Times-Roman"
	b.Size = 14
	got := DedupeChars([]pdfmodel.Char{a, b}, DedupeOptions{Tolerance: 1.0})
	if len(got) != 1 {
		t.Fatalf("expected merge with no extra attrs, got %d", len(got))
	}
}

func TestDedupeCharsEmptyInput(t *testing.T) {
	if got := DedupeChars(nil, NewDedupeOptions()); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
