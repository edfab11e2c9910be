package page

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func searchChar(text string, x0, x1 float64) pdfmodel.Char {
	return pdfmodel.Char{Text: text, BBox: pdfmodel.BBox{X0: x0, X1: x1, Top: 0, Bottom: 10}}
}

func buildSearchPage(text string) *Page {
	chars := make([]pdfmodel.Char, len(text))
	for i, r := range text {
		chars[i] = searchChar(string(r), float64(i*5), float64(i*5+5))
	}
	return New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, chars, nil, nil, nil, nil, nil)
}

func TestSearchLiteralMatch(t *testing.T) {
	pg := buildSearchPage("the quick brown fox")
	matches, err := pg.Search("quick", NewSearchOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Text != "quick" {
		t.Fatalf("expected %q, got %q", "quick", matches[0].Text)
	}
	if len(matches[0].Chars) != len("quick") {
		t.Fatalf("expected %d spanned chars, got %d", len("quick"), len(matches[0].Chars))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	pg := buildSearchPage("Hello World")
	opts := SearchOptions{CaseInsensitive: true}
	matches, err := pg.Search("world", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Text != "World" {
		t.Fatalf("expected original-case text %q, got %q", "World", matches[0].Text)
	}
}

func TestSearchRegex(t *testing.T) {
	pg := buildSearchPage("cat cot cut")
	opts := SearchOptions{Regex: true}
	matches, err := pg.Search("c[aou]t", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
}

func TestSearchLiteralPatternNotTreatedAsRegex(t *testing.T) {
	pg := buildSearchPage("a.b a.b")
	matches, err := pg.Search("a.b", NewSearchOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 literal matches, got %d", len(matches))
	}
}

func TestSearchNoMatch(t *testing.T) {
	pg := buildSearchPage("hello world")
	matches, err := pg.Search("xyz", NewSearchOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches, got %d", len(matches))
	}
}

func TestSearchEmptyPage(t *testing.T) {
	pg := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, nil, nil, nil, nil, nil, nil)
	matches, err := pg.Search("anything", NewSearchOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matches != nil {
		t.Fatalf("expected nil matches on an empty page, got %v", matches)
	}
}
