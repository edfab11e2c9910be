package page

import (
	"strings"
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func TestStripMarkdownHeadings(t *testing.T) {
	if got := StripMarkdown("# Hello"); got != "Hello" {
		t.Fatalf("got %q", got)
	}
	if got := StripMarkdown("## Subtitle"); got != "Subtitle" {
		t.Fatalf("got %q", got)
	}
}

func TestStripMarkdownEmphasis(t *testing.T) {
	if got := StripMarkdown("**bold**"); got != "bold" {
		t.Fatalf("got %q", got)
	}
	if got := StripMarkdown("*italic*"); got != "italic" {
		t.Fatalf("got %q", got)
	}
}

func TestStripMarkdownHorizontalRule(t *testing.T) {
	got := StripMarkdown("Page 1\n\n---\n\nPage 2")
	if !strings.Contains(got, "Page 1") || !strings.Contains(got, "Page 2") {
		t.Fatalf("expected both pages present, got %q", got)
	}
	if strings.Contains(got, "---") {
		t.Fatalf("expected rule stripped, got %q", got)
	}
}

func TestStripMarkdownEmptyInput(t *testing.T) {
	if got := StripMarkdown(""); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitleFromH1(t *testing.T) {
	got := ExtractTitle("# My Document\n\nSome text")
	if got != "My Document" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitleIgnoresH2(t *testing.T) {
	if got := ExtractTitle("## Not a title\n\nSome text"); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTitleReturnsFirstH1(t *testing.T) {
	got := ExtractTitle("# First\n\n# Second")
	if got != "First" {
		t.Fatalf("got %q", got)
	}
}

func mdChar(text string, x0, top, size float64) pdfmodel.Char {
	return pdfmodel.Char{Text: text, BBox: pdfmodel.BBox{X0: x0, X1: x0 + size*0.6, Top: top, Bottom: top + size}, Size: size}
}

func TestToMarkdownHeadingAndBody(t *testing.T) {
	var chars []pdfmodel.Char
	x := 0.0
	for _, r := range "TITLE" {
		chars = append(chars, mdChar(string(r), x, 0, 24))
		x += 24 * 0.6
	}
	x = 0.0
	for _, r := range "bodytextlinehere" {
		chars = append(chars, mdChar(string(r), x, 50, 10))
		x += 10 * 0.6
	}

	p := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, chars, nil, nil, nil, nil, nil)
	got := p.ToMarkdown(NewMarkdownOptions())

	if !strings.Contains(got, "TITLE") {
		t.Fatalf("expected TITLE in output, got %q", got)
	}
	if !strings.HasPrefix(strings.TrimSpace(got), "#") {
		t.Fatalf("expected heading marker before title, got %q", got)
	}
	if !strings.Contains(got, "bodytextlinehere") {
		t.Fatalf("expected body line present, got %q", got)
	}
}

func TestToMarkdownEmptyPage(t *testing.T) {
	p := New(pdfmodel.PageGeometry{Width: 200, Height: 200}, 1, nil, nil, nil, nil, nil, nil)
	if got := p.ToMarkdown(NewMarkdownOptions()); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
