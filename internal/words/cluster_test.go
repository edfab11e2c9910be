package words

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func charAt(text string, x0, x1, top, bottom float64) pdfmodel.Char {
	return pdfmodel.Char{Text: text, BBox: pdfmodel.BBox{X0: x0, X1: x1, Top: top, Bottom: bottom}}
}

func TestExtractSplitsOnGap(t *testing.T) {
	chars := []pdfmodel.Char{
		charAt("H", 0, 5, 0, 10),
		charAt("i", 5, 8, 0, 10),
		charAt("t", 20, 25, 0, 10),
		charAt("h", 25, 30, 0, 10),
		charAt("e", 30, 35, 0, 10),
		charAt("r", 35, 40, 0, 10),
		charAt("e", 40, 45, 0, 10),
	}
	got := Extract(chars, NewOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %d (%v)", len(got), got)
	}
	if got[0].Text != "Hi" || got[1].Text != "there" {
		t.Fatalf("unexpected words: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestExtractCJKNoGlue(t *testing.T) {
	chars := []pdfmodel.Char{
		charAt("你", 0, 10, 0, 10),
		charAt("好", 10, 20, 0, 10),
	}
	got := Extract(chars, NewOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 separate CJK words, got %d", len(got))
	}
}

func TestExtractBlankCharsSplitByDefault(t *testing.T) {
	chars := []pdfmodel.Char{
		charAt("a", 0, 5, 0, 10),
		charAt(" ", 5, 8, 0, 10),
		charAt("b", 8, 13, 0, 10),
	}
	got := Extract(chars, NewOptions())
	if len(got) != 2 {
		t.Fatalf("expected 2 words, got %d", len(got))
	}
}

func TestExtractKeepBlankChars(t *testing.T) {
	opts := NewOptions()
	opts.KeepBlankChars = true
	chars := []pdfmodel.Char{
		charAt("a", 0, 5, 0, 10),
		charAt(" ", 5, 8, 0, 10),
		charAt("b", 8, 13, 0, 10),
	}
	got := Extract(chars, opts)
	if len(got) != 1 {
		t.Fatalf("expected 1 word with blanks kept, got %d", len(got))
	}
	if got[0].Text != "a b" {
		t.Fatalf("expected %q, got %q", "a b", got[0].Text)
	}
}
