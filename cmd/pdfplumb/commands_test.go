package main

import (
	"testing"

	"github.com/plumbergo/pdfplumb/internal/document"
	"github.com/plumbergo/pdfplumb/internal/table"
)

func TestUnicodeNormFrom(t *testing.T) {
	cases := []struct {
		in   string
		want document.UnicodeNormForm
	}{
		{"nfc", document.UnicodeNormNFC},
		{"NFC", document.UnicodeNormNFC},
		{"nfd", document.UnicodeNormNFD},
		{"nfkc", document.UnicodeNormNFKC},
		{"nfkd", document.UnicodeNormNFKD},
		{"", document.UnicodeNormNone},
		{"bogus", document.UnicodeNormNone},
	}
	for _, c := range cases {
		if got := unicodeNormFrom(c.in); got != c.want {
			t.Fatalf("unicodeNormFrom(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestTableSettingsFromDefaultsToLattice(t *testing.T) {
	opts := cliOptions{strategy: "lattice", snapTol: 2, joinTol: 4, textTol: 6}
	s := tableSettingsFrom(opts)
	if s.Strategy != table.StrategyLattice {
		t.Fatalf("expected lattice strategy, got %v", s.Strategy)
	}
	if s.SnapTolerance != 2 || s.JoinTolerance != 4 || s.TextTolerance != 6 {
		t.Fatalf("unexpected tolerances: %+v", s)
	}
}

func TestTableSettingsFromStream(t *testing.T) {
	opts := cliOptions{strategy: "STREAM"}
	s := tableSettingsFrom(opts)
	if s.Strategy != table.StrategyStream {
		t.Fatalf("expected stream strategy, got %v", s.Strategy)
	}
}

func TestWordOptionsFromAppliesTolerances(t *testing.T) {
	opts := cliOptions{xTol: 7, yTol: 9}
	w := wordOptionsFrom(opts)
	if w.XTolerance != 7 || w.YTolerance != 9 {
		t.Fatalf("unexpected options: %+v", w)
	}
}

func TestDispatchRejectsUnknownCommand(t *testing.T) {
	if err := dispatch("bogus", "nonexistent.pdf", cliOptions{}); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}
