package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plumbergo/pdfplumb/internal/annot"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{1.005, 1.0},
		{1.004, 1.0},
		{1.006, 1.01},
		{-1.005, -1.0},
	}
	for _, c := range cases {
		if got := round2(c.in); got != c.want {
			t.Fatalf("round2(%v): expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestDirectionName(t *testing.T) {
	cases := []struct {
		d    pdfmodel.Direction
		want string
	}{
		{pdfmodel.DirectionLTR, "ltr"},
		{pdfmodel.DirectionRTL, "rtl"},
		{pdfmodel.DirectionTTB, "ttb"},
		{pdfmodel.DirectionBTT, "btt"},
	}
	for _, c := range cases {
		if got := directionName(c.d); got != c.want {
			t.Fatalf("directionName(%v): expected %q, got %q", c.d, c.want, got)
		}
	}
}

func TestToCharRecord(t *testing.T) {
	c := pdfmodel.Char{
		Page: 1, Text: "A", FontName: "Helvetica", Size: 12, DocTop: 100, Upright: true,
		Direction: pdfmodel.DirectionLTR,
		BBox:      pdfmodel.BBox{X0: 1, Top: 2, X1: 3, Bottom: 4},
	}
	rec := toCharRecord(c)
	if rec.Page != 1 || rec.Text != "A" || rec.FontName != "Helvetica" || rec.Size != 12 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.X0 != 1 || rec.Top != 2 || rec.X1 != 3 || rec.Bottom != 4 {
		t.Fatalf("unexpected bbox fields: %+v", rec)
	}
	if rec.Direction != "ltr" {
		t.Fatalf("expected ltr direction, got %q", rec.Direction)
	}
}

func TestToWordRecord(t *testing.T) {
	w := pdfmodel.Word{Page: 2, Text: "hello", DocTop: 50, Direction: pdfmodel.DirectionRTL, BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 10, Bottom: 10}}
	rec := toWordRecord(w)
	if rec.Page != 2 || rec.Text != "hello" || rec.Direction != "rtl" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestToTableRecordWithNilCells(t *testing.T) {
	text := "cell"
	tbl := pdfmodel.Table{
		Page: 1,
		BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 100, Bottom: 100},
		Rows: [][]pdfmodel.Cell{
			{{Text: &text}, {Text: nil}},
		},
	}
	rec := toTableRecord(tbl)
	if len(rec.Rows) != 1 || len(rec.Rows[0]) != 2 {
		t.Fatalf("unexpected rows: %+v", rec.Rows)
	}
	if rec.Rows[0][0] == nil || *rec.Rows[0][0] != "cell" {
		t.Fatalf("expected cell text %q, got %v", "cell", rec.Rows[0][0])
	}
	if rec.Rows[0][1] != nil {
		t.Fatalf("expected nil cell, got %v", rec.Rows[0][1])
	}
}

func TestToImageRecord(t *testing.T) {
	img := pdfmodel.Image{
		Name: "Im1", Width: 100, Height: 50, SrcWidth: 200, SrcHeight: 100,
		BitsPerComponent: 8, ColorSpace: "DeviceRGB",
		BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 100, Bottom: 50},
	}
	rec := toImageRecord(img)
	if rec.Name != "Im1" || rec.SrcWidth != 200 || rec.ColorSpace != "DeviceRGB" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestCharIndicesFindsContiguousSpan(t *testing.T) {
	pageChars := []pdfmodel.Char{
		{Text: "a", BBox: pdfmodel.BBox{X0: 0, X1: 1}},
		{Text: "b", BBox: pdfmodel.BBox{X0: 1, X1: 2}},
		{Text: "c", BBox: pdfmodel.BBox{X0: 2, X1: 3}},
	}
	matchChars := []pdfmodel.Char{pageChars[1], pageChars[2]}
	got := charIndices(pageChars, matchChars)
	want := []int{1, 2}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCharIndicesNoMatchReturnsNil(t *testing.T) {
	pageChars := []pdfmodel.Char{{Text: "a", BBox: pdfmodel.BBox{X0: 0, X1: 1}}}
	matchChars := []pdfmodel.Char{{Text: "z", BBox: pdfmodel.BBox{X0: 9, X1: 10}}}
	if got := charIndices(pageChars, matchChars); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestCharIndicesEmptyMatch(t *testing.T) {
	if got := charIndices(nil, nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestWriteCharsTextAndCSV(t *testing.T) {
	chars := []pdfmodel.Char{
		{Page: 1, Text: "A", FontName: "Helvetica", Size: 12, BBox: pdfmodel.BBox{X0: 1, Top: 2, X1: 3, Bottom: 4}},
	}
	var textBuf, csvBuf bytes.Buffer
	writeCharsText(&textBuf, chars)
	if !strings.Contains(textBuf.String(), "A") {
		t.Fatalf("expected char text in output: %q", textBuf.String())
	}
	writeCharsCSV(&csvBuf, chars)
	lines := strings.Split(strings.TrimSpace(csvBuf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines: %q", len(lines), csvBuf.String())
	}
}

func TestWriteBookmarksTextNested(t *testing.T) {
	bookmarks := []annot.Bookmark{
		{Title: "Chapter 1", Page: 1, Children: []annot.Bookmark{
			{Title: "Section 1.1", Page: 2},
		}},
	}
	var buf bytes.Buffer
	writeBookmarksText(&buf, bookmarks, 0)
	out := buf.String()
	if !strings.Contains(out, "Chapter 1") || !strings.Contains(out, "Section 1.1") {
		t.Fatalf("expected both bookmark titles in output: %q", out)
	}
	if !strings.Contains(out, "  - Section 1.1") {
		t.Fatalf("expected nested bookmark to be indented: %q", out)
	}
}

func TestIndent(t *testing.T) {
	if got := indent(0); got != "" {
		t.Fatalf("expected empty indent, got %q", got)
	}
	if got := indent(2); got != "    " {
		t.Fatalf("expected 4 spaces, got %q", got)
	}
}

func TestWriteJSONProducesIndentedArray(t *testing.T) {
	var buf bytes.Buffer
	records := []charRecord{{Page: 1, Text: "x"}}
	if err := writeJSON(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), `"text": "x"`) {
		t.Fatalf("expected indented JSON field, got %q", buf.String())
	}
}
