package svgdebug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func TestRenderEmptyInputProducesBareSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Input{Width: 100, Height: 200}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Fatalf("expected output to start with <svg, got %q", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Fatalf("expected output to end with </svg>, got %q", out)
	}
	if !strings.Contains(out, `width="100.00"`) || !strings.Contains(out, `height="200.00"`) {
		t.Fatalf("expected width/height attributes in output: %q", out)
	}
}

func TestRenderDrawsEveryElementKind(t *testing.T) {
	in := Input{
		Width: 50, Height: 50,
		Chars:  []pdfmodel.Char{{Text: "a", BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 5, Bottom: 10}}},
		Lines:  []pdfmodel.Line{{BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 10, Bottom: 10}}},
		Rects:  []pdfmodel.Rect{{BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 20, Bottom: 20}}},
		Curves: []pdfmodel.Curve{{Points: []pdfmodel.Point{{X: 0, Y: 0}, {X: 5, Y: 5}}}},
		Edges:  []pdfmodel.Edge{{BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 30, Bottom: 0}}},
		Tables: []pdfmodel.Table{{BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 40, Bottom: 40}, Cells: []pdfmodel.Cell{{BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 20, Bottom: 20}}}}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, tag := range []string{"<rect", "<line", "<polyline"} {
		if !strings.Contains(out, tag) {
			t.Fatalf("expected output to contain %q element, got %q", tag, out)
		}
	}
}

func TestRenderUsesCustomStyles(t *testing.T) {
	styles := &Styles{CharColor: "#000000"}
	in := Input{
		Width: 10, Height: 10,
		Chars:  []pdfmodel.Char{{Text: "a", BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 5, Bottom: 5}}},
		Styles: styles,
	}
	var buf bytes.Buffer
	if err := Render(&buf, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "#000000") {
		t.Fatalf("expected custom char color in output, got %q", buf.String())
	}
}

func TestRenderDeterministicOutput(t *testing.T) {
	in := Input{
		Width: 10, Height: 10,
		Chars: []pdfmodel.Char{
			{Text: "a", BBox: pdfmodel.BBox{X0: 0, Top: 0, X1: 5, Bottom: 5}},
			{Text: "b", BBox: pdfmodel.BBox{X0: 5, Top: 0, X1: 10, Bottom: 5}},
		},
	}
	var first, second bytes.Buffer
	if err := Render(&first, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Render(&second, in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("expected identical output across renders")
	}
}
