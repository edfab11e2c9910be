package annot

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

func TestHyperlinksFindsURIAction(t *testing.T) {
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Link"),
				"Rect":    types.Array{types.Integer(10), types.Integer(700), types.Integer(110), types.Integer(720)},
				"A": types.Dict{
					"S":   types.Name("URI"),
					"URI": types.StringLiteral("https://example.com"),
				},
			},
		},
	}

	links := Hyperlinks(nil, pageDict, 1, 0, 792)
	if len(links) != 1 {
		t.Fatalf("expected 1 hyperlink, got %d", len(links))
	}
	if links[0].URI != "https://example.com" {
		t.Fatalf("unexpected URI: %q", links[0].URI)
	}
	if links[0].Page != 1 {
		t.Fatalf("expected page 1, got %d", links[0].Page)
	}
	if links[0].BBox.Top != 792-720 {
		t.Fatalf("expected top %v, got %v", 792-720, links[0].BBox.Top)
	}
}

func TestHyperlinksIgnoresNonURIActions(t *testing.T) {
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Link"),
				"Rect":    types.Array{types.Integer(0), types.Integer(0), types.Integer(10), types.Integer(10)},
				"A": types.Dict{
					"S": types.Name("GoTo"),
				},
			},
		},
	}
	if links := Hyperlinks(nil, pageDict, 1, 0, 792); links != nil {
		t.Fatalf("expected no hyperlinks for a non-URI action, got %v", links)
	}
}

func TestHyperlinksNoAnnots(t *testing.T) {
	if links := Hyperlinks(nil, types.Dict{}, 1, 0, 792); links != nil {
		t.Fatalf("expected nil for a page with no Annots, got %v", links)
	}
}

func TestFormFieldsDirectWidget(t *testing.T) {
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Widget"),
				"FT":      types.Name("Tx"),
				"T":       types.StringLiteral("name"),
				"V":       types.StringLiteral("Alice"),
				"Rect":    types.Array{types.Integer(0), types.Integer(0), types.Integer(100), types.Integer(20)},
			},
		},
	}

	fields := FormFields(nil, pageDict, 1, 0, 792)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	f := fields[0]
	if f.Type != "Tx" || f.Name != "name" || f.Value != "Alice" {
		t.Fatalf("unexpected field: %+v", f)
	}
}

func TestFormFieldsResolvesParentChain(t *testing.T) {
	parent := types.Dict{
		"FT": types.Name("Btn"),
		"T":  types.StringLiteral("agree"),
	}
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Widget"),
				"Parent":  parent,
				"V":       types.Name("Yes"),
			},
		},
	}

	fields := FormFields(nil, pageDict, 1, 0, 792)
	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	f := fields[0]
	if f.Type != "Btn" || f.Name != "agree" || f.Value != "Yes" {
		t.Fatalf("unexpected field resolved from parent: %+v", f)
	}
}

func TestSignaturesReadsSigDictMetadata(t *testing.T) {
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Widget"),
				"FT":      types.Name("Sig"),
				"T":       types.StringLiteral("sig1"),
				"V": types.Dict{
					"Filter":    types.Name("Adobe.PPKLite"),
					"SubFilter": types.Name("adbe.pkcs7.detached"),
					"Name":      types.StringLiteral("Jane Doe"),
					"Reason":    types.StringLiteral("approval"),
					"ByteRange": types.Array{types.Integer(0), types.Integer(100), types.Integer(200), types.Integer(50)},
				},
			},
		},
	}

	sigs := Signatures(nil, pageDict)
	if len(sigs) != 1 {
		t.Fatalf("expected 1 signature, got %d", len(sigs))
	}
	s := sigs[0]
	if s.FieldName != "sig1" || s.Name != "Jane Doe" || s.Reason != "approval" {
		t.Fatalf("unexpected signature: %+v", s)
	}
	if len(s.ByteRange) != 4 {
		t.Fatalf("expected 4-element byte range, got %d", len(s.ByteRange))
	}
}

func TestSignaturesSkipsNonSigWidgets(t *testing.T) {
	pageDict := types.Dict{
		"Annots": types.Array{
			types.Dict{
				"Subtype": types.Name("Widget"),
				"FT":      types.Name("Tx"),
			},
		},
	}
	if sigs := Signatures(nil, pageDict); sigs != nil {
		t.Fatalf("expected no signatures for a non-Sig widget, got %v", sigs)
	}
}
