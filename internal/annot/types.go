// Package annot extracts the interactive/structural parts of a PDF
// that spec.md §2 calls out-of-scope for the extraction core proper
// but are ambient CLI-surface features (SPEC_FULL.md §3): hyperlinks,
// the bookmark/outline tree, AcroForm fields, and signature metadata.
// Grounded on pkg/gopdf/annotation.go, annotation_loader.go,
// form_field.go, and form_field_loader.go, retargeted from the
// teacher's render-time Annotation/FormField structs to page-facade
// records with top-left BBox coordinates.
package annot

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// Hyperlink is a Link annotation whose /A action is a URI action
// (spec.md §8 scenario 3).
type Hyperlink struct {
	URI  string
	BBox pdfmodel.BBox
	Page int
}

// Bookmark is one node of the document outline tree.
type Bookmark struct {
	Title    string
	Page     int // 0 if the destination couldn't be resolved to a page
	Children []Bookmark
}

// FormField is one AcroForm field (Tx, Btn, Ch, or Sig).
type FormField struct {
	Type         string
	Name         string
	Value        string
	DefaultValue string
	BBox         pdfmodel.BBox
	Options      []string
	Page         int
}

// Signature is a signature field's dictionary metadata, exposed
// without cryptographic verification per spec.md §2 Non-goals.
type Signature struct {
	Filter    string
	SubFilter string
	Name      string
	Reason    string
	M         string // signing time, raw PDF date string
	ByteRange []int
	FieldName string
}
