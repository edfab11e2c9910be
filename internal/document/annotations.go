package document

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"

	"github.com/plumbergo/pdfplumb/internal/annot"
)

// Hyperlinks returns one page's Link annotations (spec.md §3 supplement,
// original_source's hyperlink.rs).
func (d *Document) Hyperlinks(pageNum int) ([]annot.Hyperlink, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pageDict, my0, mediaHeight, err := d.pageDictAndMediaBase(pageNum)
	if err != nil {
		return nil, err
	}
	return annot.Hyperlinks(d.ctx, pageDict, pageNum, my0, mediaHeight), nil
}

// Bookmarks walks the document's outline tree (original_source's
// bookmark.rs), guarding against cyclic outline graphs per spec.md §9.
func (d *Document) Bookmarks() []annot.Bookmark {
	d.mu.Lock()
	defer d.mu.Unlock()
	return annot.Bookmarks(d.ctx)
}

// FormFields returns one page's AcroForm Widget fields (original_source's
// form_field.rs), resolving FT/T/V/DV/Opt up the /Parent chain.
func (d *Document) FormFields(pageNum int) ([]annot.FormField, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pageDict, my0, mediaHeight, err := d.pageDictAndMediaBase(pageNum)
	if err != nil {
		return nil, err
	}
	return annot.FormFields(d.ctx, pageDict, pageNum, my0, mediaHeight), nil
}

// Signatures returns one page's Sig field metadata without performing
// any cryptographic verification (spec.md §2 Non-goals; original_source's
// signature.rs).
func (d *Document) Signatures(pageNum int) ([]annot.Signature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pageDict, _, _, err := d.pageDictAndMediaBase(pageNum)
	if err != nil {
		return nil, err
	}
	return annot.Signatures(d.ctx, pageDict), nil
}

func (d *Document) pageDictAndMediaBase(pageNum int) (pageDict types.Dict, my0, mediaHeight float64, err error) {
	if pageNum < 1 || pageNum > d.pageCount {
		return nil, 0, 0, errors.Errorf("page %d out of range [1, %d]", pageNum, d.pageCount)
	}
	dict, _, _, ferr := d.ctx.PageDict(pageNum, false)
	if ferr != nil {
		return nil, 0, 0, errors.Wrapf(ferr, "page %d dict", pageNum)
	}
	_, y0, _, y1, ok := rawBox(dict, "MediaBox")
	if !ok {
		y0, y1 = 0, 792
	}
	return dict, y0, y1 - y0, nil
}
