package document

import (
	"bytes"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"

	"github.com/plumbergo/pdfplumb/internal/content"
	"github.com/plumbergo/pdfplumb/internal/page"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// collector accumulates one page's interpreter events into the slices
// page.New needs. Grounded on the teacher's PageElements accumulator in
// pkg/gopdf/reader.go's ExtractPageElements, split out as its own type
// instead of being inlined, since this collector also applies
// UnicodeNorm to char text before it is stored.
type collector struct {
	normForm UnicodeNormForm

	chars    []pdfmodel.Char
	lines    []pdfmodel.Line
	rects    []pdfmodel.Rect
	curves   []pdfmodel.Curve
	images   []pdfmodel.Image
	warnings []pdfmodel.Warning
}

func (c *collector) AddChar(ch pdfmodel.Char) {
	if ch.Text != "" {
		if form, ok := normFormOf(c.normForm); ok {
			ch.Text = form.String(ch.Text)
		}
	}
	c.chars = append(c.chars, ch)
}

// normFormOf maps UnicodeNormForm onto golang.org/x/text/unicode/norm's
// Form constants; ok is false for UnicodeNormNone, which applies none.
func normFormOf(f UnicodeNormForm) (norm.Form, bool) {
	switch f {
	case UnicodeNormNFC:
		return norm.NFC, true
	case UnicodeNormNFD:
		return norm.NFD, true
	case UnicodeNormNFKC:
		return norm.NFKC, true
	case UnicodeNormNFKD:
		return norm.NFKD, true
	default:
		return norm.NFC, false
	}
}

func (c *collector) AddLine(l pdfmodel.Line)   { c.lines = append(c.lines, l) }
func (c *collector) AddRect(r pdfmodel.Rect)   { c.rects = append(c.rects, r) }
func (c *collector) AddCurve(cv pdfmodel.Curve) { c.curves = append(c.curves, cv) }
func (c *collector) AddImage(img pdfmodel.Image) { c.images = append(c.images, img) }

func (c *collector) Warn(code, message string) {
	c.warnings = append(c.warnings, pdfmodel.Warning{Code: code, Message: message})
}

// Page builds one fully-interpreted page.Page: it resolves the page
// dict's content streams and Resources, runs content.Interpreter over
// the concatenated stream bytes, and wraps the collected events in a
// page.Page alongside the page's derived geometry. Grounded on
// pkg/gopdf/reader.go's per-page pipeline (PageDict -> Contents ->
// extractContentStreams -> loadResources -> interpret), replacing its
// Cairo rendering with content.Interpreter's structured event
// collection.
func (d *Document) Page(pageNum int) (*page.Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if pageNum < 1 || pageNum > d.pageCount {
		return nil, errors.Errorf("page %d out of range (document has %d pages)", pageNum, d.pageCount)
	}

	geom, err := d.pageGeometry(pageNum)
	if err != nil {
		return nil, err
	}

	pageDict, _, _, err := d.ctx.PageDict(pageNum, false)
	if err != nil {
		return nil, errors.Wrapf(err, "page %d dict", pageNum)
	}

	var resources *content.Resources
	if resObj, found := pageDict.Find("Resources"); found {
		resources, err = loadResources(d.ctx, resObj)
		if err != nil {
			resources = content.NewResources()
		}
	} else {
		resources = content.NewResources()
	}

	data, err := pageContentBytes(d.ctx, pageDict)
	if err != nil {
		return nil, errors.Wrapf(err, "page %d content", pageNum)
	}

	coll := &collector{normForm: d.opts.UnicodeNorm}
	interp := content.NewInterpreter(resources, geom.Height, pageNum, coll)
	if err := interp.Run(data); err != nil {
		coll.Warn("interpreter", err.Error())
	}

	return page.New(geom, pageNum, coll.chars, coll.lines, coll.rects, coll.curves, coll.images, coll.warnings), nil
}

// pageContentBytes resolves a page's /Contents entry (a single stream
// or an array of streams) and concatenates the decoded stream bodies,
// separated by a newline the way independent content-stream fragments
// are required to be per the PDF spec. Grounded on
// pkg/gopdf/reader.go's extractContentStreams.
func pageContentBytes(ctx *model.Context, pageDict types.Dict) ([]byte, error) {
	contents, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}
	streams, err := extractContentStreams(ctx, contents)
	if err != nil {
		return nil, err
	}
	return bytes.Join(streams, []byte("\n")), nil
}

func extractContentStreams(ctx *model.Context, contents types.Object) ([][]byte, error) {
	switch obj := contents.(type) {
	case types.IndirectRef:
		derefObj, err := ctx.Dereference(obj)
		if err != nil {
			return nil, errors.Wrap(err, "dereference contents")
		}
		return extractContentStreams(ctx, derefObj)

	case types.StreamDict:
		if len(obj.Content) == 0 && len(obj.Raw) > 0 {
			if err := obj.Decode(); err != nil {
				return nil, errors.Wrap(err, "decode content stream")
			}
		}
		if len(obj.Content) == 0 {
			return nil, nil
		}
		return [][]byte{obj.Content}, nil

	case types.Array:
		var streams [][]byte
		for _, item := range obj {
			resolved := item
			if ref, ok := item.(types.IndirectRef); ok {
				d, err := ctx.Dereference(ref)
				if err != nil {
					continue
				}
				resolved = d
			}
			itemStreams, err := extractContentStreams(ctx, resolved)
			if err != nil {
				continue
			}
			streams = append(streams, itemStreams...)
		}
		return streams, nil

	default:
		return nil, nil
	}
}

// Pages returns every page in document order, per spec.md §5's
// "emitted page results match page index" ordering guarantee. A page
// that fails to interpret is skipped and its error, wrapped with the
// page number, is returned in the second result rather than aborting
// the whole run, matching
// spec.md §7's page-level failure isolation.
func (d *Document) Pages() ([]*page.Page, []error) {
	pages := make([]*page.Page, 0, d.pageCount)
	var errs []error
	for n := 1; n <= d.pageCount; n++ {
		p, err := d.Page(n)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "page %d", n))
			continue
		}
		pages = append(pages, p)
	}
	return pages, errs
}

// ParallelPages runs Page across a bounded worker pool and returns
// results in page order regardless of completion order, the "emitted
// page results match page index" property from spec.md §5. Grounded
// on pkg/gopdf/concurrent_renderer.go's worker-pool-channel pattern
// (ConcurrentRenderer.RenderPages), generalized from render jobs to
// page construction. Each Document.Page call takes d.mu itself, so
// workers only contend on that lock, not on shared result state.
func (d *Document) ParallelPages(maxWorkers int) ([]*page.Page, []error) {
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	pages := make([]*page.Page, d.pageCount)
	pageErrs := make([]error, d.pageCount)

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxWorkers)

	for n := 1; n <= d.pageCount; n++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(pageNum int) {
			defer wg.Done()
			defer func() { <-sem }()

			p, err := d.Page(pageNum)
			if err != nil {
				pageErrs[pageNum-1] = errors.Wrapf(err, "page %d", pageNum)
				return
			}
			pages[pageNum-1] = p
		}(n)
	}
	wg.Wait()

	var errs []error
	result := make([]*page.Page, 0, d.pageCount)
	for i, p := range pages {
		if pageErrs[i] != nil {
			errs = append(errs, pageErrs[i])
			continue
		}
		result = append(result, p)
	}
	return result, errs
}
