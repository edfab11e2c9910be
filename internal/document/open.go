// Package document opens a PDF, walks its page tree via pdfcpu, and
// produces fully-interpreted Pages (spec.md §4.6, §5).
package document

import (
	"bytes"
	"os"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pkg/errors"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// UnicodeNormForm selects the Unicode normalization form applied to
// every resolved glyph string and to search buffers (spec.md §6: "optional
// Unicode normalization form {None, NFC, NFD, NFKC, NFKD}").
type UnicodeNormForm int

const (
	UnicodeNormNone UnicodeNormForm = iota
	UnicodeNormNFC
	UnicodeNormNFD
	UnicodeNormNFKC
	UnicodeNormNFKD
)

// OpenOptions controls document-open behavior (spec.md §6 CLI flags
// and §7 error handling).
type OpenOptions struct {
	Password string

	// UnicodeNorm selects the normalization form applied as each glyph
	// string is produced. UnicodeNormNone (the zero value) applies none.
	UnicodeNorm UnicodeNormForm

	// Repair retries a failed initial parse with pdfcpu's lenient
	// xref-recovery path before giving up. Nil means no repair attempt.
	Repair *RepairOptions

	// MaxDecompressedBytes is stored with the options but is not read
	// when streams are decoded: stream decompression is not bounded by
	// it, whatever its value.
	MaxDecompressedBytes int64
}

// Document is an opened PDF: the pdfcpu context plus resolved options.
type Document struct {
	ctx  *model.Context
	opts OpenOptions

	mu        sync.Mutex
	pageCount int
	repairLog []RepairEntry
}

// Open reads a PDF from disk. Grounded on pkg/gopdf/reader.go's
// api.ReadContextFile usage, generalized to carry password/repair
// options through pdfcpu's Configuration rather than assuming an
// unencrypted, well-formed file.
func Open(path string, opts OpenOptions) (*Document, error) {
	conf := configurationFor(opts)

	if conf.UserPW == "" && conf.OwnerPW == "" {
		ctx, err := api.ReadContextFile(path)
		if err == nil {
			return newDocument(ctx, opts, nil)
		}
		if opts.Repair == nil {
			return nil, errors.Wrap(err, "open pdf")
		}
		ctx, log, err := repairReadFile(path, conf, *opts.Repair)
		if err != nil {
			return nil, errors.Wrap(err, "open pdf after repair attempt")
		}
		return newDocument(ctx, opts, log)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open pdf")
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		if opts.Repair == nil {
			return nil, errors.Wrap(err, "open pdf")
		}
		var log []RepairEntry
		ctx, log, err = repairRead(f, conf, *opts.Repair)
		if err != nil {
			return nil, errors.Wrap(err, "open pdf after repair attempt")
		}
		return newDocument(ctx, opts, log)
	}
	return newDocument(ctx, opts, nil)
}

// OpenReader reads a PDF from an in-memory byte slice, for library
// callers who already hold the bytes (the CLI opens files via Open).
func OpenReader(data []byte, opts OpenOptions) (*Document, error) {
	conf := configurationFor(opts)
	rs := bytes.NewReader(data)
	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		if opts.Repair == nil {
			return nil, errors.Wrap(err, "open pdf")
		}
		var log []RepairEntry
		ctx, log, err = repairRead(rs, conf, *opts.Repair)
		if err != nil {
			return nil, errors.Wrap(err, "open pdf after repair attempt")
		}
		return newDocument(ctx, opts, log)
	}
	return newDocument(ctx, opts, nil)
}

func newDocument(ctx *model.Context, opts OpenOptions, repairLog []RepairEntry) (*Document, error) {
	return &Document{ctx: ctx, opts: opts, pageCount: ctx.PageCount, repairLog: repairLog}, nil
}

// RepairLog returns the repair-log entries recorded if the document
// was only openable via the lenient repair path (spec.md §8 scenario
// 5); nil when no repair was needed or attempted.
func (d *Document) RepairLog() []RepairEntry {
	return d.repairLog
}

func configurationFor(opts OpenOptions) *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if opts.Password != "" {
		conf.UserPW = opts.Password
		conf.OwnerPW = opts.Password
	}
	return conf
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Close releases document-level resources. pdfcpu's in-memory context
// needs no explicit teardown; this exists so callers have a symmetric
// Open/Close pair and a place to hook future resource cleanup.
func (d *Document) Close() error {
	return nil
}

// pageGeometry derives a page's box geometry and rotation (spec.md §3
// PageGeometry), used when building each page facade.
func (d *Document) pageGeometry(pageNum int) (pdfmodel.PageGeometry, error) {
	pageDict, _, _, err := d.ctx.PageDict(pageNum, false)
	if err != nil {
		return pdfmodel.PageGeometry{}, errors.Wrapf(err, "page %d dict", pageNum)
	}

	mx0, my0, mx1, my1, ok := rawBox(pageDict, "MediaBox")
	if !ok {
		mx0, my0, mx1, my1 = 0, 0, 612, 792
	}
	mediaHeight := my1 - my0
	mediaBox := &pdfmodel.BBox{X0: mx0, X1: mx1, Top: 0, Bottom: mediaHeight}

	geom := pdfmodel.PageGeometry{
		MediaBox:  *mediaBox,
		PageIndex: pageNum - 1,
		Width:     mediaBox.Width(),
		Height:    mediaBox.Height(),
	}

	if cropBox, err := boxFromDict(pageDict, "CropBox", my0, mediaHeight); err == nil {
		geom.CropBox = cropBox
	}
	if trimBox, err := boxFromDict(pageDict, "TrimBox", my0, mediaHeight); err == nil {
		geom.TrimBox = trimBox
	}
	if bleedBox, err := boxFromDict(pageDict, "BleedBox", my0, mediaHeight); err == nil {
		geom.BleedBox = bleedBox
	}
	if artBox, err := boxFromDict(pageDict, "ArtBox", my0, mediaHeight); err == nil {
		geom.ArtBox = artBox
	}

	if rotate, found := pageDict.Find("Rotate"); found {
		geom.Rotation = ((intFromObject(rotate) % 360) + 360) % 360
	}

	return geom, nil
}
