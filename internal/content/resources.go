package content

import (
	"github.com/plumbergo/pdfplumb/internal/encoding"
	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// XObject is a resolved Form or Image XObject, decoded enough for the
// interpreter to recurse into (Form) or emit as an Image event (Image).
// Grounded on pkg/gopdf/xobject_operators.go's XObject struct.
type XObject struct {
	Subtype          string // "Form" or "Image"
	BBox             [4]float64
	Matrix           pdfmodel.Matrix
	Resources        *Resources
	Stream           []byte
	Width            int
	Height           int
	ColorSpace       string
	BitsPerComponent int
	RawData          []byte
	Filters          []string
	Name             string
}

// Resources mirrors a PDF resource dictionary, trimmed to the
// sub-dictionaries the interpreter actually consults. Grounded on
// pkg/gopdf/resources.go Resources, dropping Pattern/Shading/ExtGState
// entirely (paint-only concerns).
type Resources struct {
	Font    map[string]*encoding.Font
	XObject map[string]*XObject
	Parent  *Resources // fallback chain for inherited page resources
}

func NewResources() *Resources {
	return &Resources{
		Font:    make(map[string]*encoding.Font),
		XObject: make(map[string]*XObject),
	}
}

func (r *Resources) GetFont(name string) *encoding.Font {
	if r == nil {
		return nil
	}
	if f, ok := r.Font[name]; ok {
		return f
	}
	return r.Parent.GetFont(name)
}

func (r *Resources) GetXObject(name string) *XObject {
	if r == nil {
		return nil
	}
	if x, ok := r.XObject[name]; ok {
		return x
	}
	return r.Parent.GetXObject(name)
}
