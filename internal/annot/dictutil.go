package annot

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

func deref(ctx *model.Context, obj types.Object) types.Object {
	if ref, ok := obj.(types.IndirectRef); ok {
		if d, err := ctx.Dereference(ref); err == nil {
			return d
		}
	}
	return obj
}

func numberFromObject(obj types.Object) float64 {
	switch v := obj.(type) {
	case types.Float:
		return float64(v)
	case types.Integer:
		return float64(v)
	}
	return 0
}

func nameFromObject(obj types.Object) string {
	if n, ok := obj.(types.Name); ok {
		return n.String()
	}
	return ""
}

func stringFromObject(obj types.Object) string {
	if s, ok := obj.(types.StringLiteral); ok {
		return s.String()
	}
	return ""
}

func intFromObject(obj types.Object) int {
	return int(numberFromObject(obj))
}

// rectToBBox converts a PDF /Rect array (bottom-left-origin, y up) to
// a top-left BBox, the same flip document.pageGeometry applies to page
// boxes.
func rectToBBox(ctx *model.Context, obj types.Object, mediaY0, mediaHeight float64) (pdfmodel.BBox, bool) {
	arr, ok := deref(ctx, obj).(types.Array)
	if !ok || len(arr) < 4 {
		return pdfmodel.BBox{}, false
	}
	x0 := numberFromObject(arr[0])
	y0 := numberFromObject(arr[1])
	x1 := numberFromObject(arr[2])
	y1 := numberFromObject(arr[3])
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return pdfmodel.BBox{
		X0:     x0,
		X1:     x1,
		Top:    mediaHeight - (y1 - mediaY0),
		Bottom: mediaHeight - (y0 - mediaY0),
	}, true
}
