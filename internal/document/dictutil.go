package document

import "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

import "github.com/plumbergo/pdfplumb/internal/pdfmodel"

// rawBox reads a four-element rectangle array in raw PDF space
// (bottom-left origin, y increasing upward), normalized so x0<=x1 and
// y0<=y1.
func rawBox(dict types.Dict, key string) (x0, y0, x1, y1 float64, ok bool) {
	obj, found := dict.Find(key)
	if !found {
		return 0, 0, 0, 0, false
	}
	arr, isArr := obj.(types.Array)
	if !isArr || len(arr) != 4 {
		return 0, 0, 0, 0, false
	}
	vals := make([]float64, 4)
	for i, v := range arr {
		vals[i] = numberFromObject(v)
	}
	x0, y0, x1, y1 = vals[0], vals[1], vals[2], vals[3]
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1, y1, true
}

// boxFromDict reads a page box (MediaBox, CropBox, etc.) and converts
// it from PDF's bottom-left-origin space into a top-left
// pdfmodel.BBox relative to the page's own MediaBox, matching the
// `top = mediaHeight - (y - mediaY0)` flip internal/content applies
// to every emitted Char/Line/Rect. Grounded on pkg/gopdf/reader.go's
// applyPageTransformations CropBox handling, generalized to all four
// page boxes and to produce a BBox rather than a translate offset.
func boxFromDict(dict types.Dict, key string, mediaY0, mediaHeight float64) (*pdfmodel.BBox, error) {
	x0, y0, x1, y1, ok := rawBox(dict, key)
	if !ok {
		return nil, nil
	}
	return &pdfmodel.BBox{
		X0:     x0,
		X1:     x1,
		Top:    mediaHeight - (y1 - mediaY0),
		Bottom: mediaHeight - (y0 - mediaY0),
	}, nil
}

func numberFromObject(obj types.Object) float64 {
	switch v := obj.(type) {
	case types.Float:
		return float64(v)
	case types.Integer:
		return float64(v)
	default:
		return 0
	}
}

func intFromObject(obj types.Object) int {
	switch v := obj.(type) {
	case types.Integer:
		return int(v)
	case types.Float:
		return int(v)
	default:
		return 0
	}
}

func nameFromObject(obj types.Object) string {
	if n, ok := obj.(types.Name); ok {
		return n.String()
	}
	return ""
}

func boolFromObject(obj types.Object) bool {
	b, ok := obj.(types.Boolean)
	return ok && bool(b)
}
