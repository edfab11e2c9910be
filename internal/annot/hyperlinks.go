package annot

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Hyperlinks returns every Link annotation on a page whose /A action is
// a URI action (spec.md §8 scenario 3). Grounded on
// pkg/gopdf/annotation_loader.go's ExtractAnnotations/parseAnnotation
// Annots-array walk, narrowed to the Link+URI-action case and
// producing a top-left BBox instead of the teacher's raw Rect array.
func Hyperlinks(ctx *model.Context, pageDict types.Dict, pageNum int, mediaY0, mediaHeight float64) []Hyperlink {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	annotsArr, ok := deref(ctx, annotsObj).(types.Array)
	if !ok {
		return nil
	}

	var links []Hyperlink
	for _, a := range annotsArr {
		annotDict, ok := deref(ctx, a).(types.Dict)
		if !ok {
			continue
		}
		if nameFromObject(mustFind(annotDict, "Subtype")) != "Link" {
			continue
		}

		rectObj, found := annotDict.Find("Rect")
		if !found {
			continue
		}
		bbox, ok := rectToBBox(ctx, rectObj, mediaY0, mediaHeight)
		if !ok {
			continue
		}

		actionObj, found := annotDict.Find("A")
		if !found {
			continue
		}
		actionDict, ok := deref(ctx, actionObj).(types.Dict)
		if !ok {
			continue
		}
		if nameFromObject(mustFind(actionDict, "S")) != "URI" {
			continue
		}
		uri := stringFromObject(deref(ctx, mustFind(actionDict, "URI")))
		if uri == "" {
			continue
		}

		links = append(links, Hyperlink{URI: uri, BBox: bbox, Page: pageNum})
	}
	return links
}

func mustFind(dict types.Dict, key string) types.Object {
	v, _ := dict.Find(key)
	return v
}
