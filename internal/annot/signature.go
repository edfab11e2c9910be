package annot

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Signatures walks one page's Widget annotations for Sig fields and
// returns their dictionary metadata, without any cryptographic
// verification (spec.md §2 Non-goals: "cryptographic verification is
// not" in scope). Grounded on the same Widget/Field walk as
// formfields.go, narrowed to FT == "Sig" and reading the /V signature
// dictionary's metadata entries instead of a field value.
func Signatures(ctx *model.Context, pageDict types.Dict) []Signature {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	annotsArr, ok := deref(ctx, annotsObj).(types.Array)
	if !ok {
		return nil
	}

	var sigs []Signature
	for _, a := range annotsArr {
		widget, ok := deref(ctx, a).(types.Dict)
		if !ok {
			continue
		}
		if nameFromObject(mustFind(widget, "Subtype")) != "Widget" {
			continue
		}
		if fieldType(ctx, widget) != "Sig" {
			continue
		}
		vObj, found := widget.Find("V")
		if !found {
			continue
		}
		sigDict, ok := deref(ctx, vObj).(types.Dict)
		if !ok {
			continue
		}

		sig := Signature{FieldName: stringFromObject(mustFind(widget, "T"))}
		sig.Filter = nameFromObject(mustFind(sigDict, "Filter"))
		sig.SubFilter = nameFromObject(mustFind(sigDict, "SubFilter"))
		sig.Name = stringFromObject(mustFind(sigDict, "Name"))
		sig.Reason = stringFromObject(mustFind(sigDict, "Reason"))
		sig.M = stringFromObject(mustFind(sigDict, "M"))
		if br, found := sigDict.Find("ByteRange"); found {
			if arr, ok := deref(ctx, br).(types.Array); ok {
				sig.ByteRange = make([]int, len(arr))
				for i, v := range arr {
					sig.ByteRange[i] = intFromObject(v)
				}
			}
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

// fieldType resolves FT, walking one /Parent link if the Widget
// doesn't carry it directly.
func fieldType(ctx *model.Context, widget types.Dict) string {
	if ft, found := widget.Find("FT"); found {
		return nameFromObject(ft)
	}
	if parentObj, found := widget.Find("Parent"); found {
		if parent, ok := deref(ctx, parentObj).(types.Dict); ok {
			if ft, found := parent.Find("FT"); found {
				return nameFromObject(ft)
			}
		}
	}
	return ""
}
