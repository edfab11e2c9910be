package annot

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// FormFields walks one page's Widget annotations into FormField
// records, resolving field type/name/value up the /Parent chain when a
// Widget doesn't carry them directly (a field split across pages or
// merged with its sole Widget may have /FT, /T, /V on the Widget
// itself, the Field dict it points at via /Parent, or both).
// Grounded on pkg/gopdf/form_field_loader.go's
// ExtractFormFields/parseFormField field-dict walk, narrowed to one
// page's Annots (rather than the global AcroForm /Fields array) so the
// Widget's own /Rect can be converted to a BBox using that page's own
// geometry, with no cross-page ambiguity.
func FormFields(ctx *model.Context, pageDict types.Dict, pageNum int, mediaY0, mediaHeight float64) []FormField {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	annotsArr, ok := deref(ctx, annotsObj).(types.Array)
	if !ok {
		return nil
	}

	var fields []FormField
	for _, a := range annotsArr {
		dict, ok := deref(ctx, a).(types.Dict)
		if !ok {
			continue
		}
		if nameFromObject(mustFind(dict, "Subtype")) != "Widget" {
			continue
		}
		fields = append(fields, parseWidgetField(ctx, dict, pageNum, mediaY0, mediaHeight))
	}
	return fields
}

func parseWidgetField(ctx *model.Context, dict types.Dict, pageNum int, mediaY0, mediaHeight float64) FormField {
	field := FormField{Page: pageNum}

	if rectObj, found := dict.Find("Rect"); found {
		if bbox, ok := rectToBBox(ctx, rectObj, mediaY0, mediaHeight); ok {
			field.BBox = bbox
		}
	}

	const maxParentDepth = 16
	current := dict
	for depth := 0; depth < maxParentDepth; depth++ {
		if field.Type == "" {
			if ft, found := current.Find("FT"); found {
				field.Type = nameFromObject(ft)
			}
		}
		if field.Name == "" {
			if t, found := current.Find("T"); found {
				field.Name = stringFromObject(t)
			}
		}
		if field.Value == "" {
			if v, found := current.Find("V"); found {
				field.Value = stringOrNameValue(v)
			}
		}
		if field.DefaultValue == "" {
			if dv, found := current.Find("DV"); found {
				field.DefaultValue = stringOrNameValue(dv)
			}
		}
		if field.Options == nil {
			if opt, found := current.Find("Opt"); found {
				field.Options = optionStrings(ctx, opt)
			}
		}

		if field.Type != "" && field.Name != "" {
			break
		}
		parentObj, found := current.Find("Parent")
		if !found {
			break
		}
		parent, ok := deref(ctx, parentObj).(types.Dict)
		if !ok {
			break
		}
		current = parent
	}

	return field
}

func stringOrNameValue(obj types.Object) string {
	switch v := obj.(type) {
	case types.StringLiteral:
		return v.String()
	case types.Name:
		return v.String()
	}
	return ""
}

func optionStrings(ctx *model.Context, obj types.Object) []string {
	arr, ok := deref(ctx, obj).(types.Array)
	if !ok {
		return nil
	}
	opts := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(types.StringLiteral); ok {
			opts = append(opts, s.String())
		}
	}
	return opts
}
