package annot

import (
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Bookmarks walks the document's /Outlines tree into a Bookmark
// forest. Cyclic outline graphs are possible in malformed PDFs (a
// /Next or /First pointing back into an ancestor); spec.md §9 requires
// an explicit visited set keyed by object identity rather than relying
// on language-level lifetime, so every dereferenced IndirectRef's
// object number is recorded and re-visits are skipped instead of
// recursing forever. No teacher precedent exists for outline walking
// (the teacher only renders pages), so the tree-walk shape follows
// pkg/gopdf/annotation_loader.go's dereference-then-type-switch style.
func Bookmarks(ctx *model.Context) []Bookmark {
	catalog := ctx.RootDict
	if catalog == nil {
		return nil
	}
	outlinesObj, found := catalog.Find("Outlines")
	if !found {
		return nil
	}
	outlinesDict, ok := deref(ctx, outlinesObj).(types.Dict)
	if !ok {
		return nil
	}
	firstObj, found := outlinesDict.Find("First")
	if !found {
		return nil
	}

	visited := map[int]bool{}
	return walkOutlineSiblings(ctx, firstObj, visited)
}

func walkOutlineSiblings(ctx *model.Context, obj types.Object, visited map[int]bool) []Bookmark {
	var nodes []Bookmark
	current := obj
	for {
		ref, isRef := current.(types.IndirectRef)
		if isRef {
			objNr := int(ref.ObjectNumber)
			if visited[objNr] {
				break
			}
			visited[objNr] = true
		}

		dict, ok := deref(ctx, current).(types.Dict)
		if !ok {
			break
		}

		node := Bookmark{Title: stringFromObject(mustFind(dict, "Title"))}
		node.Page = resolveDestPage(ctx, dict)

		if firstObj, found := dict.Find("First"); found {
			node.Children = walkOutlineSiblings(ctx, firstObj, visited)
		}
		nodes = append(nodes, node)

		nextObj, found := dict.Find("Next")
		if !found {
			break
		}
		current = nextObj
	}
	return nodes
}

// resolveDestPage resolves an outline entry's target page number
// (1-indexed) from either a direct /Dest array or a /A GoTo action,
// returning 0 when neither is present or resolvable.
func resolveDestPage(ctx *model.Context, dict types.Dict) int {
	if dest, found := dict.Find("Dest"); found {
		if page := pageFromDest(ctx, dest); page > 0 {
			return page
		}
	}
	if actionObj, found := dict.Find("A"); found {
		if actionDict, ok := deref(ctx, actionObj).(types.Dict); ok {
			if nameFromObject(mustFind(actionDict, "S")) == "GoTo" {
				if dest, found := actionDict.Find("D"); found {
					return pageFromDest(ctx, dest)
				}
			}
		}
	}
	return 0
}

// pageFromDest resolves a /Dest array's first element (the target
// page's IndirectRef) to a 1-indexed page number by scanning the
// document's page dicts for a matching object number. pdfcpu's
// model.Context has no direct indirect-ref-to-page-number lookup, so
// this mirrors the linear page-dict scan pkg/gopdf/reader.go already
// does when walking the page tree.
func pageFromDest(ctx *model.Context, dest types.Object) int {
	arr, ok := deref(ctx, dest).(types.Array)
	if !ok || len(arr) == 0 {
		return 0
	}
	ref, ok := arr[0].(types.IndirectRef)
	if !ok {
		return 0
	}
	target := int(ref.ObjectNumber)

	for n := 1; n <= ctx.PageCount; n++ {
		_, pageRef, _, err := ctx.PageDict(n, false)
		if err != nil {
			continue
		}
		if int(pageRef.ObjectNumber) == target {
			return n
		}
	}
	return 0
}
