package words

import (
	"sort"
	"strings"
	"unicode"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// Extract implements the spec.md §4.5 clustering algorithm: sort (or
// preserve) char order, group into lines by vertical-center tolerance,
// split each line into words at gaps/whitespace/punctuation/attribute
// boundaries, with CJK characters always starting their own word.
func Extract(chars []pdfmodel.Char, opts Options) []pdfmodel.Word {
	ordered := append([]pdfmodel.Char(nil), chars...)
	if !opts.UseTextFlow {
		sort.SliceStable(ordered, func(i, j int) bool {
			ci, cj := ordered[i], ordered[j]
			if !sameLine(ci, cj, opts.YTolerance) {
				if opts.VerticalTTB {
					return ci.BBox.CenterY() < cj.BBox.CenterY()
				}
				return ci.BBox.CenterY() > cj.BBox.CenterY()
			}
			if opts.HorizontalLTR {
				return ci.BBox.X0 < cj.BBox.X0
			}
			return ci.BBox.X0 > cj.BBox.X0
		})
	}

	lines := clusterLines(ordered, opts.YTolerance)

	var words []pdfmodel.Word
	for _, line := range lines {
		words = append(words, splitLineIntoWords(line, opts)...)
	}
	return words
}

func sameLine(a, b pdfmodel.Char, yTolerance float64) bool {
	return absF(a.BBox.CenterY()-b.BBox.CenterY()) <= yTolerance
}

// clusterLines groups chars (assumed already in reading order within
// a prospective line) into lines by vertical-center tolerance.
func clusterLines(chars []pdfmodel.Char, yTolerance float64) [][]pdfmodel.Char {
	var lines [][]pdfmodel.Char
	var current []pdfmodel.Char
	var lineCenter float64
	for _, c := range chars {
		if len(current) == 0 {
			current = []pdfmodel.Char{c}
			lineCenter = c.BBox.CenterY()
			continue
		}
		if absF(c.BBox.CenterY()-lineCenter) <= yTolerance {
			current = append(current, c)
			continue
		}
		lines = append(lines, current)
		current = []pdfmodel.Char{c}
		lineCenter = c.BBox.CenterY()
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

func splitLineIntoWords(line []pdfmodel.Char, opts Options) []pdfmodel.Word {
	var words []pdfmodel.Word
	var current []pdfmodel.Char
	var prev *pdfmodel.Char

	flush := func() {
		if len(current) == 0 {
			return
		}
		words = append(words, buildWord(current))
		current = nil
	}

	for i := range line {
		c := line[i]
		if isCJK(c.Text) {
			flush()
			words = append(words, buildWord([]pdfmodel.Char{c}))
			prev = nil
			continue
		}

		isBlank := isBlankText(c.Text)
		if prev != nil {
			gap := c.BBox.X0 - prev.BBox.X1
			if !opts.HorizontalLTR {
				gap = prev.BBox.X0 - c.BBox.X1
			}
			boundary := gap > opts.XTolerance
			if !opts.KeepBlankChars && isBlankText(prev.Text) {
				boundary = true
			}
			if opts.SplitAtPunctuation && (isPunct(prev.Text) != isPunct(c.Text)) {
				boundary = true
			}
			if attrsDiffer(*prev, c, opts.ExtraAttrs) {
				boundary = true
			}
			if boundary {
				flush()
			}
		}

		if isBlank && !opts.KeepBlankChars {
			prev = &line[i]
			continue
		}

		current = append(current, c)
		prev = &line[i]
	}
	flush()
	return words
}

func buildWord(chars []pdfmodel.Char) pdfmodel.Word {
	var boxes []pdfmodel.BBox
	var sb strings.Builder
	for _, c := range chars {
		boxes = append(boxes, c.BBox)
		sb.WriteString(c.Text)
	}
	bbox := pdfmodel.UnionAll(boxes)
	return pdfmodel.Word{
		Text:      sb.String(),
		BBox:      bbox,
		DocTop:    bbox.Top,
		Direction: chars[0].Direction,
		Chars:     chars,
		Page:      chars[0].Page,
	}
}

func isBlankText(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isPunct(s string) bool {
	for _, r := range s {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}
	return false
}

func attrsDiffer(a, b pdfmodel.Char, attrs []string) bool {
	for _, attr := range attrs {
		switch attr {
		case "fontname":
			if a.FontName != b.FontName {
				return true
			}
		case "size":
			if a.Size != b.Size {
				return true
			}
		case "upright":
			if a.Upright != b.Upright {
				return true
			}
		}
	}
	return false
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// isCJK reports whether the first rune of s falls in a Unicode block
// spec.md §4.5 names as glue-free: CJK Unified Ideographs and
// Extensions A/B, Hiragana, Katakana, Hangul Syllables/Jamo,
// Bopomofo, and the Kangxi Radicals block.
func isCJK(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
			return true
		case r >= 0x3400 && r <= 0x4DBF: // Extension A
			return true
		case r >= 0x20000 && r <= 0x2A6DF: // Extension B
			return true
		case r >= 0x3040 && r <= 0x309F: // Hiragana
			return true
		case r >= 0x30A0 && r <= 0x30FF: // Katakana
			return true
		case r >= 0xAC00 && r <= 0xD7A3: // Hangul Syllables
			return true
		case r >= 0x1100 && r <= 0x11FF: // Hangul Jamo
			return true
		case r >= 0x3100 && r <= 0x312F: // Bopomofo
			return true
		case r >= 0x2F00 && r <= 0x2FDF: // Kangxi Radicals
			return true
		}
		return false
	}
	return false
}
