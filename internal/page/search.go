package page

import (
	"regexp"

	"github.com/plumbergo/pdfplumb/internal/pdfmodel"
)

// SearchOptions controls search (spec.md §4.6).
type SearchOptions struct {
	Regex     bool
	CaseInsensitive bool
}

func NewSearchOptions() SearchOptions {
	return SearchOptions{}
}

// Search matches pattern against the page's chars joined in
// content-stream order (spec.md §4.6); the chars are not re-sorted into
// reading order first. When opts.Regex is false, pattern is matched
// literally. Every returned match carries the chars it spans so
// callers can recover an exact bounding box.
func (p *Page) Search(pattern string, opts SearchOptions) ([]pdfmodel.SearchMatch, error) {
	ordered := orderedChars(p.chars)
	if len(ordered) == 0 {
		return nil, nil
	}

	buf, offsets := charBuffer(ordered)

	expr := pattern
	if !opts.Regex {
		expr = regexp.QuoteMeta(pattern)
	}
	if opts.CaseInsensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}

	var matches []pdfmodel.SearchMatch
	for _, loc := range re.FindAllStringIndex(buf, -1) {
		start, end := loc[0], loc[1]
		firstChar := charIndexForOffset(offsets, start)
		lastChar := charIndexForOffset(offsets, end-1)
		if firstChar < 0 || lastChar < 0 || lastChar < firstChar {
			continue
		}

		spanned := ordered[firstChar : lastChar+1]
		boxes := make([]pdfmodel.BBox, len(spanned))
		for i, c := range spanned {
			boxes[i] = c.BBox
		}

		matches = append(matches, pdfmodel.SearchMatch{
			Text:  buf[start:end],
			BBox:  pdfmodel.UnionAll(boxes),
			Chars: append([]pdfmodel.Char(nil), spanned...),
			Page:  p.Number,
		})
	}
	return matches, nil
}

// orderedChars returns a copy of chars in the page's content-stream
// order; it does not sort them, so match chars appear in the same
// order as in the page's own char slice.
func orderedChars(chars []pdfmodel.Char) []pdfmodel.Char {
	ordered := append([]pdfmodel.Char(nil), chars...)
	return ordered
}

// charBuffer concatenates char text into one buffer and records, for
// each char, the byte offset its text starts at.
func charBuffer(chars []pdfmodel.Char) (string, []int) {
	offsets := make([]int, len(chars)+1)
	var sb []byte
	for i, c := range chars {
		offsets[i] = len(sb)
		sb = append(sb, c.Text...)
	}
	offsets[len(chars)] = len(sb)
	return string(sb), offsets
}

// charIndexForOffset finds the char whose text range contains the
// given byte offset into the concatenated buffer.
func charIndexForOffset(offsets []int, byteOffset int) int {
	for i := 0; i < len(offsets)-1; i++ {
		if byteOffset >= offsets[i] && byteOffset < offsets[i+1] {
			return i
		}
	}
	if len(offsets) >= 2 && byteOffset == offsets[len(offsets)-1] {
		return len(offsets) - 2
	}
	return -1
}
