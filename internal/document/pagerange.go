package document

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePageRange parses a `--pages` spec like "1,3-5" (1-indexed,
// inclusive ranges) into a strictly increasing, deduplicated sequence
// of 0-indexed page numbers, per spec.md §6/§8. pageCount bounds the
// spec against the document actually being operated on.
func ParsePageRange(spec string, pageCount int) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		pages := make([]int, pageCount)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}

	seen := map[int]bool{}
	var pages []int

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if dash := strings.IndexByte(part, '-'); dash > 0 {
			start, err := parsePageNumber(part[:dash], pageCount)
			if err != nil {
				return nil, err
			}
			end, err := parsePageNumber(part[dash+1:], pageCount)
			if err != nil {
				return nil, err
			}
			if end < start {
				start, end = end, start
			}
			for p := start; p <= end; p++ {
				if !seen[p] {
					seen[p] = true
					pages = append(pages, p)
				}
			}
			continue
		}

		p, err := parsePageNumber(part, pageCount)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}

	sort.Ints(pages)
	return pages, nil
}

// parsePageNumber validates and converts a single 1-indexed page
// token to a 0-indexed page number, producing the exact error
// messages spec.md §8 names ("pages start at 1", "exceeds document
// page count").
func parsePageNumber(tok string, pageCount int) (int, error) {
	tok = strings.TrimSpace(tok)
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Errorf("invalid page number %q", tok)
	}
	if n == 0 {
		return 0, errors.New("pages start at 1")
	}
	if n < 0 {
		return 0, errors.Errorf("invalid page number %d", n)
	}
	if n > pageCount {
		return 0, errors.Errorf("page %d exceeds document page count %d", n, pageCount)
	}
	return n - 1, nil
}
