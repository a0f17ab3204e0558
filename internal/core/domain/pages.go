package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ParsePageRange parses a 1-based page selection expression against a page
// count. "all", "*" or the empty string select every page. Otherwise the
// expression is a comma-separated list of single pages ("3") and inclusive
// spans ("5-7"), e.g. "1,3,5-7". The result is sorted and de-duplicated.
//
// Malformed entries and pages outside 1..total return ErrInvalidPageRange
// wrapped with the offending token.
func ParsePageRange(expr string, total int) ([]int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(expr))
	if trimmed == "" || trimmed == "all" || trimmed == "*" {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages, nil
	}

	seen := make(map[int]bool)
	var pages []int
	add := func(n int) error {
		if n < 1 || n > total {
			return fmt.Errorf("%w: page %d out of range 1-%d", ErrInvalidPageRange, n, total)
		}
		if !seen[n] {
			seen[n] = true
			pages = append(pages, n)
		}
		return nil
	}

	for _, part := range strings.Split(trimmed, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("%w: empty entry in %q", ErrInvalidPageRange, expr)
		}

		if lo, hi, isSpan := strings.Cut(part, "-"); isSpan {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPageRange, part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidPageRange, part)
			}
			if start > end {
				return nil, fmt.Errorf("%w: descending span %q", ErrInvalidPageRange, part)
			}
			for n := start; n <= end; n++ {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPageRange, part)
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	sort.Ints(pages)
	return pages, nil
}
