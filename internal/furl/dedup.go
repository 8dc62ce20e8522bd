package furl

import (
	"maps"
	"net/url"
	"slices"
	"strings"
	"unicode"
)

// Compare orders URLs by scheme, then authority, then path, treating
// near-identical paths as equal.
//
// Path segments made only of digits (IDs, page numbers) and empty segments
// are ignored. Fewer remaining segments sort first. Paths with the same
// number of segments are equal when at most one position differs; otherwise
// the first differing segment decides.
//
// Compare is not transitive: "/a/b" equals "/a/c" and "/a/c" equals "/x/c",
// while "/a/b" and "/x/c" differ. Dedup only merges neighbors after sorting;
// Cluster computes the transitive closure.
func Compare(a, b *URL) int {
	if c := strings.Compare(a.Scheme(), b.Scheme()); c != 0 {
		return c
	}
	if c := strings.Compare(a.Authority(), b.Authority()); c != 0 {
		return c
	}

	as, bs := significantSegments(a), significantSegments(b)
	if len(as) != len(bs) {
		return len(as) - len(bs)
	}

	diff, first := 0, 0
	for i := range as {
		if as[i] == bs[i] {
			continue
		}
		diff++
		if diff == 1 {
			first = strings.Compare(as[i], bs[i])
		} else {
			return first
		}
	}

	return 0
}

// significantSegments drops numeric and empty path segments.
func significantSegments(u *URL) []string {
	return slices.DeleteFunc(u.segments(), isNumeric)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}

// Dedup sorts urls and collapses neighbors that compare equal into the first
// of them, merging their query parameters. The input slice is not modified.
// The result is in sorted order.
func Dedup(urls []*URL) []*URL {
	sorted := slices.Clone(urls)
	slices.SortStableFunc(sorted, Compare)

	var res []*URL
	for _, u := range sorted {
		if n := len(res); n > 0 && Compare(res[n-1], u) == 0 {
			res[n-1] = res[n-1].withQuery(MergeQueries(res[n-1].Query(), u.Query()))

			continue
		}
		res = append(res, u)
	}

	return res
}

// Cluster is the transitive variant of Dedup: URLs connected by a chain of
// equal comparisons form one group, merged into its first member in sorted
// order. The result is in sorted order.
func Cluster(urls []*URL) []*URL {
	sorted := slices.Clone(urls)
	slices.SortStableFunc(sorted, Compare)

	parent := make([]int, len(sorted))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}

		return parent[i]
	}

	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if Compare(sorted[i], sorted[j]) != 0 {
				continue
			}
			ri, rj := find(i), find(j)
			// the lower index stays the root so groups keep their first member
			if ri < rj {
				parent[rj] = ri
			} else if rj < ri {
				parent[ri] = rj
			}
		}
	}

	merged := make(map[int]*URL)
	var order []int
	for i, u := range sorted {
		root := find(i)
		if head, ok := merged[root]; ok {
			merged[root] = head.withQuery(MergeQueries(head.Query(), u.Query()))

			continue
		}
		merged[root] = u
		order = append(order, root)
	}

	res := make([]*URL, 0, len(order))
	for _, root := range order {
		res = append(res, merged[root])
	}

	return res
}

// MergeQueries unions the parameters of raw queries. Later queries win on
// duplicate keys; the result is sorted by key and query-escaped.
func MergeQueries(queries ...string) string {
	params := make(map[string]string)
	for _, q := range queries {
		for k, v := range queryPairs(q) {
			params[k] = v
		}
	}

	parts := make([]string, 0, len(params))
	for _, k := range slices.Sorted(maps.Keys(params)) {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(params[k]))
	}

	return strings.Join(parts, "&")
}
