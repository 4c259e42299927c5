package stats

import "sort"

// CategoryCount pairs a categorical value with its occurrence count.
type CategoryCount struct {
	Value string
	Count int
}

// Counts tallies occurrences of each value. Empty strings are counted too;
// callers decide what an empty label means.
func Counts(values []string) map[string]int {
	out := make(map[string]int)
	for _, v := range values {
		out[v]++
	}
	return out
}

// TopK returns the k most frequent categories, ordered by descending count and
// ascending value on ties. Fewer than k distinct values yields all of them.
func TopK(counts map[string]int, k int) []CategoryCount {
	tops := make([]CategoryCount, 0, len(counts))
	for v, c := range counts {
		tops = append(tops, CategoryCount{Value: v, Count: c})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Count == tops[j].Count {
			return tops[i].Value < tops[j].Value
		}
		return tops[i].Count > tops[j].Count
	})
	if k > 0 && len(tops) > k {
		tops = tops[:k]
	}
	return tops
}
