package services

import (
	"cmp"
	"slices"

	"bikeshare/models"
)

// Mode returns the most frequent value. Ties go to the smallest value so the
// result does not depend on input order. ok is false for empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	return modeOf(counts)
}

func modeOf[T cmp.Ordered](counts map[T]int) (mode T, ok bool) {
	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// GroupCount counts occurrences of each value and returns them sorted by key.
func GroupCount(values []string) []models.Count {
	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	out := make([]models.Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, models.Count{Key: k, Count: n})
	}
	slices.SortFunc(out, func(a, b models.Count) int { return cmp.Compare(a.Key, b.Key) })
	return out
}
