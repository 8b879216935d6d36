package geo

import "sort"

// Ranked is one input annotated with its distance from the reference point
// and whether it falls inside the nearest-k cut.
type Ranked[T any] struct {
	Item       T
	DistanceKM float64
	Rank       int
	Supported  bool
}

// Classify orders items by distance from ref, nearest first, and marks the
// first k as supported. Items at equal distance keep their input order.
// The input slice is left untouched.
func Classify[T any](ref Point, items []T, k int, locate func(T) Point) []Ranked[T] {
	out := make([]Ranked[T], len(items))
	for i, item := range items {
		out[i] = Ranked[T]{
			Item:       item,
			DistanceKM: Distance(ref, locate(item)),
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKM < out[j].DistanceKM
	})

	for i := range out {
		out[i].Rank = i + 1
		out[i].Supported = i < k
	}

	return out
}

// Supported returns only the entries inside the nearest-k cut.
func Supported[T any](ranked []Ranked[T]) []Ranked[T] {
	out := make([]Ranked[T], 0, len(ranked))
	for _, r := range ranked {
		if r.Supported {
			out = append(out, r)
		}
	}
	return out
}
