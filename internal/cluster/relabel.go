package cluster

import (
	"cmp"
	"slices"
)

// Labels maps old cluster IDs to new labels 1..K.
type Labels struct {
	byID  map[string]int
	order []string
}

// Relabel ranks the IDs of pop by row count, most populous first, or least
// populous first when reversed is set. Ties keep first-seen order. The
// returned labels are dense and start at 1.
func Relabel(pop *Popularity, reversed bool) Labels {
	order := pop.IDs()
	slices.SortStableFunc(order, func(a, b string) int {
		if reversed {
			return cmp.Compare(pop.Count(a), pop.Count(b))
		}
		return cmp.Compare(pop.Count(b), pop.Count(a))
	})

	byID := make(map[string]int, len(order))
	for i, id := range order {
		byID[id] = i + 1
	}
	return Labels{byID: byID, order: order}
}

// Label returns the new label for id.
func (l Labels) Label(id string) (int, bool) {
	n, ok := l.byID[id]
	return n, ok
}

// Len returns K, the number of labels.
func (l Labels) Len() int {
	return len(l.order)
}

// Order returns the old IDs sorted by their new label.
func (l Labels) Order() []string {
	return slices.Clone(l.order)
}

// Map returns a copy of the old ID to new label mapping.
func (l Labels) Map() map[string]int {
	m := make(map[string]int, len(l.byID))
	for k, v := range l.byID {
		m[k] = v
	}
	return m
}
