package cluster

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Observer receives each distinct cluster ID with its row count, in the
// order the IDs were first seen.
type Observer func(id string, count int)

// Popularity maps cluster IDs to the number of rows bearing them. Iteration
// follows first-seen order.
type Popularity struct {
	counts *orderedmap.OrderedMap[string, int]
}

// NewPopularity returns an empty Popularity.
func NewPopularity() *Popularity {
	return &Popularity{counts: orderedmap.New[string, int]()}
}

// Add counts one more row for id.
func (p *Popularity) Add(id string) {
	n, _ := p.counts.Get(id)
	p.counts.Set(id, n+1)
}

// Count returns the number of rows seen for id.
func (p *Popularity) Count(id string) int {
	n, _ := p.counts.Get(id)
	return n
}

// Len returns the number of distinct cluster IDs.
func (p *Popularity) Len() int {
	return p.counts.Len()
}

// IDs returns the distinct cluster IDs in first-seen order.
func (p *Popularity) IDs() []string {
	ids := make([]string, 0, p.counts.Len())
	for pair := p.counts.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// Each calls fn for every cluster ID in first-seen order.
func (p *Popularity) Each(fn Observer) {
	for pair := p.counts.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Count tallies the verbatim value found at column in every tab-separated
// row. When observe is not nil it is called for each distinct ID once the
// whole body has been counted.
func Count(rows []string, column int, observe Observer) (*Popularity, error) {
	pop := NewPopularity()
	for i, row := range rows {
		fields, err := splitRow(row, column, i)
		if err != nil {
			return nil, err
		}
		pop.Add(fields[column])
	}

	if observe != nil {
		pop.Each(observe)
	}
	return pop, nil
}

// splitRow splits row on tabs and checks it reaches column. index is the
// 0-based body row number reported in the error.
func splitRow(row string, column, index int) ([]string, error) {
	fields := strings.Split(row, "\t")
	if column < 0 || column >= len(fields) {
		return nil, fmt.Errorf("%w: row %d has %d field(s), cluster column is %d", ErrRowTooShort, index+1, len(fields), column+1)
	}
	return fields, nil
}
