// Package query filters already-fetched records in memory. It is cheap enough
// to run on every keystroke of a search box.
package query

import (
	"strings"

	"golang.org/x/text/cases"
)

// AllNations disables the nation filter.
const AllNations = "All"

// Record is anything the engine can filter.
type Record interface {
	FilterName() string
	FilterNation() string
}

// Criteria holds the optional filters. Zero value matches everything.
type Criteria struct {
	Nation string
	Name   string
}

// Active reports whether any filter is enabled.
func (c Criteria) Active() bool {
	return nationEnabled(c.Nation) || strings.TrimSpace(c.Name) != ""
}

// Filter returns the records matching both the nation and name filters, in
// input order. The input slice is never modified.
func Filter[T Record](records []T, nation, name string) []T {
	return Apply(records, Criteria{Nation: nation, Name: name})
}

// Apply is Filter with a Criteria value. An inactive Criteria returns a copy
// of records without folding any names.
func Apply[T Record](records []T, c Criteria) []T {
	if !c.Active() {
		out := make([]T, len(records))
		copy(out, records)
		return out
	}
	m := newMatcher(c)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	fold   cases.Caser
	nation string
	name   string
}

func newMatcher(c Criteria) matcher {
	m := matcher{fold: cases.Fold()}
	if nationEnabled(c.Nation) {
		m.nation = m.fold.String(strings.TrimSpace(c.Nation))
	}
	m.name = m.fold.String(strings.TrimSpace(c.Name))
	return m
}

func (m matcher) match(r Record) bool {
	if m.nation != "" && m.fold.String(r.FilterNation()) != m.nation {
		return false
	}
	if m.name != "" && !strings.Contains(m.fold.String(r.FilterName()), m.name) {
		return false
	}
	return true
}

func nationEnabled(nation string) bool {
	nation = strings.TrimSpace(nation)
	return nation != "" && !strings.EqualFold(nation, AllNations)
}
