// Package model defines the document types shared across the engine.
package model

import "sort"

// Collection is the fixed set of documents the indexes are built over,
// keyed by document id. Ids are non-negative integers derived from the
// source filename stems. The collection is immutable once loaded; the
// engine only reads it during index construction.
type Collection map[int]string

// IDs returns every document id in ascending order.
func (c Collection) IDs() []int {
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Universe returns the id set used to complement NOT terms in boolean
// queries.
func (c Collection) Universe() map[int]struct{} {
	universe := make(map[int]struct{}, len(c))
	for id := range c {
		universe[id] = struct{}{}
	}
	return universe
}

// StopwordSet is a set of stopword strings loaded once at startup and
// treated as immutable for the process lifetime.
type StopwordSet map[string]struct{}

// Contains reports whether word is a stopword.
func (s StopwordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
