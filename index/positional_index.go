package index

import "sort"

// PositionalPostings maps a document id to the positions at which one term
// occurs in that document. A document only appears here when its position
// list is non-empty.
type PositionalPostings map[int]PositionList

// DocIDs returns the document ids of the postings in ascending order.
func (pp PositionalPostings) DocIDs() []int {
	ids := make([]int, 0, len(pp))
	for id := range pp {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// PositionalIndex maps a term to its per-document occurrence positions.
// For every (term, doc) pair present here the same pair is a membership
// pair in the inverted index, and vice versa.
type PositionalIndex map[string]PositionalPostings

// Postings returns the per-document positions for term, or nil when the
// term is not indexed.
func (pi PositionalIndex) Postings(term string) PositionalPostings {
	return pi[term]
}

// Terms returns every indexed term in sorted order.
func (pi PositionalIndex) Terms() []string {
	terms := make([]string, 0, len(pi))
	for term := range pi {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
