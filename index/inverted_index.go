// Package index defines the read-only index structures produced by the
// builder: the inverted index (term membership) and the positional index
// (per-document occurrence positions). Both are frozen after construction,
// so concurrent readers need no locking.
package index

import "sort"

// InvertedIndex maps a term to the ascending list of document ids that
// contain it at least once.
type InvertedIndex map[string]PostingList

// Postings returns the posting list for term, or nil when the term is not
// indexed. Callers treat nil as the empty set.
func (ii InvertedIndex) Postings(term string) PostingList {
	return ii[term]
}

// Terms returns every indexed term in sorted order.
func (ii InvertedIndex) Terms() []string {
	terms := make([]string, 0, len(ii))
	for term := range ii {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
