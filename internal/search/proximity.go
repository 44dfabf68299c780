package search

import (
	"strconv"
	"strings"
)

// Proximity evaluates a "term1 term2 / k" query over the positional index.
// Distance is "exactly k words apart": adjacency (k = 0) is a raw position
// difference of 1, so a pair of positions (p, q) qualifies when
// |q - p| == k+1.
//
// Every query term must survive normalization and be present in the index,
// otherwise no document matches. Each term after the first is checked
// pairwise against positions of the first term, independently per term,
// not as a chained path through consecutive terms. The
// caller-facing layer only admits the two-term shape, for which the two
// readings coincide.
func (s *Service) Proximity(query string) []int {
	k, ok := trailingDistance(query)
	if !ok {
		return []int{}
	}
	// The slash and the distance fall out of normalization on their own:
	// neither carries a letter.
	terms := s.analyzer.Analyze(query)
	if len(terms) < 2 {
		return []int{}
	}
	for _, term := range terms {
		if s.positional.Postings(term) == nil {
			return []int{}
		}
	}

	first := s.positional.Postings(terms[0])
	matches := make(map[int]struct{})
	for docID, positions := range first {
		if s.docMatches(docID, positions, terms, k) {
			matches[docID] = struct{}{}
		}
	}
	return sortedIDs(matches)
}

func (s *Service) docMatches(docID int, firstPositions []int, terms []string, k int) bool {
	for i := 1; i < len(terms); i++ {
		otherPositions := s.positional.Postings(terms[i])[docID]
		if !hasPairAtDistance(firstPositions, otherPositions, k+1) {
			return false
		}
	}
	return true
}

func hasPairAtDistance(a, b []int, distance int) bool {
	for _, p := range a {
		for _, q := range b {
			diff := q - p
			if diff == distance || diff == -distance {
				return true
			}
		}
	}
	return false
}

// trailingDistance parses the proximity distance from the final query
// field, tolerating a slash glued to the number ("/ 3" and "/3" both
// parse). Shape validation happens before evaluation; this only recovers
// the number.
func trailingDistance(query string) (int, bool) {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return 0, false
	}
	last := strings.TrimPrefix(fields[len(fields)-1], "/")
	k, err := strconv.Atoi(last)
	if err != nil || k < 0 {
		return 0, false
	}
	return k, true
}
