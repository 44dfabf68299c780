package search

import (
	"strings"
)

// Boolean operators. Matching is case-insensitive, so "and", "And" and
// "AND" all act as operators rather than search terms.
const (
	opAnd = "and"
	opOr  = "or"
	opNot = "not"
)

// Boolean evaluates a left-to-right sequence of terms and AND/OR/NOT
// operators over the inverted index.
//
// AND and OR set the combinator used when the next term's result set folds
// into the accumulator, and clear any pending negation. NOT toggles the
// negation flag (two NOTs in a row cancel); a negated term's postings are
// complemented against the document universe. A term seen before any
// combinator replaces the accumulator. Absent terms, and terms that
// normalize to nothing, contribute the empty set. Malformed queries never
// error; they produce whatever the fold yields.
func (s *Service) Boolean(query string) []int {
	var accumulator map[int]struct{}
	lastOp := ""
	negate := false

	for _, word := range strings.Fields(query) {
		switch strings.ToLower(word) {
		case opAnd:
			lastOp = opAnd
			negate = false
		case opOr:
			lastOp = opOr
			negate = false
		case opNot:
			negate = !negate
		default:
			termSet := s.termSet(word)
			if negate {
				termSet = complement(termSet, s.universe)
			}
			switch lastOp {
			case opAnd:
				accumulator = intersect(accumulator, termSet)
			case opOr:
				accumulator = union(accumulator, termSet)
			default:
				accumulator = termSet
			}
		}
	}
	return sortedIDs(accumulator)
}

// termSet normalizes a raw query word and looks up its postings. A word
// that normalizes to nothing, or an unindexed term, yields the empty set.
func (s *Service) termSet(word string) map[int]struct{} {
	set := make(map[int]struct{})
	term, ok := s.analyzer.AnalyzeTerm(word)
	if !ok {
		return set
	}
	for _, docID := range s.inverted.Postings(term) {
		set[docID] = struct{}{}
	}
	return set
}

func intersect(a, b map[int]struct{}) map[int]struct{} {
	if len(a) > len(b) {
		a, b = b, a
	}
	out := make(map[int]struct{})
	for id := range a {
		if _, ok := b[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

func union(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(a)+len(b))
	for id := range a {
		out[id] = struct{}{}
	}
	for id := range b {
		out[id] = struct{}{}
	}
	return out
}

func complement(set, universe map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for id := range universe {
		if _, ok := set[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}
