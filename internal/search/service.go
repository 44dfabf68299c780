// Package search evaluates boolean and proximity queries over the frozen
// index structures. Queries are pure reads; a Service is safe for
// concurrent use once constructed.
package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/textretrieval/go-text-retrieval/index"
	"github.com/textretrieval/go-text-retrieval/internal/analyzer"
	internalErrors "github.com/textretrieval/go-text-retrieval/internal/errors"
	"github.com/textretrieval/go-text-retrieval/services"
)

// Service holds the analyzer and index structures needed to answer
// queries. The analyzer must be the one used at index time, so query
// terms normalize exactly as the indexed text did.
type Service struct {
	analyzer   *analyzer.Analyzer
	inverted   index.InvertedIndex
	positional index.PositionalIndex
	universe   map[int]struct{}
}

// NewService creates a search service over the given indexes. universe is
// the full document id set, used to complement NOT terms.
func NewService(a *analyzer.Analyzer, ii index.InvertedIndex, pi index.PositionalIndex, universe map[int]struct{}) (*Service, error) {
	if a == nil {
		return nil, fmt.Errorf("analyzer cannot be nil")
	}
	if ii == nil || pi == nil {
		return nil, fmt.Errorf("indexes cannot be nil")
	}
	if universe == nil {
		universe = make(map[int]struct{})
	}
	return &Service{analyzer: a, inverted: ii, positional: pi, universe: universe}, nil
}

// Search dispatches a query to the evaluator selected by queryType.
// Proximity queries are shape-validated here, before the evaluator runs;
// boolean queries never fail.
func (s *Service) Search(query string, queryType services.QueryType) (services.QueryResult, error) {
	start := time.Now()
	result := services.QueryResult{
		QueryID: uuid.New().String(),
		Query:   query,
		Type:    queryType,
	}

	switch queryType {
	case services.QueryTypeBoolean:
		result.DocIDs = s.Boolean(query)
	case services.QueryTypeProximity:
		if reason, ok := CheckProximityShape(query); !ok {
			return services.QueryResult{}, internalErrors.NewMalformedQueryError(query, reason)
		}
		result.DocIDs = s.Proximity(query)
	default:
		return services.QueryResult{}, internalErrors.NewUnknownQueryTypeError(string(queryType))
	}

	result.Took = time.Since(start).Milliseconds()
	return result, nil
}

// CheckProximityShape verifies the "term1 term2 / k" shape: exactly two
// words, a slash, and a non-negative integer (the slash may be glued to
// the number). It returns a user-facing reason when the shape is wrong.
func CheckProximityShape(query string) (string, bool) {
	fields := splitProximityFields(query)
	if len(fields) != 4 {
		return "expected the form 'term1 term2 / k'", false
	}
	if fields[2] != "/" {
		return "expected '/' between the terms and the distance", false
	}
	if !isUnsignedInteger(fields[3]) {
		return "distance must be a non-negative integer", false
	}
	for _, term := range fields[:2] {
		if term == "/" || isUnsignedInteger(term) {
			return "expected two search terms before '/'", false
		}
	}
	return "", true
}

// splitProximityFields splits on whitespace, detaching a slash glued to
// the distance so "a b /3" and "a b / 3" validate the same way.
func splitProximityFields(query string) []string {
	fields := make([]string, 0, 4)
	for _, field := range strings.Fields(query) {
		if len(field) > 1 && field[0] == '/' {
			fields = append(fields, "/", field[1:])
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

func isUnsignedInteger(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func sortedIDs(set map[int]struct{}) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
