package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textretrieval/go-text-retrieval/index"
	"github.com/textretrieval/go-text-retrieval/internal/analyzer"
	"github.com/textretrieval/go-text-retrieval/model"
)

func testService(t *testing.T) *Service {
	t.Helper()
	// Indexes for {1: "data mining is fun", 2: "mining data for gold"}
	// with "for" as a stopword.
	ii := index.InvertedIndex{
		"data": {1, 2},
		"fun":  {1},
		"gold": {2},
		"mine": {1, 2},
	}
	pi := index.PositionalIndex{
		"data": {1: {0}, 2: {1}},
		"fun":  {1: {3}},
		"gold": {2: {3}},
		"mine": {1: {1}, 2: {0}},
	}
	universe := map[int]struct{}{1: {}, 2: {}}
	svc, err := NewService(analyzer.New(model.StopwordSet{"for": {}}), ii, pi, universe)
	require.NoError(t, err)
	return svc
}

func TestBoolean(t *testing.T) {
	svc := testService(t)

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{"single term", "data", []int{1, 2}},
		{"query terms are normalized", "Mining", []int{1, 2}},
		{"and", "data AND mining", []int{1, 2}},
		{"and narrows", "data AND gold", []int{2}},
		{"or", "fun OR gold", []int{1, 2}},
		{"not reinitializes without operator", "data NOT gold", []int{1}},
		{"and not", "data AND NOT gold", []int{1}},
		{"or not", "fun OR NOT data", []int{1}},
		{"double not cancels", "NOT NOT gold", []int{2}},
		{"operators are case-insensitive", "data and not gold", []int{1}},
		{"lowercase operator words are not terms", "fun or gold", []int{1, 2}},
		{"unknown term is empty", "platinum", []int{}},
		{"unknown term with and", "data AND platinum", []int{}},
		{"unknown term with or", "data OR platinum", []int{1, 2}},
		{"not unknown term is universe", "NOT platinum", []int{1, 2}},
		{"term normalizing to nothing is empty", "123", []int{}},
		{"filtered term with and", "data AND 123", []int{}},
		{"stopword term is empty", "for", []int{}},
		{"leading operator folds into empty set", "AND data", []int{}},
		{"consecutive operators take the last", "data AND OR gold", []int{1, 2}},
		{"empty query", "", []int{}},
		{"operators only", "AND OR NOT", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Boolean(tt.query))
		})
	}
}

func TestBoolean_CombinatorPersistsAcrossTerms(t *testing.T) {
	svc := testService(t)

	// No operator between "gold" and "fun": the most recently seen
	// combinator (AND) still applies.
	assert.Equal(t, []int{}, svc.Boolean("data AND gold fun"))
}

func TestBoolean_DeMorgan(t *testing.T) {
	svc := testService(t)

	// NOT (A AND B) == (NOT A) OR (NOT B) over the full universe.
	aAndB := svc.Boolean("fun AND gold")
	complemented := make([]int, 0)
	for _, id := range []int{1, 2} {
		if !contains(aAndB, id) {
			complemented = append(complemented, id)
		}
	}
	assert.Equal(t, complemented, svc.Boolean("NOT fun OR NOT gold"))
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
