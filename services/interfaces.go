// Package services defines the interfaces and result types the engine
// exposes to front ends (HTTP, CLI).
package services

// QueryType selects which evaluator handles a query.
type QueryType string

const (
	QueryTypeBoolean   QueryType = "boolean"
	QueryTypeProximity QueryType = "proximity"
)

// QueryResult is the outcome of one query: the matching document ids in
// ascending order, plus bookkeeping for the caller.
type QueryResult struct {
	QueryID string    `json:"query_id"` // unique UUID for this query
	Query   string    `json:"query"`
	Type    QueryType `json:"type"`
	DocIDs  []int     `json:"doc_ids"`
	Took    int64     `json:"took"` // milliseconds
}

// IndexStats describes the built indexes.
type IndexStats struct {
	Documents int `json:"documents"`
	Terms     int `json:"terms"`
}

// Searcher evaluates queries over the built indexes. Implementations are
// read-only after construction and safe for concurrent use.
type Searcher interface {
	Search(query string, queryType QueryType) (QueryResult, error)
}

// Engine is the full surface a front end needs: query evaluation plus
// index statistics.
type Engine interface {
	Searcher
	Stats() IndexStats
}
