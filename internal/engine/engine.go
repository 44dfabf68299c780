// Package engine wires the startup sequence: stopwords, documents,
// analyzer, build-or-load indexes, search service. Construction runs to
// completion before any query is served, so no query ever observes a
// partially built index.
package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/textretrieval/go-text-retrieval/config"
	"github.com/textretrieval/go-text-retrieval/index"
	"github.com/textretrieval/go-text-retrieval/internal/analyzer"
	"github.com/textretrieval/go-text-retrieval/internal/indexing"
	"github.com/textretrieval/go-text-retrieval/internal/metrics"
	"github.com/textretrieval/go-text-retrieval/internal/search"
	"github.com/textretrieval/go-text-retrieval/model"
	"github.com/textretrieval/go-text-retrieval/services"
	"github.com/textretrieval/go-text-retrieval/store"
)

// Engine owns the loaded collection, the frozen indexes, and the search
// service. It implements services.Engine. All fields are read-only after
// New returns, so concurrent queries need no locking.
type Engine struct {
	collection model.Collection
	inverted   index.InvertedIndex
	positional index.PositionalIndex
	searcher   *search.Service
	metrics    *metrics.Metrics
}

// New builds an Engine from configuration. A missing stopword file or
// document directory is an error: the engine cannot operate without them.
func New(cfg *config.Config) (*Engine, error) {
	stopwords, err := store.LoadStopwords(cfg.Paths.StopwordsFile)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d stopwords from %s", len(stopwords), cfg.Paths.StopwordsFile)

	docs, err := store.LoadDocuments(cfg.Paths.DocumentsDir, cfg.Paths.DocumentGlob)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d documents from %s", len(docs), cfg.Paths.DocumentsDir)

	a := analyzer.New(stopwords)
	builder, err := indexing.NewBuilder(a)
	if err != nil {
		return nil, fmt.Errorf("failed to create index builder: %w", err)
	}
	ii, pi, err := builder.BuildOrLoad(docs, cfg.Paths.IndexDir)
	if err != nil {
		return nil, err
	}

	searcher, err := search.NewService(a, ii, pi, docs.Universe())
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	m := metrics.New()
	m.SetIndexSize(len(docs), len(ii))

	return &Engine{
		collection: docs,
		inverted:   ii,
		positional: pi,
		searcher:   searcher,
		metrics:    m,
	}, nil
}

// Search evaluates a query and records its metrics.
func (e *Engine) Search(query string, queryType services.QueryType) (services.QueryResult, error) {
	start := time.Now()
	result, err := e.searcher.Search(query, queryType)
	seconds := time.Since(start).Seconds()

	outcome := metrics.OutcomeHit
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case len(result.DocIDs) == 0:
		outcome = metrics.OutcomeZeroResult
	}
	e.metrics.ObserveQuery(string(queryType), outcome, seconds)
	return result, err
}

// Stats reports the dimensions of the built indexes.
func (e *Engine) Stats() services.IndexStats {
	return services.IndexStats{
		Documents: len(e.collection),
		Terms:     len(e.inverted),
	}
}

// Metrics exposes the engine's collectors for the scrape endpoint.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}
