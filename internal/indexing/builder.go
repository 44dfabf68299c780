// Package indexing builds the inverted and positional indexes from a
// document collection.
package indexing

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/textretrieval/go-text-retrieval/index"
	"github.com/textretrieval/go-text-retrieval/internal/analyzer"
	"github.com/textretrieval/go-text-retrieval/internal/persistence"
	"github.com/textretrieval/go-text-retrieval/model"
)

// Builder constructs the index structures. Construction is a one-time
// synchronous batch pass; the returned indexes are frozen and safe for
// concurrent readers.
type Builder struct {
	analyzer *analyzer.Analyzer
}

// NewBuilder creates a Builder using the given analyzer. The same analyzer
// must be used at query time so query terms normalize identically.
func NewBuilder(a *analyzer.Analyzer) (*Builder, error) {
	if a == nil {
		return nil, fmt.Errorf("analyzer cannot be nil")
	}
	return &Builder{analyzer: a}, nil
}

// occurrence is one collected (term, document, position) triple. The
// collect pass accumulates occurrences; the freeze pass sorts them into
// the final structures.
type occurrence struct {
	term     string
	docID    int
	position int
}

// Build constructs both indexes from docs. Positions are zero-based slots
// of the raw whitespace split, computed before normalization, so words
// filtered out during analysis still consume a slot and do not shift the
// positions of later words. Rebuilding from the same collection yields
// identical structures.
func (b *Builder) Build(docs model.Collection) (index.InvertedIndex, index.PositionalIndex) {
	occurrences := b.collect(docs)
	return freeze(occurrences)
}

// BuildOrLoad returns the persisted indexes when both index files already
// exist under indexDir; otherwise it builds from docs and persists the
// result. The load path is a caching short-circuit: the files are trusted
// to describe the same collection.
func (b *Builder) BuildOrLoad(docs model.Collection, indexDir string) (index.InvertedIndex, index.PositionalIndex, error) {
	invertedPath := filepath.Join(indexDir, persistence.InvertedIndexFile)
	positionalPath := filepath.Join(indexDir, persistence.PositionalIndexFile)

	if persistence.BothIndexFilesExist(indexDir) {
		ii, err := persistence.LoadInvertedIndex(invertedPath)
		if err == nil {
			pi, perr := persistence.LoadPositionalIndex(positionalPath)
			if perr == nil {
				log.Printf("Loaded indexes from %s (%d terms)", indexDir, len(ii))
				return ii, pi, nil
			}
			log.Printf("Warning: failed to load positional index, rebuilding: %v", perr)
		} else {
			log.Printf("Warning: failed to load inverted index, rebuilding: %v", err)
		}
	}

	ii, pi := b.Build(docs)
	if err := persistence.SaveInvertedIndex(invertedPath, ii); err != nil {
		return nil, nil, fmt.Errorf("failed to persist inverted index: %w", err)
	}
	if err := persistence.SavePositionalIndex(positionalPath, pi); err != nil {
		return nil, nil, fmt.Errorf("failed to persist positional index: %w", err)
	}
	log.Printf("Built indexes from %d documents (%d terms), persisted to %s", len(docs), len(ii), indexDir)
	return ii, pi, nil
}

func (b *Builder) collect(docs model.Collection) []occurrence {
	occurrences := make([]occurrence, 0)
	for _, docID := range docs.IDs() {
		words := strings.Fields(docs[docID])
		for position, word := range words {
			term, ok := b.analyzer.AnalyzeTerm(word)
			if !ok {
				continue
			}
			occurrences = append(occurrences, occurrence{term: term, docID: docID, position: position})
		}
	}
	return occurrences
}

// freeze folds collected occurrences into the final sorted structures. The
// inverted index is derived from the positional one, which keeps the two
// consistent by construction.
func freeze(occurrences []occurrence) (index.InvertedIndex, index.PositionalIndex) {
	pi := make(index.PositionalIndex)
	for _, occ := range occurrences {
		postings, ok := pi[occ.term]
		if !ok {
			postings = make(index.PositionalPostings)
			pi[occ.term] = postings
		}
		postings[occ.docID] = append(postings[occ.docID], occ.position)
	}

	ii := make(index.InvertedIndex, len(pi))
	for term, postings := range pi {
		docIDs := make(index.PostingList, 0, len(postings))
		for docID, positions := range postings {
			sort.Ints(positions)
			docIDs = append(docIDs, docID)
		}
		sort.Ints(docIDs)
		ii[term] = docIDs
	}
	return ii, pi
}
