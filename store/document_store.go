// Package store loads the document collection and the stopword list from
// disk. Both are read once at startup and immutable afterwards.
package store

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	internalErrors "github.com/textretrieval/go-text-retrieval/internal/errors"
	"github.com/textretrieval/go-text-retrieval/model"
)

// LoadDocuments scans dir for files matching glob (e.g. "*.txt" or
// "**/*.txt") whose filename stem is a non-negative integer, and returns
// the id → raw text collection. Files with non-numeric stems are skipped
// with a log line; an unusable directory is an error, since the engine
// cannot run without documents.
func LoadDocuments(dir, glob string) (model.Collection, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("%w: cannot access directory %s: %v", internalErrors.ErrDocumentsUnavailable, dir, err)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), glob)
	if err != nil {
		return nil, fmt.Errorf("%w: bad document glob %q: %v", internalErrors.ErrDocumentsUnavailable, glob, err)
	}

	docs := make(model.Collection, len(matches))
	for _, match := range matches {
		stem := strings.TrimSuffix(filepath.Base(match), filepath.Ext(match))
		docID, err := strconv.Atoi(stem)
		if err != nil || docID < 0 {
			log.Printf("Skipping document file %s: name stem is not a non-negative integer", match)
			continue
		}
		path := filepath.Join(dir, match)
		data, err := os.ReadFile(path) // #nosec G304 -- path is inside the configured documents directory
		if err != nil {
			log.Printf("Skipping document file %s: %v", path, err)
			continue
		}
		docs[docID] = string(data)
	}
	return docs, nil
}

// LoadStopwords reads a flat word-per-line file into a set. Blank lines
// are ignored. A missing or unreadable file is an error, since the
// analyzer cannot be configured without it.
func LoadStopwords(path string) (model.StopwordSet, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", internalErrors.ErrStopwordsUnavailable, path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close stopword file %s: %v", path, closeErr)
		}
	}()

	stopwords := make(model.StopwordSet)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		stopwords[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", internalErrors.ErrStopwordsUnavailable, path, err)
	}
	return stopwords, nil
}
