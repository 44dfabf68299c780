// Package testing provides fixtures for engine and API tests.
package testing

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/textretrieval/go-text-retrieval/config"
)

// DefaultTestDocuments is the small corpus most tests index.
var DefaultTestDocuments = map[int]string{
	1: "data mining is fun",
	2: "mining data for gold",
	3: "visit https://example.com/mining or mail ore@mine.org today",
}

// DefaultTestStopwords are raw stopwords written to the fixture list.
var DefaultTestStopwords = []string{"the", "for", "and", "not"}

// CreateTestConfig writes a document corpus and stopword list under temp
// directories and returns a config pointing at them. Index files go to
// their own temp directory, so each test starts with a fresh build.
func CreateTestConfig(t *testing.T, docs map[int]string, stopwords []string) *config.Config {
	t.Helper()

	docsDir := t.TempDir()
	for id, text := range docs {
		path := filepath.Join(docsDir, fmt.Sprintf("%d.txt", id))
		require.NoError(t, os.WriteFile(path, []byte(text), 0600), "Failed to write document fixture")
	}

	stopwordsFile := filepath.Join(t.TempDir(), "stopwords.txt")
	require.NoError(t, os.WriteFile(stopwordsFile, []byte(strings.Join(stopwords, "\n")+"\n"), 0600),
		"Failed to write stopword fixture")

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Paths.DocumentsDir = docsDir
	cfg.Paths.StopwordsFile = stopwordsFile
	cfg.Paths.IndexDir = t.TempDir()
	return cfg
}

// CreateDefaultTestConfig is CreateTestConfig with the default corpus.
func CreateDefaultTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return CreateTestConfig(t, DefaultTestDocuments, DefaultTestStopwords)
}
