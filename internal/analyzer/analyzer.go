// Package analyzer turns raw text into the normalized terms used as index
// keys. The pipeline is: scan (email/URL patterns win over whitespace
// splitting), strip non-alphanumerics, lowercase, drop digits, filter
// short and letterless tokens, stem, and drop stopwords. Preserved
// email/URL candidates skip folding, stemming, and the stopword check and
// are emitted verbatim.
package analyzer

import (
	"strings"

	"github.com/surgebase/porter2"

	"github.com/textretrieval/go-text-retrieval/model"
)

// minTokenLength is exclusive: tokens must be longer than this to survive.
const minTokenLength = 2

// Analyzer normalizes text at index time and query time. It carries its
// stopword set explicitly so independent instances (different corpora,
// tests) can coexist in one process.
type Analyzer struct {
	stopwords model.StopwordSet
}

// New creates an Analyzer over the given stopword set. A nil set means no
// stopword filtering.
func New(stopwords model.StopwordSet) *Analyzer {
	if stopwords == nil {
		stopwords = model.StopwordSet{}
	}
	return &Analyzer{stopwords: stopwords}
}

// Analyze normalizes raw text into the sequence of surviving terms, in
// order of appearance.
func (a *Analyzer) Analyze(text string) []string {
	tokens := make([]string, 0)
	for _, c := range scan(text) {
		if token, ok := a.normalize(c); ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// AnalyzeTerm normalizes a single candidate word, as done per whitespace
// slot at index time and per search term at query time. It returns the
// first surviving token and false when the word is filtered out entirely.
func (a *Analyzer) AnalyzeTerm(word string) (string, bool) {
	for _, c := range scan(word) {
		if token, ok := a.normalize(c); ok {
			return token, true
		}
	}
	return "", false
}

func (a *Analyzer) normalize(c candidate) (string, bool) {
	token := c.text
	if !c.preserved {
		token = stripNonAlnum(token)
		token = strings.ToLower(token)
		token = stripDigits(token)
	}
	// Preserved tokens still must carry a letter and be longer than the
	// length cutoff; "123@456.789" is not worth indexing.
	if len(token) <= minTokenLength || !hasLetter(token) {
		return "", false
	}
	if c.preserved {
		return token, true
	}
	stemmed := porter2.Stem(token)
	if a.stopwords.Contains(stemmed) {
		return "", false
	}
	return stemmed, true
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if isAlnum(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func stripDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' {
			return true
		}
	}
	return false
}
