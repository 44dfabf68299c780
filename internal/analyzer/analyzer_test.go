package analyzer

import (
	"reflect"
	"testing"

	"github.com/textretrieval/go-text-retrieval/model"
)

func TestAnalyze(t *testing.T) {
	a := New(model.StopwordSet{"the": {}, "for": {}})

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"simple words", "data mining", []string{"data", "mine"}},
		{"case folding", "Data MINING", []string{"data", "mine"}},
		{"punctuation stripped", "data, mining!", []string{"data", "mine"}},
		{"digits stripped inside words", "hello42 world9", []string{"hello", "world"}},
		{"pure digits dropped", "12345 3.14 data", []string{"data"}},
		{"short tokens dropped", "is it ok data", []string{"data"}},
		{"stopwords dropped after stemming", "the gold for fun", []string{"gold", "fun"}},
		{"email preserved verbatim", "mail Bob.Smith+dev@example.com now", []string{"mail", "Bob.Smith+dev@example.com", "now"}},
		{"url preserved verbatim", "see https://Example.COM/Page here", []string{"see", "https://Example.COM/Page", "here"}},
		{"digit only email dropped", "123@456.789 data", []string{"data"}},
		{"hyphenated word collapses", "state-of-art", []string{"stateofart"}},
		{"whitespace runs", "  data \t mining \n", []string{"data", "mine"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Analyze(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyzeTerm(t *testing.T) {
	a := New(model.StopwordSet{"the": {}})

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"plain word", "gold", "gold", true},
		{"inflected word stems", "mining", "mine", true},
		{"uppercase folds", "Mining", "mine", true},
		{"stopword filtered", "The", "", false},
		{"too short", "ok", "", false},
		{"no letters", "1234", "", false},
		{"punctuation only", "!?!", "", false},
		{"email kept whole", "ore@mine.org", "ore@mine.org", true},
		{"first surviving candidate wins", "ore@mine.org,extra", "ore@mine.org", true},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := a.AnalyzeTerm(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("AnalyzeTerm(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestAnalyzeTerm_Stable(t *testing.T) {
	a := New(nil)
	first, ok1 := a.AnalyzeTerm("Mining")
	second, ok2 := a.AnalyzeTerm("Mining")
	if first != second || ok1 != ok2 {
		t.Errorf("normalization not stable: (%q, %v) vs (%q, %v)", first, ok1, second, ok2)
	}
}

func TestAnalyzer_IndependentInstances(t *testing.T) {
	plain := New(nil)
	filtering := New(model.StopwordSet{"gold": {}})

	if _, ok := plain.AnalyzeTerm("gold"); !ok {
		t.Error("analyzer without stopwords should keep 'gold'")
	}
	if _, ok := filtering.AnalyzeTerm("gold"); ok {
		t.Error("analyzer with 'gold' stopword should drop it")
	}
}
