package index

import (
	"reflect"
	"testing"
)

func TestInvertedIndex_Terms_Sorted(t *testing.T) {
	ii := InvertedIndex{
		"mine": {1, 2},
		"data": {1, 2},
		"gold": {2},
	}
	want := []string{"data", "gold", "mine"}
	if got := ii.Terms(); !reflect.DeepEqual(got, want) {
		t.Errorf("Terms() = %v, want %v", got, want)
	}
}

func TestInvertedIndex_Postings_AbsentTerm(t *testing.T) {
	ii := InvertedIndex{"data": {1}}
	if got := ii.Postings("ghost"); got != nil {
		t.Errorf("Postings(ghost) = %v, want nil", got)
	}
}

func TestPostingList_Contains(t *testing.T) {
	pl := PostingList{1, 3, 7}
	for _, tt := range []struct {
		docID int
		want  bool
	}{
		{1, true}, {3, true}, {7, true},
		{0, false}, {2, false}, {8, false},
	} {
		if got := pl.Contains(tt.docID); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.docID, got, tt.want)
		}
	}
}

func TestPositionalPostings_DocIDs_Sorted(t *testing.T) {
	pp := PositionalPostings{
		7: {0},
		1: {2, 5},
		3: {1},
	}
	want := []int{1, 3, 7}
	if got := pp.DocIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("DocIDs() = %v, want %v", got, want)
	}
}
