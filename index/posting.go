package index

// PostingList is the list of document ids containing a term, strictly
// ascending with no duplicates.
type PostingList []int

// Contains reports whether docID is in the posting list.
func (pl PostingList) Contains(docID int) bool {
	for _, id := range pl {
		if id == docID {
			return true
		}
		if id > docID {
			return false
		}
	}
	return false
}

// PositionList is the zero-based token positions of a term within one
// document, strictly ascending. Positions number the raw whitespace-split
// slots of the document, so words filtered out during analysis still
// consume a slot.
type PositionList []int
