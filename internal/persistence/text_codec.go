// Package persistence implements the on-disk text encoding of the two
// index structures. The formats are line-oriented and deterministic:
//
//	inverted:   term:docid docid docid
//	positional: term: docid [p1,p2] docid [p1]
//
// one term per line, terms sorted, ids and positions ascending. Decoding
// skips malformed lines instead of failing the whole load, so a partially
// damaged file degrades to a smaller index rather than an error.
package persistence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/textretrieval/go-text-retrieval/index"
)

// EncodeInvertedIndex writes ii to w, one term per line in sorted order.
func EncodeInvertedIndex(w io.Writer, ii index.InvertedIndex) error {
	bw := bufio.NewWriter(w)
	for _, term := range ii.Terms() {
		if _, err := bw.WriteString(term); err != nil {
			return err
		}
		if err := bw.WriteByte(':'); err != nil {
			return err
		}
		for i, docID := range ii[term] {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.Itoa(docID)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeInvertedIndex reads the inverted index line format from r.
// Lines without a separator or with unparseable doc ids are skipped.
// Terms may contain colons (URLs), so the separator is the last colon.
func DecodeInvertedIndex(r io.Reader) (index.InvertedIndex, error) {
	ii := make(index.InvertedIndex)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, ":")
		if sep < 0 {
			continue
		}
		term := line[:sep]
		if term == "" {
			continue
		}
		fields := strings.Fields(line[sep+1:])
		postings := make(index.PostingList, 0, len(fields))
		ok := true
		for _, field := range fields {
			docID, err := strconv.Atoi(field)
			if err != nil {
				ok = false
				break
			}
			postings = append(postings, docID)
		}
		if !ok {
			continue
		}
		ii[term] = postings
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inverted index: %w", err)
	}
	return ii, nil
}

// EncodePositionalIndex writes pi to w, one term per line in sorted order,
// each document as "id [p1,p2,...]" with ids ascending.
func EncodePositionalIndex(w io.Writer, pi index.PositionalIndex) error {
	bw := bufio.NewWriter(w)
	for _, term := range pi.Terms() {
		if _, err := bw.WriteString(term); err != nil {
			return err
		}
		if err := bw.WriteByte(':'); err != nil {
			return err
		}
		postings := pi[term]
		for _, docID := range postings.DocIDs() {
			if _, err := fmt.Fprintf(bw, " %d [%s]", docID, joinPositions(postings[docID])); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodePositionalIndex reads the positional index line format from r.
// Lines without a separator are skipped. Within a line, a dangling doc id
// with no bracketed position group, a malformed group, or an empty
// position list drops that document but keeps the rest of the line. A term
// with no postings at all ("ghost:") decodes to an entry with an empty
// postings map.
func DecodePositionalIndex(r io.Reader) (index.PositionalIndex, error) {
	pi := make(index.PositionalIndex)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, ":")
		if sep < 0 {
			continue
		}
		term := line[:sep]
		if term == "" {
			continue
		}
		fields := strings.Fields(line[sep+1:])
		postings := make(index.PositionalPostings)
		for i := 0; i+1 < len(fields); i += 2 {
			docID, err := strconv.Atoi(fields[i])
			if err != nil {
				continue
			}
			positions, ok := parsePositions(fields[i+1])
			if !ok || len(positions) == 0 {
				continue
			}
			postings[docID] = positions
		}
		pi[term] = postings
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positional index: %w", err)
	}
	return pi, nil
}

func joinPositions(positions index.PositionList) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// parsePositions parses a "[p1,p2,...]" group.
func parsePositions(field string) (index.PositionList, bool) {
	if len(field) < 2 || field[0] != '[' || field[len(field)-1] != ']' {
		return nil, false
	}
	body := field[1 : len(field)-1]
	if body == "" {
		return index.PositionList{}, true
	}
	parts := strings.Split(body, ",")
	positions := make(index.PositionList, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		positions = append(positions, p)
	}
	return positions, true
}
