package analyzer

import (
	"unicode"
	"unicode/utf8"
)

// candidate is one raw token produced by the scanner. Preserved candidates
// matched the email or URL pattern and bypass folding and stemming.
type candidate struct {
	text      string
	preserved bool
}

// scan splits text into candidate words. At each non-space position it
// tries the email pattern first, then the URL pattern, and otherwise
// consumes the maximal run of non-space characters. Pattern matches take
// precedence over plain whitespace splitting, so "mail foo@bar.com" yields
// the address whole instead of a punctuation-stripped word.
func scan(text string) []candidate {
	candidates := make([]candidate, 0)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		if end, ok := matchEmail(text, i); ok {
			candidates = append(candidates, candidate{text: text[i:end], preserved: true})
			i = end
			continue
		}
		if end, ok := matchURL(text, i); ok {
			candidates = append(candidates, candidate{text: text[i:end], preserved: true})
			i = end
			continue
		}
		start := i
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		candidates = append(candidates, candidate{text: text[start:i]})
	}
	return candidates
}

// matchEmail matches local@domain starting exactly at i, where the local
// part is one or more word/digit/._%+- characters and the domain contains
// at least one dot. The domain tail is greedy, so a trailing period stays
// part of the address.
func matchEmail(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isLocalChar(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '@' {
		return 0, false
	}
	j++
	hostStart := j
	for j < len(s) && isHostChar(s[j]) {
		j++
	}
	if j == hostStart || j >= len(s) || s[j] != '.' {
		return 0, false
	}
	j++
	tailStart := j
	for j < len(s) && (isHostChar(s[j]) || s[j] == '.') {
		j++
	}
	if j == tailStart {
		return 0, false
	}
	return j, true
}

// matchURL matches http:// or https:// followed by at least one non-space
// character, starting exactly at i.
func matchURL(s string, i int) (int, bool) {
	j := i
	if !hasPrefixAt(s, j, "http") {
		return 0, false
	}
	j += len("http")
	if j < len(s) && s[j] == 's' {
		j++
	}
	if !hasPrefixAt(s, j, "://") {
		return 0, false
	}
	j += len("://")
	rest := j
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			break
		}
		j += size
	}
	if j == rest {
		return 0, false
	}
	return j, true
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return i+len(prefix) <= len(s) && s[i:i+len(prefix)] == prefix
}

func isLocalChar(b byte) bool {
	return isAlnum(b) || b == '_' || b == '.' || b == '%' || b == '+' || b == '-'
}

func isHostChar(b byte) bool {
	return isAlnum(b) || b == '-'
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
