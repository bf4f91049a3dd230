package game

import (
	"strconv"
	"strings"
)

// ParseQuery splits a target query into a keyword and a 1-based ordinal.
// Both "goblin 2" and "2.goblin" select the second match; a bare keyword
// defaults to the first. Matching itself is a case-insensitive substring
// scan over names and aliases, done by the caller in candidate order.
func ParseQuery(query string) (string, int) {
	query = strings.TrimSpace(query)

	// Leading "N.keyword" form.
	if dot := strings.Index(query, "."); dot > 0 {
		if n, err := strconv.Atoi(query[:dot]); err == nil && n > 0 {
			return query[dot+1:], n
		}
	}

	// Trailing "keyword N" form.
	if sp := strings.LastIndex(query, " "); sp > 0 {
		if n, err := strconv.Atoi(query[sp+1:]); err == nil && n > 0 {
			return strings.TrimSpace(query[:sp]), n
		}
	}

	return query, 1
}
