// Package cleaner normalises extracted document text before chunking.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Word characters, whitespace and basic punctuation survive cleaning;
	// everything else becomes a space.
	disallowed = regexp.MustCompile(`[^\w\s.,?!-]`)
)

// Clean collapses whitespace runs to single spaces, replaces characters
// outside the allow-list with spaces, and trims the result.
// An empty return value means there is nothing to ingest.
func Clean(text string) string {
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = disallowed.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
