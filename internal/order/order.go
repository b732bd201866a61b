// Package order holds the string comparator shared by tag lists and vault
// names so that both sort the same way.
package order

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	mu       sync.Mutex
	collator = collate.New(language.Und, collate.IgnoreCase)
)

// Alphabetical compares a and b case-insensitively using root-locale
// collation. Strings that collate equal fall back to byte order, so the
// result is a total order.
func Alphabetical(a, b string) int {
	mu.Lock()
	c := collator.CompareString(a, b)
	mu.Unlock()
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool {
	return Alphabetical(a, b) < 0
}
