// internal/app/system/normalize/normalize.go
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Email trims and case-folds an address for lookups and uniqueness.
func Email(s string) string {
	// A Caser holds state, so each call gets its own.
	return cases.Fold().String(strings.TrimSpace(s))
}

// Name trims and collapses runs of whitespace, preserving case.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
