// Package names canonicalizes user-supplied enum names.
//
// "Color Burn", "color_burn" and "COLOR-BURN" all fold to "color-burn".
package names

import (
	"strings"

	"golang.org/x/text/cases"
)

// newFolder returns a fresh case folder. A cases.Caser is stateful and
// must not be shared between goroutines.
func newFolder() cases.Caser {
	return cases.Fold()
}

// Canonical case-folds s, trims it and replaces runs of spaces and
// underscores with single hyphens.
func Canonical(s string) string {
	s = newFolder().String(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if r == ' ' || r == '_' || r == '-' {
			pendingSep = b.Len() > 0
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Lookup finds the canonical form of s in table.
func Lookup[T any](table map[string]T, s string) (T, bool) {
	v, ok := table[Canonical(s)]
	return v, ok
}
