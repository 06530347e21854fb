package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds a catalog field name, a model attribute name or a
// record type name to its lookup key: lower case with separators removed, so
// "Coefficient1 Constant", "coefficient1_constant" and "Coefficient1Constant"
// share a key.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', ':', ' ', '\t':
		return true
	}

	return false
}
