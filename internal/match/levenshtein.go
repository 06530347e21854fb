package match

// Levenshtein returns the edit distance between a and b counted in runes, so
// non-ASCII names compare per character.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// row[i] holds the distance between ra[:i] and the part of rb seen so far.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j, cb := range rb {
		diag := row[0]
		row[0] = j + 1

		for i, ca := range ra {
			above := row[i+1]

			sub := diag
			if ca != cb {
				sub++
			}

			row[i+1] = min(above+1, row[i]+1, sub)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity scales the edit distance to [0, 1], where 1 means equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// NormalizedLevenshteinScore is the Similarity of the normalized names.
func NormalizedLevenshteinScore(a, b string) float64 {
	return Similarity(NormalizeIdent(a), NormalizeIdent(b))
}
