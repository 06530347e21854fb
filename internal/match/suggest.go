package match

import "sort"

// DefaultMinScore is the similarity below which a candidate is not suggested.
const DefaultMinScore = 0.6

// Suggest returns up to limit candidates most similar to name, best first.
// Candidates scoring below DefaultMinScore are dropped. Ties keep the
// candidates' original order.
func Suggest(name string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}

	ranked := make([]scored, 0, len(candidates))

	for _, c := range candidates {
		score := NormalizedLevenshteinScore(name, c)
		if score >= DefaultMinScore {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
