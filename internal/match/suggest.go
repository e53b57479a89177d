package match

import (
	"sort"
	"strings"
)

// MinSuggestionScore is the similarity floor below which a candidate is not
// worth suggesting.
const MinSuggestionScore = 0.5

// maxSuggestions bounds how many candidates a single diagnostic carries.
const maxSuggestions = 3

// Suggest returns the candidates closest to name, best first, filtered to
// those scoring at least MinSuggestionScore. Identifiers are compared
// case-insensitively with separator characters stripped, so "idPassport"
// still matches "id_passport".
func Suggest(name string, candidates []string) []string {
	type scored struct {
		candidate string
		score     float64
	}

	normName := normalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		score := LevenshteinNormalized(normName, normalizeIdent(c))
		if score >= MinSuggestionScore {
			ranked = append(ranked, scored{candidate: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.candidate
	}

	return out
}

// normalizeIdent lowercases an identifier and strips separator characters.
func normalizeIdent(s string) string {
	s = strings.ToLower(s)

	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}

		return r
	}, s)
}
