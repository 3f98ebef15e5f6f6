package match

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

const (
	// MinScore is the similarity below which a candidate is not suggested.
	MinScore = 0.6
	// MaxSuggestions caps the number of suggestions returned.
	MaxSuggestions = 3
)

// NormalizeIdent lowercases s and drops '_', '-' and spaces, so that
// "product_name", "ProductName" and "product-name" compare equal.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Levenshtein returns the number of single-rune insertions, deletions or
// substitutions needed to turn a into b.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// one row of the DP matrix, indexed by position in the shorter string
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			up := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(up+1, row[j-1]+1, diag+cost)
			diag = up
		}
	}

	return row[len(rb)]
}

// Similarity is 1 - distance/maxLen over the normalized identifiers; 1.0 means
// they normalize to the same string.
func Similarity(a, b string) float64 {
	na, nb := NormalizeIdent(a), NormalizeIdent(b)

	longest := max(len([]rune(na)), len([]rune(nb)))
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(na, nb))/float64(longest)
}

type scored struct {
	name  string
	score float64
}

// Suggest returns up to MaxSuggestions candidates whose similarity to name is at
// least MinScore, best first. Ties keep the candidates' original order.
func Suggest(name string, candidates []string) []string {
	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= MinScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(x, y scored) int {
		return cmp.Compare(y.score, x.score)
	})

	out := make([]string, 0, min(len(ranked), MaxSuggestions))
	for _, r := range ranked[:min(len(ranked), MaxSuggestions)] {
		out = append(out, r.name)
	}

	return out
}
