package fuzzy

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/hbollon/go-edlib"
)

// Scorer returns the similarity of two strings in [0, 100].
type Scorer func(a, b string) float64

const (
	ScorerTokenSort            = "token_sort"
	ScorerTokenSortLevenshtein = "token_sort_levenshtein"
)

// ScorerByName resolves a configured scorer name.
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case "", ScorerTokenSort:
		return TokenSortRatio, nil
	case ScorerTokenSortLevenshtein:
		return TokenSortLevenshtein, nil
	}

	return nil, fmt.Errorf("unknown scorer: %s", name)
}

// TokenSortRatio sorts the whitespace separated tokens of both strings and
// returns their indel similarity, 2*LCS / (len(a)+len(b)) scaled to 100.
// Strings with the same token multiset always score 100.
func TokenSortRatio(a, b string) float64 {
	return indelRatio(sortTokens(a), sortTokens(b))
}

// TokenSortLevenshtein is TokenSortRatio with a Levenshtein distance
// normalized by the longer string.
func TokenSortLevenshtein(a, b string) float64 {
	return levenshteinRatio(sortTokens(a), sortTokens(b))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}

func indelRatio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}

	return 100 * float64(2*edlib.LCS(a, b)) / float64(total)
}

func levenshteinRatio(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 100
	}

	return 100 * (1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest))
}
