package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/roommapper/internal/fuzzy"
)

func TestTokenSortRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "Identical", a: "deluxe room", b: "deluxe room", want: 100},
		{name: "TokenOrder", a: "room deluxe", b: "deluxe room", want: 100},
		{name: "ExtraSpaces", a: " deluxe   room ", b: "deluxe room", want: 100},
		{name: "OneSubstitution", a: "abc", b: "abd", want: 200.0 / 3},
		{name: "Kitten", a: "kitten", b: "sitting", want: 800.0 / 13},
		{name: "BothEmpty", a: "", b: "", want: 100},
		{name: "OneEmpty", a: "", b: "suite", want: 0},
		{name: "Unicode", a: "chambre supérieure", b: "supérieure chambre", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, fuzzy.TokenSortRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestTokenSortLevenshtein(t *testing.T) {
	assert.InDelta(t, 100, fuzzy.TokenSortLevenshtein("twin standard", "standard twin"), 1e-9)
	assert.InDelta(t, 100.0*4/7, fuzzy.TokenSortLevenshtein("kitten", "sitting"), 1e-9)
	assert.InDelta(t, 100, fuzzy.TokenSortLevenshtein("", ""), 1e-9)
}

func TestScorerByName(t *testing.T) {
	s, err := fuzzy.ScorerByName("")
	require.NoError(t, err)
	assert.InDelta(t, 200.0/3, s("abc", "abd"), 1e-9)

	s, err = fuzzy.ScorerByName(fuzzy.ScorerTokenSortLevenshtein)
	require.NoError(t, err)
	assert.InDelta(t, 100.0*4/7, s("kitten", "sitting"), 1e-9)

	_, err = fuzzy.ScorerByName("phonetic")
	assert.Error(t, err)
}

func TestDistinct(t *testing.T) {
	got := fuzzy.Distinct([]string{"b", "a", "b", "", "a", ""})
	assert.Equal(t, []string{"b", "a", ""}, got)
}

func TestMatchAll(t *testing.T) {
	t.Run("ExactMatch", func(t *testing.T) {
		got := fuzzy.MatchAll([]string{"deluxe room"}, []string{"deluxe room"}, fuzzy.DefaultThreshold, nil)
		assert.Equal(t, map[string]fuzzy.Candidate{
			"deluxe room": {Reference: "deluxe room", Score: 100},
		}, got)
	})

	t.Run("BelowThreshold", func(t *testing.T) {
		got := fuzzy.MatchAll([]string{"superior room"}, []string{"deluxe room"}, fuzzy.DefaultThreshold, nil)
		assert.Empty(t, got)
	})

	t.Run("PicksBest", func(t *testing.T) {
		refs := []string{"classic room", "superior room", "deluxe king"}
		got := fuzzy.MatchAll(refs, []string{"room superior", "king deluxe"}, fuzzy.DefaultThreshold, nil)
		assert.Equal(t, "superior room", got["room superior"].Reference)
		assert.Equal(t, "deluxe king", got["king deluxe"].Reference)
	})

	t.Run("TieGoesToFirstReference", func(t *testing.T) {
		refs := []string{"deluxe room x", "deluxe room y"}

		got := fuzzy.MatchAll(refs, []string{"deluxe room"}, fuzzy.DefaultThreshold, nil)
		assert.Equal(t, "deluxe room x", got["deluxe room"].Reference)

		got = fuzzy.MatchAll([]string{refs[1], refs[0]}, []string{"deluxe room"}, fuzzy.DefaultThreshold, nil)
		assert.Equal(t, "deluxe room y", got["deluxe room"].Reference)
	})

	t.Run("ThresholdComparesUnroundedScore", func(t *testing.T) {
		// "deluxe room" vs "deluxe room x" scores 22/24 ≈ 91.67.
		got := fuzzy.MatchAll([]string{"deluxe room x"}, []string{"deluxe room"}, 91, nil)
		assert.Equal(t, 92, got["deluxe room"].Score)

		got = fuzzy.MatchAll([]string{"deluxe room x"}, []string{"deluxe room"}, 92, nil)
		assert.Empty(t, got)
	})

	t.Run("ThresholdInclusive", func(t *testing.T) {
		got := fuzzy.MatchAll([]string{"deluxe room"}, []string{"deluxe room"}, 100, nil)
		assert.Len(t, got, 1)
	})

	t.Run("EmptyNameMatchesEmptyName", func(t *testing.T) {
		got := fuzzy.MatchAll([]string{"suite", ""}, []string{""}, fuzzy.DefaultThreshold, nil)
		assert.Equal(t, fuzzy.Candidate{Reference: "", Score: 100}, got[""])
	})

	t.Run("NoReferences", func(t *testing.T) {
		got := fuzzy.MatchAll(nil, []string{"suite"}, 0, nil)
		assert.Empty(t, got)
	})

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		got := fuzzy.MatchAll(
			[]string{"suite", "suite"},
			[]string{"suite", "suite", "suite"},
			fuzzy.DefaultThreshold,
			fuzzy.TokenSortLevenshtein,
		)
		assert.Len(t, got, 1)
	})
}
