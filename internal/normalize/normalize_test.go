package normalize_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/roommapper/internal/normalize"
)

func newNormalizer(t *testing.T) *normalize.Normalizer {
	t.Helper()

	n, err := normalize.Default()
	require.NoError(t, err)

	return n
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newNormalizer(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Punctuation", input: "Deluxe Room!!!", want: "deluxe room"},
		{name: "Whitespace", input: " Suite  ", want: "suite"},
		{name: "Digits", input: "Room 101", want: "room"},
		{name: "Stopwords", input: "Room with a View", want: "room view"},
		{name: "RoomOnly", input: "Superior Room - ROOM ONLY", want: "superior room room"},
		{name: "Plural", input: "Deluxe Rooms", want: "deluxe room"},
		{name: "Underscore", input: "deluxe_room", want: "deluxe_room"},
		{name: "Accents", input: "Chambre Supérieure", want: "chambre supérieure"},
		{name: "SuperscriptDigit", input: "Suite²", want: "suite"},
		{name: "OnlyStopwords", input: "The", want: ""},
		{name: "LemmaIsStopword", input: "Ups and Downs Suite", want: "suite"},
		{name: "Empty", input: "", want: ""},
		{name: "OnlyDigitsAndPunct", input: "123 - 456", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := n.Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizer_InvalidEncoding(t *testing.T) {
	n := newNormalizer(t)

	_, err := n.Normalize("Deluxe \xff Room")
	require.Error(t, err)
	assert.ErrorIs(t, err, normalize.ErrInvalidEncoding)
}

func TestNormalizer_NormalizeAll(t *testing.T) {
	n := newNormalizer(t)

	got, err := n.NormalizeAll([]string{"Deluxe Room!!!", " Suite  ", "", "Deluxe Room!!!"})
	require.NoError(t, err)
	assert.Equal(t, []string{"deluxe room", "suite", "", "deluxe room"}, got)
}

func TestNormalizer_NormalizeAllFailsWhole(t *testing.T) {
	n := newNormalizer(t)

	got, err := n.NormalizeAll([]string{"Suite", "\xc3\x28"})
	assert.ErrorIs(t, err, normalize.ErrInvalidEncoding)
	assert.Nil(t, got)
}

var roomNames = []string{
	"Deluxe Room!!!",
	" Suite  ",
	"Classic Room - Olympic Queen Bed - ROOM ONLY",
	"SUPERIOR ROOM ADA - ROOM ONLY",
	"Superior City View - Olympic Queen Bed - ROOM ONLY",
	"Comfort House 6 bedroom Ocean View",
	"Balcony Room - Olympic Queen Bed - ROOM ONLY",
	"Double Room (2 adults) + breakfast",
	"Standard Twin, non-smoking",
	"Junior Suite #12 / sea view",
	"Chambre Double Supérieure",
	"   ",
	"ups",
	"Room with ups and downs",
	"buts outs whys hows",
	"cans",
	"wills",
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := newNormalizer(t)

	for _, name := range roomNames {
		once, err := n.Normalize(name)
		require.NoError(t, err)

		twice, err := n.Normalize(once)
		require.NoError(t, err)

		assert.Equal(t, once, twice, "input %q", name)
	}
}

func TestNormalizer_NoDigits(t *testing.T) {
	n := newNormalizer(t)

	inputs := append([]string{"0123456789", "Room ٣", "Suite 4B", "Floor 12-14"}, roomNames...)

	for _, name := range inputs {
		got, err := n.Normalize(name)
		require.NoError(t, err)

		for _, r := range got {
			assert.False(t, unicode.IsDigit(r), "digit %q left in %q", r, got)
		}
	}
}
