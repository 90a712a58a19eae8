package normalize

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidEncoding is returned for input that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid utf-8 input")

// Normalizer turns raw room names into canonical token strings.
// It holds no mutable state and is safe for concurrent use.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
	stopword   func(string) bool
}

// New loads the English lemma dictionary. This is slow, prefer Default.
func New() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("loading lemmatizer: %w", err)
	}

	return &Normalizer{
		lemmatizer: lemmatizer,
		stopword:   english.IsStopWord,
	}, nil
}

// Default returns the process-wide Normalizer, built on first use.
var Default = sync.OnceValues(New)

// Normalize applies, in order: lowercase, digit removal, punctuation removal,
// trimming, whitespace tokenization, stopword removal and lemmatization.
// A lemma that is itself a stopword ("ups" -> "up") is dropped as well, so
// normalizing an already normalized name returns it unchanged.
func (n *Normalizer) Normalize(name string) (string, error) {
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("normalizing %q: %w", name, ErrInvalidEncoding)
	}

	// cases.Caser keeps internal state, so it cannot be shared between goroutines.
	text := cases.Lower(language.Und).String(name)
	text = norm.NFKC.String(text)
	text = strings.Map(dropDigit, text)
	text = strings.Map(dropPunct, text)
	text = strings.TrimSpace(text)

	tokens := strings.Fields(text)
	out := make([]string, 0, len(tokens))

	for _, tok := range tokens {
		if n.stopword(tok) {
			continue
		}

		lemma := n.lemmatizer.Lemma(tok)
		if n.stopword(lemma) {
			continue
		}

		out = append(out, lemma)
	}

	return strings.Join(out, " "), nil
}

// NormalizeAll normalizes every name, keeping order and length.
func (n *Normalizer) NormalizeAll(names []string) ([]string, error) {
	out := make([]string, len(names))

	for i, name := range names {
		s, err := n.Normalize(name)
		if err != nil {
			return nil, err
		}

		out[i] = s
	}

	return out, nil
}

func dropDigit(r rune) rune {
	if unicode.IsDigit(r) {
		return -1
	}

	return r
}

func dropPunct(r rune) rune {
	if isWord(r) || unicode.IsSpace(r) {
		return r
	}

	return -1
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}
