// Package textnorm turns raw document text into index terms. It
// lower-cases input, replaces punctuation with spaces, tokenizes on
// whitespace, removes stop-words and short tokens, and reduces each
// surviving token to its Snowball stem.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
	"github.com/kljensen/snowball/french"
)

// DefaultMinTokenLength is the minimum number of runes a token must
// have to be kept.
const DefaultMinTokenLength = 3

// Config selects the language rules and token filtering applied during
// normalization.
type Config struct {
	// Language selects the stop-word set and stemmer ("french" or
	// "english"). An unsupported language falls back to english.
	Language string
	// MinTokenLength drops tokens shorter than this many runes.
	// Zero means DefaultMinTokenLength.
	MinTokenLength int
}

// Normalizer converts raw text into a sequence of index terms. A
// Normalizer is safe for concurrent use; it holds no mutable state
// after construction.
type Normalizer struct {
	language  string
	stopWords map[string]struct{}
	stem      func(word string, stemStopWords bool) string
	minLen    int
}

// New builds a Normalizer for the configured language. Unknown
// languages never fail: they fall back to the english stop-word set
// and stemmer.
func New(cfg Config) *Normalizer {
	minLen := cfg.MinTokenLength
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}
	n := &Normalizer{minLen: minLen}
	switch cfg.Language {
	case LanguageFrench:
		n.language = LanguageFrench
		n.stopWords = frenchStopWords
		n.stem = french.Stem
	default:
		n.language = LanguageEnglish
		n.stopWords = englishStopWords
		n.stem = english.Stem
	}
	return n
}

// Language reports the language the Normalizer resolved to after any
// fallback.
func (n *Normalizer) Language() string {
	return n.language
}

// Normalize returns the index terms for text, in document order and
// with repeats preserved. Empty input, or input whose tokens are all
// filtered out, yields an empty slice.
func (n *Normalizer) Normalize(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ToLower(text)
	// Replace punctuation with spaces rather than deleting it, so
	// "l'intelligence" splits instead of fusing into one token.
	text = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, text)

	words := strings.Fields(text)
	terms := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) < n.minLen {
			continue
		}
		if _, isStop := n.stopWords[word]; isStop {
			continue
		}
		terms = append(terms, n.stem(word, false))
	}
	return terms
}
