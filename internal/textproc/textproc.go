// Package textproc holds the shared text primitives of the analysis engine:
// preprocessing, tokenization, sentence segmentation, and script detection.
//
// All functions are pure and safe for concurrent use.
package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kitabi-cloud/lisan/internal/domain"
)

// minSentenceRunes is the minimum length of a sentence fragment; shorter
// fragments are discarded as noise.
const minSentenceRunes = 10

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Everything outside {letters, digits, underscore, whitespace} is stripped.
	// The Arabic block falls under \p{L}, matching the original service's
	// "word characters or Arabic" class.
	nonWordRE = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	// Sentence terminators: Latin terminators plus the Arabic question mark.
	sentenceEndRE = regexp.MustCompile(`[.!?؟]+`)
	tokenRE       = regexp.MustCompile(`[\p{L}\p{N}_]+`)
)

// Preprocess collapses whitespace and strips punctuation and symbols,
// keeping word characters across scripts.
func Preprocess(text string) string {
	text = nonWordRE.ReplaceAllString(text, " ")
	text = whitespaceRE.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Words splits on whitespace. This is the denominator used by taxonomy
// score normalization.
func Words(text string) []string {
	return strings.Fields(text)
}

// WordCount reports the whitespace-delimited word count.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Tokens extracts lowercased word tokens across scripts.
func Tokens(text string) []string {
	return tokenRE.FindAllString(strings.ToLower(text), -1)
}

// ContentWords extracts lowercased tokens longer than two runes that are not
// in the given stopword set.
func ContentWords(text string, stopwords map[string]struct{}) []string {
	var out []string
	for _, tok := range Tokens(text) {
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if _, skip := stopwords[tok]; skip {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// SplitSentences segments text on sentence terminators and drops fragments
// shorter than ten runes.
func SplitSentences(text string) []string {
	text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	if text == "" {
		return nil
	}

	var out []string
	for _, part := range sentenceEndRE.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) > minSentenceRunes {
			out = append(out, part)
		}
	}
	return out
}

// CountSentences reports the number of non-empty sentence fragments without
// the minimum-length filter. Used for text statistics and the review
// structure bonus.
func CountSentences(text string) int {
	n := 0
	for _, part := range sentenceEndRE.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

// AvgWordLength reports the mean rune length of whitespace-delimited words.
func AvgWordLength(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(len(words))
}

// DetectLanguage decides the dominant script by majority character class.
// Ties (including all-empty input) resolve to English, matching the
// original's behavior for Latin-or-unknown text.
func DetectLanguage(text string) domain.Language {
	arabic, latin := 0, 0
	for _, r := range text {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			arabic++
		case unicode.In(r, unicode.Latin):
			latin++
		}
	}
	if arabic > latin {
		return domain.LanguageArabic
	}
	return domain.LanguageEnglish
}

// HasDigit reports whether the text contains a decimal digit.
func HasDigit(text string) bool {
	return strings.IndexFunc(text, unicode.IsDigit) >= 0
}
