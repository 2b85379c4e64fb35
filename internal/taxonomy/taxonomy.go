// Package taxonomy defines the immutable keyword registries used for
// mood, theme, and emotion classification, and the scorer that matches
// texts against them.
//
// A Taxonomy is an explicitly ordered sequence of categories. Order matters:
// arg-max ties resolve to the earliest declared category, so iteration order
// is part of the contract. Registries are built once at init and shared
// read-only across requests.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// Category is one classification target: an id, its keyword set, and a
// human-readable description.
type Category struct {
	ID          string
	Keywords    []string
	Description string
}

// Taxonomy is an ordered, immutable set of categories.
type Taxonomy struct {
	name       string
	categories []Category
}

// New builds a taxonomy. Keywords are lowercased once at construction.
func New(name string, categories []Category) *Taxonomy {
	cats := make([]Category, len(categories))
	for i, c := range categories {
		kws := make([]string, len(c.Keywords))
		for j, kw := range c.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		cats[i] = Category{ID: c.ID, Keywords: kws, Description: c.Description}
	}
	return &Taxonomy{name: name, categories: cats}
}

// Name returns the taxonomy's dimension name.
func (t *Taxonomy) Name() string { return t.name }

// Categories returns the declared category order.
func (t *Taxonomy) Categories() []Category { return t.categories }

// Score computes one CategoryScore per category, in declared order.
//
// Matching is whole-word: the text is tokenized and keywords are counted by
// exact token equality, so a short keyword never matches inside a longer
// unrelated word. The raw score is total matches per text word x100; a text
// with zero words scores every category 0.
func (t *Taxonomy) Score(text string) []domain.CategoryScore {
	wordCount := textproc.WordCount(text)

	var tokenFreq map[string]int
	if wordCount > 0 {
		tokenFreq = indexTokens(text)
	}

	scores := make([]domain.CategoryScore, len(t.categories))
	for i, cat := range t.categories {
		matches, hitKeywords := 0, 0
		for _, kw := range cat.Keywords {
			if n := tokenFreq[kw]; n > 0 {
				matches += n
				hitKeywords++
			}
		}

		cs := domain.CategoryScore{
			Category:    cat.ID,
			Description: cat.Description,
		}
		if wordCount > 0 {
			cs.Score = float64(matches) / float64(wordCount) * 100
			cs.KeywordMatches = hitKeywords
		}
		scores[i] = cs
	}
	return scores
}

// cliticPrefixes are Arabic conjunction/preposition/article clitics written
// attached to the following word. Longest match is stripped first.
var cliticPrefixes = []string{"وال", "بال", "فال", "كال", "ال", "و", "ف", "ب", "ل", "ك"}

// indexTokens counts word tokens, additionally indexing each Arabic token
// under its clitic-stripped form so that a keyword like "ملهم" still matches
// "وملهم". The stripped form is a distinct map key, so a keyword is never
// counted twice for the same token.
func indexTokens(text string) map[string]int {
	freq := make(map[string]int)
	for _, tok := range textproc.Tokens(text) {
		freq[tok]++
		if bare := stripClitic(tok); bare != tok {
			freq[bare]++
		}
	}
	return freq
}

// stripClitic removes one leading clitic from an Arabic token, keeping at
// least two runes of stem.
func stripClitic(tok string) string {
	r := []rune(tok)
	if len(r) == 0 || r[0] < 0x0600 || r[0] > 0x06FF {
		return tok
	}
	for _, p := range cliticPrefixes {
		pr := []rune(p)
		if len(r)-len(pr) >= 2 && strings.HasPrefix(tok, p) {
			return string(r[len(pr):])
		}
	}
	return tok
}

// Contains reports category ids whose keywords occur as substrings of the
// lowercased text. Used for emotion and indicator detection, where the
// Arabic keyword lists rely on prefix matches of inflected forms.
func (t *Taxonomy) Contains(text string) []string {
	lower := strings.ToLower(text)
	ids := []string{}
	for _, cat := range t.categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				ids = append(ids, cat.ID)
				break
			}
		}
	}
	return ids
}

// Primary returns the arg-max score. Ties keep the earliest category, and an
// all-zero scoring still returns the first category; only an empty score
// slice falls back to the neutral sentinel.
func Primary(scores []domain.CategoryScore) domain.CategoryScore {
	if len(scores) == 0 {
		return domain.CategoryScore{
			Category:    "neutral",
			Description: domain.NeutralMoodDescription,
		}
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Score > best.Score {
			best = s
		}
	}
	return best
}

// Top returns up to limit categories by descending score, excluding zero
// scores. The sort is stable, so equal scores keep declared order.
func Top(scores []domain.CategoryScore, limit int) []domain.CategoryScore {
	sorted := make([]domain.CategoryScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := []domain.CategoryScore{}
	for _, s := range sorted {
		if len(out) == limit {
			break
		}
		if s.Score > 0 {
			out = append(out, s)
		}
	}
	return out
}
