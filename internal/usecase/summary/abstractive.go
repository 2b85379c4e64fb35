package summary

import (
	"sort"
	"strings"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/taxonomy"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// maxConcepts caps how many concept buckets feed the templated summary.
const maxConcepts = 3

var (
	arabicConnectors  = []string{"يتناول الكتاب", "ويركز على", "كما يناقش", "ويخلص إلى"}
	englishConnectors = []string{"The book discusses", "It focuses on", "The work explores", "It concludes that"}
)

// abstractive clusters the text's most frequent content words into concept
// buckets and renders one templated clause per matched bucket. Templates
// follow the dominant script of the source. With no matched bucket it falls
// back to the extractive result.
func (s *Service) abstractive(text string, maxWords int) string {
	concepts := s.extractConcepts(text)
	if len(concepts) == 0 {
		return s.extractive(textproc.SplitSentences(text), maxWords)
	}
	if len(concepts) > maxConcepts {
		concepts = concepts[:maxConcepts]
	}

	arabic := textproc.DetectLanguage(text) == domain.LanguageArabic
	connectors := englishConnectors
	opening := "This work discusses "
	if arabic {
		connectors = arabicConnectors
		opening = "يتناول هذا العمل "
	}

	parts := make([]string, len(concepts))
	for i, concept := range concepts {
		if i == 0 {
			parts[i] = opening + concept
			continue
		}
		ci := i
		if ci >= len(connectors) {
			ci = len(connectors) - 1
		}
		parts[i] = connectors[ci] + " " + concept
	}

	out := strings.Join(parts, ". ") + "."

	words := strings.Fields(out)
	if len(words) > maxWords {
		out = strings.Join(words[:maxWords], " ") + "..."
	}
	return out
}

// extractConcepts finds the concept buckets whose keywords appear among the
// text's repeated content words, in declared bucket order.
func (s *Service) extractConcepts(text string) []string {
	keyWords := topRepeatedWords(text, 10)
	if len(keyWords) == 0 {
		return nil
	}

	keySet := make(map[string]struct{}, len(keyWords))
	for _, w := range keyWords {
		keySet[w] = struct{}{}
	}

	var concepts []string
	for _, bucket := range s.concepts.Categories() {
		for _, kw := range bucket.Keywords {
			if _, ok := keySet[kw]; ok {
				concepts = append(concepts, bucket.ID)
				break
			}
		}
	}
	return concepts
}

// topRepeatedWords returns up to limit content words that occur more than
// once, most frequent first. Ties keep first-seen order so the result is
// deterministic.
func topRepeatedWords(text string, limit int) []string {
	words := textproc.ContentWords(text, taxonomy.Stopwords)

	counts := make(map[string]int)
	var order []string
	for _, w := range words {
		if counts[w] == 0 {
			order = append(order, w)
		}
		counts[w]++
	}

	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })

	var out []string
	for _, w := range order {
		if len(out) == limit {
			break
		}
		if counts[w] > 1 {
			out = append(out, w)
		}
	}
	return out
}
