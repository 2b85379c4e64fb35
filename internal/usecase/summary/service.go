// Package summary implements extractive and abstractive text summarization.
//
// Extractive mode scores every sentence on frequency coverage, position,
// length, key indicators, and numeric content, then greedily selects a
// budget-constrained subset and re-emits it in source order. Abstractive
// mode builds short templated sentences from detected concept buckets and
// falls back to extraction when no bucket matches.
package summary

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/taxonomy"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// Sentence feature weights. Additive, not mutually exclusive.
const (
	weightFrequency    = 0.4
	bonusEdgePosition  = 0.3 // first or last sentence
	bonusEarlyPosition = 0.2 // within the first third
	bonusIdealLength   = 0.2 // 10-30 content words
	bonusLongLength    = 0.1 // >30 content words
	bonusKeyIndicator  = 0.3
	bonusNumeric       = 0.1
)

// Limits are the tunable selection and key-point parameters.
type Limits struct {
	// Headroom stops selection once the budget share is reached,
	// avoiding overshoot on the next candidate.
	Headroom float64
	// KeyPointLimit caps the number of key points.
	KeyPointLimit int
	// KeyPointMinScore is the sentence score a key point must exceed.
	KeyPointMinScore float64
	// KeyPointMaxRunes truncates long key points.
	KeyPointMaxRunes int
	// WordsPerMinute drives the summary reading-time estimate.
	WordsPerMinute int
}

// DefaultLimits returns the production defaults.
func DefaultLimits() Limits {
	return Limits{
		Headroom:         0.8,
		KeyPointLimit:    5,
		KeyPointMinScore: 0.5,
		KeyPointMaxRunes: 150,
		WordsPerMinute:   250,
	}
}

// Service generates summaries. Stateless; safe for concurrent use.
type Service struct {
	concepts *taxonomy.Taxonomy
	limits   Limits
}

// New creates a summary service over the built-in concept buckets.
func New() *Service {
	return &Service{concepts: taxonomy.ConceptBuckets, limits: DefaultLimits()}
}

// WithLimits overrides the selection parameters. Zero fields keep defaults.
func (s *Service) WithLimits(l Limits) *Service {
	d := DefaultLimits()
	if l.Headroom > 0 {
		d.Headroom = l.Headroom
	}
	if l.KeyPointLimit > 0 {
		d.KeyPointLimit = l.KeyPointLimit
	}
	if l.KeyPointMinScore > 0 {
		d.KeyPointMinScore = l.KeyPointMinScore
	}
	if l.KeyPointMaxRunes > 0 {
		d.KeyPointMaxRunes = l.KeyPointMaxRunes
	}
	if l.WordsPerMinute > 0 {
		d.WordsPerMinute = l.WordsPerMinute
	}
	s.limits = d
	return s
}

// sentence carries a segment with its source position and score. Selection
// is done by score but re-emitted in source order; the index is what makes
// that possible.
type sentence struct {
	text  string
	index int
	score float64
}

// Summarize produces a summary of at most maxWords words. Empty input, or
// input with no extractable sentences, degrades to the defined empty result.
func (s *Service) Summarize(_ context.Context, text string, maxWords int, mode domain.SummaryMode) domain.Summary {
	if strings.TrimSpace(text) == "" || maxWords < 1 {
		return domain.EmptySummary()
	}

	sentences := textproc.SplitSentences(text)
	if len(sentences) == 0 {
		return domain.EmptySummary()
	}

	var summaryText string
	if mode == domain.SummaryAbstractive {
		summaryText = s.abstractive(text, maxWords)
	} else {
		mode = domain.SummaryExtractive
		summaryText = s.extractive(sentences, maxWords)
	}

	stats := summaryStats(text, summaryText)

	return domain.Summary{
		Text:               summaryText,
		KeyPoints:          s.keyPoints(sentences),
		Stats:              stats,
		QualityScore:       s.quality(text, summaryText, stats),
		Mode:               mode,
		Language:           textproc.DetectLanguage(text),
		ReadingTimeMinutes: int(math.Ceil(float64(textproc.WordCount(summaryText)) / float64(s.limits.WordsPerMinute))),
	}
}

// SummarizeChapters produces a 100-word extractive summary per chapter.
func (s *Service) SummarizeChapters(ctx context.Context, chapters []domain.Chapter) []domain.ChapterSummary {
	const chapterBudget = 100
	const chapterKeyPoints = 3

	out := make([]domain.ChapterSummary, len(chapters))
	for i, ch := range chapters {
		sum := s.Summarize(ctx, ch.Content, chapterBudget, domain.SummaryExtractive)

		points := sum.KeyPoints
		if len(points) > chapterKeyPoints {
			points = points[:chapterKeyPoints]
		}

		out[i] = domain.ChapterSummary{
			ChapterNumber:      i + 1,
			Title:              ch.Title,
			Summary:            sum.Text,
			KeyPoints:          points,
			ReadingTimeMinutes: sum.ReadingTimeMinutes,
		}
		if out[i].Title == "" {
			out[i].Title = "Chapter " + strconv.Itoa(i+1)
		}
	}
	return out
}

// extractive selects top-scoring sentences within the word budget, then
// restores source order before joining.
func (s *Service) extractive(sentences []string, maxWords int) string {
	scored := s.scoreSentences(sentences)

	byScore := make([]sentence, len(scored))
	copy(byScore, scored)
	sort.SliceStable(byScore, func(i, j int) bool { return byScore[i].score > byScore[j].score })

	var selected []sentence
	used := 0
	for _, sent := range byScore {
		n := textproc.WordCount(sent.text)
		if used+n <= maxWords {
			selected = append(selected, sent)
			used += n
		}
		if float64(used) >= float64(maxWords)*s.limits.Headroom {
			break
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].index < selected[j].index })

	parts := make([]string, len(selected))
	for i, sent := range selected {
		parts[i] = sent.text
	}
	return strings.Join(parts, " ")
}

// scoreSentences computes the additive feature score for every sentence.
func (s *Service) scoreSentences(sentences []string) []sentence {
	freq := wordFrequencies(sentences)

	out := make([]sentence, len(sentences))
	for i, text := range sentences {
		out[i] = sentence{text: text, index: i}

		words := textproc.ContentWords(text, taxonomy.Stopwords)
		if len(words) == 0 {
			continue
		}

		score := 0.0

		sum := 0.0
		for _, w := range words {
			sum += freq[w]
		}
		score += sum / float64(len(words)) * weightFrequency

		switch {
		case i == 0 || i == len(sentences)-1:
			score += bonusEdgePosition
		case float64(i) < float64(len(sentences))*0.3:
			score += bonusEarlyPosition
		}

		switch n := len(words); {
		case n >= 10 && n <= 30:
			score += bonusIdealLength
		case n > 30:
			score += bonusLongLength
		}

		if containsKeyIndicator(text) {
			score += bonusKeyIndicator
		}

		if textproc.HasDigit(text) {
			score += bonusNumeric
		}

		out[i].score = score
	}
	return out
}

// wordFrequencies builds the per-text relative frequency table over content
// words. Scoped to a single call; nothing is shared between texts.
func wordFrequencies(sentences []string) map[string]float64 {
	counts := make(map[string]int)
	total := 0
	for _, text := range sentences {
		for _, w := range textproc.ContentWords(text, taxonomy.Stopwords) {
			counts[w]++
			total++
		}
	}

	freq := make(map[string]float64, len(counts))
	if total == 0 {
		return freq
	}
	for w, c := range counts {
		freq[w] = float64(c) / float64(total)
	}
	return freq
}

func containsKeyIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, ind := range taxonomy.KeyIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return false
}

// keyPoints re-scores the sentences and keeps up to the configured number
// whose score clears the threshold, truncated when too long.
func (s *Service) keyPoints(sentences []string) []string {
	scored := s.scoreSentences(sentences)
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	points := []string{}
	for _, sent := range scored {
		if len(points) == s.limits.KeyPointLimit {
			break
		}
		if sent.score <= s.limits.KeyPointMinScore {
			break
		}
		points = append(points, truncateRunes(sent.text, s.limits.KeyPointMaxRunes))
	}
	return points
}

func truncateRunes(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max-3]) + "..."
}

func summaryStats(original, summaryText string) domain.SummaryStats {
	originalWords := textproc.WordCount(original)
	summaryWords := textproc.WordCount(summaryText)

	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	return domain.SummaryStats{
		OriginalWords:      originalWords,
		SummaryWords:       summaryWords,
		CompressionRatio:   round3(ratio),
		CompressionPercent: round1((1 - ratio) * 100),
	}
}

// quality blends compression appropriateness, concept coverage, coherence,
// and indicator presence into [0,1].
func (s *Service) quality(original, summaryText string, stats domain.SummaryStats) float64 {
	if summaryText == "" || original == "" {
		return 0
	}

	score := 0.0

	switch ratio := stats.CompressionRatio; {
	case ratio >= 0.1 && ratio <= 0.3:
		score += 0.3
	case ratio >= 0.05 && ratio <= 0.5:
		score += 0.2
	}

	originalWords := wordSet(textproc.ContentWords(original, taxonomy.Stopwords))
	summaryWords := wordSet(textproc.ContentWords(summaryText, taxonomy.Stopwords))
	if len(originalWords) > 0 {
		shared := 0
		for w := range summaryWords {
			if _, ok := originalWords[w]; ok {
				shared++
			}
		}
		score += float64(shared) / float64(len(originalWords)) * 0.4
	}

	if len(textproc.SplitSentences(summaryText)) > 1 {
		score += 0.2
	}

	if containsKeyIndicator(summaryText) {
		score += 0.1
	}

	return math.Min(1, score)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round1(v float64) float64 { return math.Round(v*10) / 10 }

