// Package mood implements book mood and theme analysis: taxonomy scoring,
// reading heuristics, emotion detection, and mood-based recommendations.
package mood

import (
	"context"
	"fmt"
	"math"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/taxonomy"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// Heuristics are the tunable constants of reading-level and reading-time
// estimation. The defaults reproduce the production values; none of them is
// derived from anything, so they stay configurable.
type Heuristics struct {
	WordsPerMinute         int
	BeginnerMaxWordLen     float64
	BeginnerMaxSentenceLen float64
	AdvancedMinWordLen     float64
	AdvancedMinSentenceLen float64
	MaxBookTextChars       int
	PrimaryThemeLimit      int
	StandaloneThemeLimit   int
}

// DefaultHeuristics returns the production defaults.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		WordsPerMinute:         250,
		BeginnerMaxWordLen:     4,
		BeginnerMaxSentenceLen: 10,
		AdvancedMinWordLen:     6,
		AdvancedMinSentenceLen: 20,
		MaxBookTextChars:       5000,
		PrimaryThemeLimit:      3,
		StandaloneThemeLimit:   5,
	}
}

// BookInput carries the text surfaces of a book; at least one must be set.
type BookInput struct {
	Text        string
	Title       string
	Description string
}

// Service analyzes book mood and themes. Stateless besides the immutable
// registries; safe for concurrent use.
type Service struct {
	moods    *taxonomy.Taxonomy
	themes   *taxonomy.Taxonomy
	emotions *taxonomy.Taxonomy
	h        Heuristics
}

// New creates a mood service over the built-in registries.
func New() *Service {
	return &Service{
		moods:    taxonomy.Moods,
		themes:   taxonomy.Themes,
		emotions: taxonomy.Emotions,
		h:        DefaultHeuristics(),
	}
}

// WithHeuristics overrides the reading heuristics. Zero fields keep defaults.
func (s *Service) WithHeuristics(h Heuristics) *Service {
	d := DefaultHeuristics()
	if h.WordsPerMinute > 0 {
		d.WordsPerMinute = h.WordsPerMinute
	}
	if h.BeginnerMaxWordLen > 0 {
		d.BeginnerMaxWordLen = h.BeginnerMaxWordLen
	}
	if h.BeginnerMaxSentenceLen > 0 {
		d.BeginnerMaxSentenceLen = h.BeginnerMaxSentenceLen
	}
	if h.AdvancedMinWordLen > 0 {
		d.AdvancedMinWordLen = h.AdvancedMinWordLen
	}
	if h.AdvancedMinSentenceLen > 0 {
		d.AdvancedMinSentenceLen = h.AdvancedMinSentenceLen
	}
	if h.MaxBookTextChars > 0 {
		d.MaxBookTextChars = h.MaxBookTextChars
	}
	if h.PrimaryThemeLimit > 0 {
		d.PrimaryThemeLimit = h.PrimaryThemeLimit
	}
	if h.StandaloneThemeLimit > 0 {
		d.StandaloneThemeLimit = h.StandaloneThemeLimit
	}
	s.h = d
	return s
}

// AnalyzeMood scores the combined book text against the mood and theme
// taxonomies and derives the reading heuristics. Empty input degrades to the
// defined default analysis.
func (s *Service) AnalyzeMood(_ context.Context, in BookInput) domain.MoodAnalysis {
	text := s.combineText(in)
	if text == "" {
		return domain.DefaultMoodAnalysis()
	}

	moodScores := s.moods.Score(text)
	primary := taxonomy.Primary(moodScores)

	themeScores := s.themes.Score(text)
	topThemes := themesFromScores(taxonomy.Top(themeScores, s.h.PrimaryThemeLimit))

	return domain.MoodAnalysis{
		PrimaryMood: domain.PrimaryMood{
			Mood:           primary.Category,
			Score:          primary.Score,
			Description:    primary.Description,
			KeywordMatches: primary.KeywordMatches,
		},
		MoodScores:         scoreMap(moodScores),
		Themes:             topThemes,
		ThemeScores:        scoreMap(themeScores),
		ReadingLevel:       s.readingLevel(text),
		ReadingTimeMinutes: s.readingTime(text),
		Emotions:           s.emotions.Contains(text),
		MoodTags:           moodTags(moodScores, themeScores),
		Confidence:         confidence(text, moodScores),
		Recommendations:    recommendations(primary.Category, topThemes),
	}
}

// ExtractThemes returns the top positive-score themes for a text.
func (s *Service) ExtractThemes(_ context.Context, text string) []domain.ThemeScore {
	if textproc.WordCount(text) == 0 {
		return []domain.ThemeScore{}
	}
	return themesFromScores(taxonomy.Top(s.themes.Score(text), s.h.StandaloneThemeLimit))
}

// combineText joins title, description, and a bounded prefix of the body.
func (s *Service) combineText(in BookInput) string {
	parts := ""
	appendPart := func(p string) {
		if p == "" {
			return
		}
		if parts != "" {
			parts += " "
		}
		parts += p
	}

	appendPart(in.Title)
	appendPart(in.Description)
	if in.Text != "" {
		r := []rune(in.Text)
		if len(r) > s.h.MaxBookTextChars {
			r = r[:s.h.MaxBookTextChars]
		}
		appendPart(string(r))
	}

	if textproc.WordCount(parts) == 0 {
		return ""
	}
	return parts
}

func (s *Service) readingLevel(text string) domain.ReadingLevel {
	words := textproc.WordCount(text)
	sentences := textproc.CountSentences(text)
	if words == 0 || sentences == 0 {
		return domain.ReadingIntermediate
	}

	avgWordLen := textproc.AvgWordLength(text)
	avgSentenceLen := float64(words) / float64(sentences)

	switch {
	case avgWordLen < s.h.BeginnerMaxWordLen && avgSentenceLen < s.h.BeginnerMaxSentenceLen:
		return domain.ReadingBeginner
	case avgWordLen > s.h.AdvancedMinWordLen || avgSentenceLen > s.h.AdvancedMinSentenceLen:
		return domain.ReadingAdvanced
	default:
		return domain.ReadingIntermediate
	}
}

func (s *Service) readingTime(text string) int {
	minutes := math.Round(float64(textproc.WordCount(text)) / float64(s.h.WordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return int(minutes)
}

// confidence blends text length and keyword evidence into [0.3, 0.95].
func confidence(text string, moodScores []domain.CategoryScore) float64 {
	wordCount := textproc.WordCount(text)
	totalMatches := 0
	for _, s := range moodScores {
		totalMatches += s.KeywordMatches
	}

	textFactor := math.Min(1, float64(wordCount)/100)
	matchFactor := math.Min(1, float64(totalMatches)/10)

	c := (textFactor + matchFactor) / 2
	return math.Max(0.3, math.Min(0.95, c))
}

// moodTags emits hashtags for the top two nonzero moods and themes.
func moodTags(moodScores, themeScores []domain.CategoryScore) []string {
	tags := []string{}
	for _, s := range taxonomy.Top(moodScores, 2) {
		tags = append(tags, "#"+s.Category)
	}
	for _, s := range taxonomy.Top(themeScores, 2) {
		tags = append(tags, "#"+s.Category)
	}
	return tags
}

func themesFromScores(scores []domain.CategoryScore) []domain.ThemeScore {
	out := make([]domain.ThemeScore, len(scores))
	for i, s := range scores {
		out[i] = domain.ThemeScore{
			Theme:          s.Category,
			Score:          s.Score,
			Description:    s.Description,
			KeywordMatches: s.KeywordMatches,
		}
	}
	return out
}

func scoreMap(scores []domain.CategoryScore) map[string]domain.CategoryScore {
	m := make(map[string]domain.CategoryScore, len(scores))
	for _, s := range scores {
		m[s.Category] = s
	}
	return m
}

// moodAdvice maps a primary mood to a reading recommendation.
var moodAdvice = map[string]string{
	"uplifting":     "مناسب للقراءة عند الحاجة للتحفيز والإلهام",
	"melancholic":   "يناسب القراءة في أوقات التأمل والهدوء",
	"mysterious":    "مثالي لمحبي الإثارة والتشويق",
	"romantic":      "رائع للقراءة في أجواء رومانسية",
	"dark":          "يناسب القراء الذين يستمتعون بالأجواء المظلمة",
	"adventurous":   "مناسب لمن يبحث عن المغامرة والإثارة",
	"philosophical": "يناسب القراء المهتمين بالتفكير العميق",
	"humorous":      "مثالي لرفع المعنويات والترفيه",
	"peaceful":      "مناسب للقراءة قبل النوم أو في أوقات الاسترخاء",
}

// themeAdvice maps a dominant theme to a reading recommendation.
var themeAdvice = map[string]string{
	"love_relationships":    "يناسب من يهتم بقصص الحب والعلاقات",
	"coming_of_age":         "مناسب للشباب والمهتمين بقصص النضج",
	"social_issues":         "يناسب القراء المهتمين بالقضايا المجتمعية",
	"spirituality_religion": "مناسب للباحثين عن المعنى الروحي",
}

func recommendations(primaryMood string, themes []domain.ThemeScore) []string {
	recs := []string{}
	if advice, ok := moodAdvice[primaryMood]; ok {
		recs = append(recs, advice)
	}
	if len(themes) > 0 {
		if advice, ok := themeAdvice[themes[0].Theme]; ok {
			recs = append(recs, advice)
		}
	}
	return recs
}

// String implements a debug representation for logs.
func (in BookInput) String() string {
	return fmt.Sprintf("BookInput(title=%d chars, description=%d chars, text=%d chars)",
		len(in.Title), len(in.Description), len(in.Text))
}
