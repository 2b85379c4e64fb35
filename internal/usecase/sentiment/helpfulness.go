package sentiment

import (
	"context"
	"math"

	"github.com/kitabi-cloud/lisan/internal/taxonomy"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// Helpfulness score bands, highest first.
var helpfulnessBands = []struct {
	threshold float64
	label     string
}{
	{0.8, "مراجعة مفيدة جداً ومفصلة"},
	{0.6, "مراجعة مفيدة"},
	{0.4, "مراجعة متوسطة الفائدة"},
	{0.2, "مراجعة محدودة الفائدة"},
	{0.0, "مراجعة قليلة الفائدة"},
}

// RateHelpfulness scores a review in [0,1] from its length, quality
// indicators, sentiment consistency with the declared rating, and structure.
//
// The score is monotonically non-decreasing in the number of distinct
// indicator groups matched: each group contributes a fixed +0.15.
func (s *Service) RateHelpfulness(ctx context.Context, reviewText string, rating float64) float64 {
	score := 0.0

	// Length bonus: the narrow optimal range wins over the wide one.
	wordCount := textproc.WordCount(reviewText)
	switch {
	case wordCount >= 50 && wordCount <= 500:
		score += 0.2
	case wordCount >= 20 && wordCount <= 1000:
		score += 0.1
	}

	// Distinct quality-indicator groups stack up to 0.6.
	score += 0.15 * float64(len(taxonomy.QualityIndicators.Contains(reviewText)))

	// Declared rating 1-5 maps to an expected polarity in [-1,1];
	// agreement with the measured polarity contributes up to 0.2.
	measured := s.Analyze(ctx, reviewText).Sentiment.Polarity
	expected := (rating - 3) / 2
	consistency := 1 - math.Abs(expected-measured)
	score += consistency * 0.2

	// A multi-sentence review shows structure.
	if textproc.CountSentences(reviewText) >= 3 {
		score += 0.1
	}

	return clamp01(score)
}

// InterpretHelpfulness maps a score to its human-readable band.
func (s *Service) InterpretHelpfulness(score float64) string {
	for _, b := range helpfulnessBands {
		if score >= b.threshold {
			return b.label
		}
	}
	return helpfulnessBands[len(helpfulnessBands)-1].label
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
