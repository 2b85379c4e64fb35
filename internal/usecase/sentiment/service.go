// Package sentiment implements bilingual (Arabic/English) sentiment analysis
// and review helpfulness rating.
//
// Two independent polarity signals are computed and merged confidence-
// weighted: an Arabic lexicon path (literal token membership) and an English
// path delegated to the VADER lexicon estimator. Neither language dominates
// by default; a strongly confident signal in one language outweighs a weak
// one in the other.
package sentiment

import (
	"context"
	"math"

	"github.com/jonreiter/govader"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/taxonomy"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

// noEvidenceConfidence is the floor confidence reported when a path found no
// sentiment-bearing words.
const noEvidenceConfidence = 0.3

// Service analyzes sentiment and rates review helpfulness. All methods are
// pure computations over the input text; safe for concurrent use.
type Service struct {
	english  *govader.SentimentIntensityAnalyzer
	emotions *taxonomy.Taxonomy
	themes   *taxonomy.Taxonomy
}

// New creates a sentiment service over the built-in registries.
func New() *Service {
	return &Service{
		english:  govader.NewSentimentIntensityAnalyzer(),
		emotions: taxonomy.ReviewEmotions,
		themes:   taxonomy.ReviewThemes,
	}
}

// Analyze computes the merged sentiment, detected emotions and themes, and
// surface statistics for a text. Empty or whitespace-only input degrades to
// the defined neutral result.
func (s *Service) Analyze(_ context.Context, text string) domain.SentimentAnalysis {
	cleaned := textproc.Preprocess(text)
	if cleaned == "" {
		return domain.NeutralSentiment()
	}

	arabic := s.analyzeArabic(cleaned)
	english := s.analyzeEnglish(cleaned)
	combined := combine(arabic, english)

	return domain.SentimentAnalysis{
		Sentiment:  combined,
		Emotions:   s.emotions.Contains(cleaned),
		Themes:     s.themes.Contains(cleaned),
		Confidence: combined.Confidence,
		TextStats: domain.TextStats{
			WordCount:     textproc.WordCount(cleaned),
			SentenceCount: textproc.CountSentences(text),
			AvgWordLength: textproc.AvgWordLength(cleaned),
		},
	}
}

// analyzeArabic counts lexicon membership over whitespace tokens.
// polarity = (pos-neg)/(pos+neg); confidence grows with the share of
// sentiment-bearing words, capped at 0.9.
func (s *Service) analyzeArabic(text string) domain.LanguageSentiment {
	words := textproc.Words(text)

	pos, neg := 0, 0
	for _, w := range words {
		if _, ok := taxonomy.ArabicPositive[w]; ok {
			pos++
		}
		if _, ok := taxonomy.ArabicNegative[w]; ok {
			neg++
		}
	}

	total := pos + neg
	if total == 0 {
		return domain.LanguageSentiment{Label: domain.LabelNeutral, Confidence: noEvidenceConfidence}
	}

	polarity := float64(pos-neg) / float64(total)
	confidence := math.Min(0.9, float64(total)/float64(len(words))+0.3)

	return domain.LanguageSentiment{
		Polarity:      polarity,
		Label:         domain.LabelFor(polarity),
		Confidence:    confidence,
		PositiveWords: pos,
		NegativeWords: neg,
	}
}

// analyzeEnglish delegates to the VADER estimator. The compound score is
// already normalized to [-1,1].
func (s *Service) analyzeEnglish(text string) domain.LanguageSentiment {
	polarity := s.english.PolarityScores(text).Compound

	return domain.LanguageSentiment{
		Polarity:   polarity,
		Label:      domain.LabelFor(polarity),
		Confidence: math.Abs(polarity)*0.8 + 0.2,
	}
}

// combine merges the two signals, weighting each polarity by its own
// confidence. Combined confidence is the mean of the two, capped at 0.95.
func combine(arabic, english domain.LanguageSentiment) domain.Sentiment {
	totalWeight := arabic.Confidence + english.Confidence
	if totalWeight == 0 {
		return domain.Sentiment{
			Label:      domain.LabelNeutral,
			Confidence: noEvidenceConfidence,
			Arabic:     arabic,
			English:    english,
		}
	}

	polarity := (arabic.Polarity*arabic.Confidence + english.Polarity*english.Confidence) / totalWeight
	confidence := math.Min(0.95, (arabic.Confidence+english.Confidence)/2)

	return domain.Sentiment{
		Polarity:   polarity,
		Label:      domain.LabelFor(polarity),
		Confidence: confidence,
		Arabic:     arabic,
		English:    english,
	}
}
