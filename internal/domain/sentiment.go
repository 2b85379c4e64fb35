package domain

// Label is a sentiment polarity label.
type Label string

const (
	// LabelPositive indicates polarity above the dead zone.
	LabelPositive Label = "positive"
	// LabelNegative indicates polarity below the dead zone.
	LabelNegative Label = "negative"
	// LabelNeutral indicates polarity inside the dead zone.
	LabelNeutral Label = "neutral"
)

// labelDeadZone is the +-threshold below which polarity counts as neutral.
const labelDeadZone = 0.1

// LabelFor maps a polarity to its label using the shared dead zone.
func LabelFor(polarity float64) Label {
	switch {
	case polarity > labelDeadZone:
		return LabelPositive
	case polarity < -labelDeadZone:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// LanguageSentiment is a single-language polarity signal.
type LanguageSentiment struct {
	Polarity   float64 `json:"polarity"`
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`

	// Lexicon hit counts, set by the Arabic path only.
	PositiveWords int `json:"positive_words,omitempty"`
	NegativeWords int `json:"negative_words,omitempty"`
}

// Sentiment is the confidence-weighted merge of the per-language signals.
type Sentiment struct {
	Polarity   float64           `json:"polarity"`
	Label      Label             `json:"label"`
	Confidence float64           `json:"confidence"`
	Arabic     LanguageSentiment `json:"arabic_analysis"`
	English    LanguageSentiment `json:"english_analysis"`
}

// TextStats holds surface statistics of the analyzed text.
type TextStats struct {
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	AvgWordLength float64 `json:"avg_word_length"`
}

// SentimentAnalysis is the full sentiment response for a text.
type SentimentAnalysis struct {
	Sentiment  Sentiment `json:"sentiment"`
	Emotions   []string  `json:"emotions"`
	Themes     []string  `json:"themes"`
	Confidence float64   `json:"confidence"`
	TextStats  TextStats `json:"text_stats"`
}

// NeutralSentiment is the degraded default for empty or failed analysis.
func NeutralSentiment() SentimentAnalysis {
	return SentimentAnalysis{
		Sentiment: Sentiment{
			Polarity:   0,
			Label:      LabelNeutral,
			Confidence: 0.3,
			Arabic:     LanguageSentiment{Label: LabelNeutral, Confidence: 0.3},
			English:    LanguageSentiment{Label: LabelNeutral, Confidence: 0.3},
		},
		Emotions:   []string{},
		Themes:     []string{},
		Confidence: 0.3,
	}
}
