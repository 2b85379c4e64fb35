package domain

// CategoryScore is one taxonomy category's score for a text.
// Score is matches-per-word x100, recomputed per call and never persisted.
type CategoryScore struct {
	Category       string  `json:"-"`
	Score          float64 `json:"score"`
	KeywordMatches int     `json:"keyword_matches"`
	Description    string  `json:"description"`
}

// PrimaryMood is the arg-max mood category.
type PrimaryMood struct {
	Mood           string  `json:"mood"`
	Score          float64 `json:"score"`
	Description    string  `json:"description"`
	KeywordMatches int     `json:"keyword_matches"`
}

// ThemeScore is one detected theme with its score.
type ThemeScore struct {
	Theme          string  `json:"theme"`
	Score          float64 `json:"score"`
	Description    string  `json:"description"`
	KeywordMatches int     `json:"keyword_matches"`
}

// ReadingLevel is a coarse difficulty estimate.
type ReadingLevel string

const (
	// ReadingBeginner indicates short words and short sentences.
	ReadingBeginner ReadingLevel = "beginner"
	// ReadingIntermediate is the default level.
	ReadingIntermediate ReadingLevel = "intermediate"
	// ReadingAdvanced indicates long words or long sentences.
	ReadingAdvanced ReadingLevel = "advanced"
)

// MoodAnalysis is the full mood response for a book.
type MoodAnalysis struct {
	PrimaryMood        PrimaryMood              `json:"primary_mood"`
	MoodScores         map[string]CategoryScore `json:"mood_scores"`
	Themes             []ThemeScore             `json:"themes"`
	ThemeScores        map[string]CategoryScore `json:"theme_scores"`
	ReadingLevel       ReadingLevel             `json:"reading_level"`
	ReadingTimeMinutes int                      `json:"estimated_reading_time"`
	Emotions           []string                 `json:"emotions"`
	MoodTags           []string                 `json:"mood_tags"`
	Confidence         float64                  `json:"analysis_confidence"`
	Recommendations    []string                 `json:"recommendations"`
}

// NeutralMoodDescription is the sentinel description used when no mood wins.
const NeutralMoodDescription = "مزاج محايد"

// DefaultMoodAnalysis is the degraded default for empty or failed analysis.
func DefaultMoodAnalysis() MoodAnalysis {
	return MoodAnalysis{
		PrimaryMood:     PrimaryMood{Mood: "neutral", Score: 0, Description: NeutralMoodDescription},
		MoodScores:      map[string]CategoryScore{},
		Themes:          []ThemeScore{},
		ThemeScores:     map[string]CategoryScore{},
		ReadingLevel:    ReadingIntermediate,
		Emotions:        []string{},
		MoodTags:        []string{},
		Confidence:      0.3,
		Recommendations: []string{"يحتاج لمزيد من المعلومات للتحليل الدقيق"},
	}
}
