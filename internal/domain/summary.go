package domain

// SummaryMode selects how a summary is produced.
type SummaryMode string

const (
	// SummaryExtractive composes the summary from selected original sentences.
	SummaryExtractive SummaryMode = "extractive"
	// SummaryAbstractive builds templated sentences from concept buckets.
	SummaryAbstractive SummaryMode = "abstractive"
)

// SummaryStats compares the summary against the original text.
type SummaryStats struct {
	OriginalWords      int     `json:"original_words"`
	SummaryWords       int     `json:"summary_words"`
	CompressionRatio   float64 `json:"compression_ratio"`
	CompressionPercent float64 `json:"compression_percentage"`
}

// Summary is the full summarization result.
type Summary struct {
	Text               string       `json:"summary"`
	KeyPoints          []string     `json:"key_points"`
	Stats              SummaryStats `json:"statistics"`
	QualityScore       float64      `json:"quality_score"`
	Mode               SummaryMode  `json:"summary_type"`
	Language           Language     `json:"language"`
	ReadingTimeMinutes int          `json:"reading_time"`
}

// EmptySummary is the degraded default for empty or failed summarization.
func EmptySummary() Summary {
	return Summary{
		Text:      "",
		KeyPoints: []string{},
		Mode:      SummaryExtractive,
		Language:  LanguageUnknown,
	}
}

// Chapter is one unit of a chapter-by-chapter summarization request.
type Chapter struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChapterSummary is the per-chapter summarization result.
type ChapterSummary struct {
	ChapterNumber      int      `json:"chapter_number"`
	Title              string   `json:"title"`
	Summary            string   `json:"summary"`
	KeyPoints          []string `json:"key_points"`
	ReadingTimeMinutes int      `json:"reading_time"`
}
