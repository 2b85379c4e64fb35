package httpapi

import "github.com/kitabi-cloud/lisan/internal/domain"

// Request bodies mirror the public API field names.

type moodRequest struct {
	Text        string `json:"text"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type textRequest struct {
	Text string `json:"text"`
}

type summarizeRequest struct {
	Content     string `json:"content"`
	Description string `json:"description"`
	MaxLength   int    `json:"max_length"`
	Mode        string `json:"mode"`
}

type rateReviewRequest struct {
	ReviewText string   `json:"review_text"`
	Rating     *float64 `json:"rating"`
}

type recommendRequest struct {
	UserID      string             `json:"user_id"`
	Preferences domain.Preferences `json:"preferences"`
	Limit       int                `json:"limit"`
}

type similarBooksRequest struct {
	BookID string `json:"book_id"`
	Limit  int    `json:"limit"`
}

// Success envelopes.

type moodResponse struct {
	Success      bool                `json:"success"`
	MoodAnalysis domain.MoodAnalysis `json:"mood_analysis"`
}

type themesResponse struct {
	Success bool                `json:"success"`
	Themes  []domain.ThemeScore `json:"themes"`
}

type sentimentResponse struct {
	Success   bool                     `json:"success"`
	Sentiment domain.SentimentAnalysis `json:"sentiment"`
}

type summarizeResponse struct {
	Success        bool           `json:"success"`
	Summary        domain.Summary `json:"summary"`
	OriginalLength int            `json:"original_length"`
	SummaryLength  int            `json:"summary_length"`
}

type rateReviewResponse struct {
	Success          bool    `json:"success"`
	HelpfulnessScore float64 `json:"helpfulness_score"`
	Interpretation   string  `json:"interpretation"`
}

type recommendResponse struct {
	Success         bool                        `json:"success"`
	Recommendations []domain.BookRecommendation `json:"recommendations"`
	Count           int                         `json:"count"`
}

type similarBooksResponse struct {
	Success      bool                 `json:"success"`
	SimilarBooks []domain.SimilarBook `json:"similar_books"`
	Count        int                  `json:"count"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorResponse struct {
	Error string `json:"error"`
}
