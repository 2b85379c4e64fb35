package domain

// BookRecommendation is one catalog entry returned by the recommender.
// Scores are fixed catalog values: no model is trained or queried.
type BookRecommendation struct {
	BookID string   `json:"book_id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Score  float64  `json:"score"`
	Reason string   `json:"reason"`
	Genres []string `json:"genres"`
	Rating float64  `json:"rating"`
}

// Preferences carries optional reader preferences for recommendations.
type Preferences struct {
	Genres  []string `json:"genres,omitempty"`
	Authors []string `json:"authors,omitempty"`
}

// SimilarBook is a catalog entry ranked by genre overlap with a target book.
type SimilarBook struct {
	BookID          string   `json:"book_id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	SimilarityScore float64  `json:"similarity_score"`
	Reason          string   `json:"reason"`
	CommonThemes    []string `json:"common_themes"`
}
