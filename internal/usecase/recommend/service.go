// Package recommend serves book recommendations from a fixed catalog.
//
// There is no trained model behind this: entries carry curated scores and
// reasons, and personalization is a preference filter over catalog genres
// and authors. Similar-books lookup ranks the rest of the catalog by genre
// overlap with the target.
package recommend

import (
	"context"
	"sort"

	"github.com/kitabi-cloud/lisan/internal/domain"
)

const (
	defaultRecommendLimit = 10
	defaultSimilarLimit   = 5
	maxSimilarity         = 0.95
)

// catalog entries are ordered by score. The last two double as the popular
// fallback when preference filtering leaves nothing.
var catalog = []domain.BookRecommendation{
	{
		BookID: "1",
		Title:  "مئة عام من العزلة",
		Author: "غابرييل غارثيا ماركيث",
		Score:  0.95,
		Reason: "يتطابق مع اهتمامك بالأدب اللاتيني",
		Genres: []string{"أدب لاتيني", "خيال"},
		Rating: 4.8,
	},
	{
		BookID: "2",
		Title:  "مدن الملح",
		Author: "عبد الرحمن منيف",
		Score:  0.92,
		Reason: "يناسب ذوقك في الأدب العربي المعاصر",
		Genres: []string{"أدب عربي", "رواية"},
		Rating: 4.6,
	},
	{
		BookID: "3",
		Title:  "1984",
		Author: "جورج أورويل",
		Score:  0.89,
		Reason: "مناسب لمحبي الخيال العلمي والديستوبيا",
		Genres: []string{"خيال علمي", "ديستوبيا"},
		Rating: 4.7,
	},
	{
		BookID: "4",
		Title:  "الأسود يليق بك",
		Author: "أحلام مستغانمي",
		Score:  0.87,
		Reason: "أعجب بهذا الكتاب مستخدمون لهم تفضيلات مشابهة",
		Genres: []string{"رومانسية", "أدب عربي"},
		Rating: 4.3,
	},
	{
		BookID: "popular1",
		Title:  "قواعد العشق الأربعون",
		Author: "إليف شافاق",
		Score:  0.85,
		Reason: "من الكتب الأكثر شعبية",
		Genres: []string{"رومانسية", "تاريخي"},
		Rating: 4.5,
	},
	{
		BookID: "popular2",
		Title:  "الأيام",
		Author: "طه حسين",
		Score:  0.83,
		Reason: "من الكتب الأكثر شعبية",
		Genres: []string{"سيرة ذاتية", "أدب عربي"},
		Rating: 4.9,
	},
}

// popularOffset marks where the fallback entries start in the catalog.
const popularOffset = 4

// Service recommends books. Stateless; safe for concurrent use.
type Service struct{}

// New creates a recommendation service.
func New() *Service {
	return &Service{}
}

// Recommend returns up to limit catalog entries matching the preferences.
// Empty preferences return the whole ranked catalog; preferences that match
// nothing fall back to the popular entries.
func (s *Service) Recommend(_ context.Context, _ string, prefs domain.Preferences, limit int) []domain.BookRecommendation {
	if limit <= 0 {
		limit = defaultRecommendLimit
	}

	matched := filterByPreferences(catalog, prefs)
	if len(matched) == 0 {
		matched = catalog[popularOffset:]
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]domain.BookRecommendation, len(matched))
	copy(out, matched)
	return out
}

// SimilarBooks ranks the rest of the catalog by genre overlap with the
// target book. Unknown book IDs return an empty list.
func (s *Service) SimilarBooks(_ context.Context, bookID string, limit int) []domain.SimilarBook {
	if limit <= 0 {
		limit = defaultSimilarLimit
	}

	target, ok := findBook(bookID)
	if !ok {
		return []domain.SimilarBook{}
	}

	var out []domain.SimilarBook
	for _, book := range catalog {
		if book.BookID == target.BookID {
			continue
		}
		shared := sharedGenres(target.Genres, book.Genres)
		if len(shared) == 0 {
			continue
		}

		score := 0.6 + 0.15*float64(len(shared))
		if score > maxSimilarity {
			score = maxSimilarity
		}

		out = append(out, domain.SimilarBook{
			BookID:          book.BookID,
			Title:           book.Title,
			Author:          book.Author,
			SimilarityScore: score,
			Reason:          "نفس النوع الأدبي والمواضيع",
			CommonThemes:    shared,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].SimilarityScore > out[j].SimilarityScore })

	if len(out) > limit {
		out = out[:limit]
	}
	if out == nil {
		out = []domain.SimilarBook{}
	}
	return out
}

func filterByPreferences(books []domain.BookRecommendation, prefs domain.Preferences) []domain.BookRecommendation {
	if len(prefs.Genres) == 0 && len(prefs.Authors) == 0 {
		return books
	}

	var out []domain.BookRecommendation
	for _, book := range books {
		if matchesAny(book.Genres, prefs.Genres) || matchesOne(book.Author, prefs.Authors) {
			out = append(out, book)
		}
	}
	return out
}

func matchesAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func matchesOne(have string, want []string) bool {
	for _, w := range want {
		if w == have {
			return true
		}
	}
	return false
}

func findBook(bookID string) (domain.BookRecommendation, bool) {
	for _, book := range catalog {
		if book.BookID == bookID {
			return book, true
		}
	}
	return domain.BookRecommendation{}, false
}

func sharedGenres(a, b []string) []string {
	var out []string
	for _, g := range a {
		for _, h := range b {
			if g == h {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
