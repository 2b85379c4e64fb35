package recommend

import (
	"context"
	"testing"

	"github.com/kitabi-cloud/lisan/internal/domain"
)

func TestRecommend_NoPreferences(t *testing.T) {
	out := New().Recommend(context.Background(), "user-1", domain.Preferences{}, 10)

	if len(out) != len(catalog) {
		t.Fatalf("got %d recommendations, want full catalog of %d", len(out), len(catalog))
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Errorf("catalog not ranked: %v before %v", out[i-1].Score, out[i].Score)
		}
	}
}

func TestRecommend_GenreFilter(t *testing.T) {
	prefs := domain.Preferences{Genres: []string{"أدب عربي"}}
	out := New().Recommend(context.Background(), "user-1", prefs, 10)

	if len(out) == 0 {
		t.Fatal("expected matches for a catalog genre")
	}
	for _, rec := range out {
		if !matchesAny(rec.Genres, prefs.Genres) {
			t.Errorf("%s does not carry the requested genre: %v", rec.Title, rec.Genres)
		}
	}
}

func TestRecommend_AuthorFilter(t *testing.T) {
	prefs := domain.Preferences{Authors: []string{"جورج أورويل"}}
	out := New().Recommend(context.Background(), "user-1", prefs, 10)

	if len(out) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(out))
	}
	if out[0].Title != "1984" {
		t.Errorf("Title = %q, want 1984", out[0].Title)
	}
}

func TestRecommend_FallbackToPopular(t *testing.T) {
	prefs := domain.Preferences{Genres: []string{"نوع غير موجود"}}
	out := New().Recommend(context.Background(), "user-1", prefs, 10)

	if len(out) == 0 {
		t.Fatal("expected popular fallback, got nothing")
	}
	for _, rec := range out {
		if rec.Reason != "من الكتب الأكثر شعبية" {
			t.Errorf("fallback entry %q has reason %q", rec.Title, rec.Reason)
		}
	}
}

func TestRecommend_RespectsLimit(t *testing.T) {
	out := New().Recommend(context.Background(), "user-1", domain.Preferences{}, 2)
	if len(out) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(out))
	}
	if out[0].Score < out[1].Score {
		t.Error("limited list must keep the ranking")
	}
}

func TestRecommend_DefaultLimit(t *testing.T) {
	out := New().Recommend(context.Background(), "user-1", domain.Preferences{}, 0)
	if len(out) == 0 || len(out) > defaultRecommendLimit {
		t.Fatalf("got %d recommendations with default limit", len(out))
	}
}

func TestSimilarBooks_GenreOverlap(t *testing.T) {
	// "مدن الملح" shares "أدب عربي" with two catalog entries.
	out := New().SimilarBooks(context.Background(), "2", 5)

	if len(out) != 2 {
		t.Fatalf("got %d similar books, want 2", len(out))
	}
	for _, sim := range out {
		if sim.BookID == "2" {
			t.Error("target book listed as its own neighbor")
		}
		if len(sim.CommonThemes) == 0 {
			t.Errorf("%s has no common themes", sim.Title)
		}
		if sim.SimilarityScore <= 0 || sim.SimilarityScore > maxSimilarity {
			t.Errorf("%s similarity %v out of range", sim.Title, sim.SimilarityScore)
		}
	}
}

func TestSimilarBooks_UnknownBook(t *testing.T) {
	out := New().SimilarBooks(context.Background(), "missing", 5)
	if out == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(out) != 0 {
		t.Fatalf("got %d similar books for an unknown ID", len(out))
	}
}

func TestSimilarBooks_RespectsLimit(t *testing.T) {
	out := New().SimilarBooks(context.Background(), "2", 1)
	if len(out) != 1 {
		t.Fatalf("got %d similar books, want 1", len(out))
	}
}
