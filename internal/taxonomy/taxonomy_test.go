package taxonomy

import (
	"testing"

	"github.com/kitabi-cloud/lisan/internal/domain"
)

func TestScore_WholeWordMatching(t *testing.T) {
	tax := New("test", []Category{
		{ID: "cats", Keywords: []string{"cat"}, Description: "about cats"},
		{ID: "other", Keywords: []string{"dog"}, Description: "about dogs"},
	})

	// "catalog" must not match the keyword "cat".
	scores := tax.Score("the catalog lists one cat and one dog here")

	if len(scores) != 2 {
		t.Fatalf("expected one score per category, got %d", len(scores))
	}
	// 9 words, 1 match -> 1/9*100
	want := 1.0 / 9.0 * 100
	if got := scores[0].Score; got != want {
		t.Errorf("cats score: got %v, want %v", got, want)
	}
	if scores[0].KeywordMatches != 1 {
		t.Errorf("cats keyword matches: got %d, want 1", scores[0].KeywordMatches)
	}
	if scores[1].KeywordMatches != 1 {
		t.Errorf("other keyword matches: got %d, want 1", scores[1].KeywordMatches)
	}
}

func TestScore_EmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		scores := Moods.Score(text)
		if len(scores) != len(Moods.Categories()) {
			t.Fatalf("expected %d scores, got %d", len(Moods.Categories()), len(scores))
		}
		for _, s := range scores {
			if s.Score != 0 || s.KeywordMatches != 0 {
				t.Errorf("text %q: category %s expected zero score, got %+v", text, s.Category, s)
			}
		}
	}
}

func TestScore_ArabicCliticPrefix(t *testing.T) {
	// "وملهم" carries the attached conjunction waw; the bare keyword must
	// still be found.
	scores := Moods.Score("هذا كتاب رائع وملهم جداً")

	var uplifting domain.CategoryScore
	for _, s := range scores {
		if s.Category == "uplifting" {
			uplifting = s
		}
	}
	if uplifting.Score <= 0 {
		t.Errorf("expected positive uplifting score, got %v", uplifting.Score)
	}
	if uplifting.KeywordMatches != 1 {
		t.Errorf("expected 1 keyword match, got %d", uplifting.KeywordMatches)
	}
}

func TestPrimary_TieBreakKeepsDeclaredOrder(t *testing.T) {
	tax := New("test", []Category{
		{ID: "first", Keywords: []string{"alpha"}},
		{ID: "second", Keywords: []string{"alpha"}},
	})

	scores := tax.Score("alpha beta")
	p := Primary(scores)
	if p.Category != "first" {
		t.Errorf("tie should resolve to declared order, got %q", p.Category)
	}
}

func TestPrimary_AllZeroReturnsFirstCategory(t *testing.T) {
	scores := Moods.Score("nothing matches here whatsoever today")
	p := Primary(scores)
	if p.Category != "uplifting" {
		t.Errorf("arg-max over all-zero scores should keep first category, got %q", p.Category)
	}
	if p.Score != 0 {
		t.Errorf("expected zero score, got %v", p.Score)
	}
}

func TestPrimary_EmptyFallsBackToNeutral(t *testing.T) {
	p := Primary(nil)
	if p.Category != "neutral" {
		t.Errorf("expected neutral sentinel, got %q", p.Category)
	}
	if p.Description != domain.NeutralMoodDescription {
		t.Errorf("unexpected description %q", p.Description)
	}
}

func TestTop_ExcludesZeroScores(t *testing.T) {
	scores := Themes.Score("a story of war and conflict and battle")

	top := Top(scores, 5)
	if len(top) == 0 {
		t.Fatal("expected at least one theme")
	}
	for _, s := range top {
		if s.Score <= 0 {
			t.Errorf("zero-score category %q must be excluded", s.Category)
		}
	}
	if top[0].Category != "war_conflict" {
		t.Errorf("expected war_conflict first, got %q", top[0].Category)
	}
}

func TestTop_Limit(t *testing.T) {
	scores := []domain.CategoryScore{
		{Category: "a", Score: 3},
		{Category: "b", Score: 2},
		{Category: "c", Score: 1},
	}
	top := Top(scores, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2, got %d", len(top))
	}
	if top[0].Category != "a" || top[1].Category != "b" {
		t.Errorf("unexpected order: %q, %q", top[0].Category, top[1].Category)
	}
}

func TestContains_SubstringDiscipline(t *testing.T) {
	// "التحليل" contains "تحليل" as a substring: the indicator lists rely
	// on matching inflected forms.
	ids := QualityIndicators.Contains("هذا التحليل ممتاز")
	found := false
	for _, id := range ids {
		if id == "detailed_analysis" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected detailed_analysis, got %v", ids)
	}
}

func TestRegistries_Complete(t *testing.T) {
	cases := []struct {
		name string
		tax  *Taxonomy
		want int
	}{
		{"moods", Moods, 10},
		{"themes", Themes, 10},
		{"emotions", Emotions, 6},
		{"review emotions", ReviewEmotions, 6},
		{"review themes", ReviewThemes, 8},
		{"quality indicators", QualityIndicators, 4},
		{"concept buckets", ConceptBuckets, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(tc.tax.Categories()); got != tc.want {
				t.Errorf("expected %d categories, got %d", tc.want, got)
			}
			for _, c := range tc.tax.Categories() {
				if len(c.Keywords) == 0 {
					t.Errorf("category %q has no keywords", c.ID)
				}
			}
		})
	}
}
