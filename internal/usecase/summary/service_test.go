package summary

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/textproc"
)

const sampleText = "Sentence one is short. This is the second sentence with more detail and numbers like 42. Final concluding sentence."

func TestSummarizeEmptyInput(t *testing.T) {
	svc := New()
	ctx := context.Background()

	cases := []struct {
		name     string
		text     string
		maxWords int
	}{
		{name: "empty", text: "", maxWords: 100},
		{name: "whitespace", text: "   \n\t ", maxWords: 100},
		{name: "zero budget", text: sampleText, maxWords: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum := svc.Summarize(ctx, tc.text, tc.maxWords, domain.SummaryExtractive)
			if sum.Text != "" {
				t.Errorf("Text = %q, want empty", sum.Text)
			}
			if len(sum.KeyPoints) != 0 {
				t.Errorf("KeyPoints = %v, want none", sum.KeyPoints)
			}
			if sum.QualityScore != 0 {
				t.Errorf("QualityScore = %v, want 0", sum.QualityScore)
			}
			if sum.Stats.OriginalWords != 0 || sum.Stats.SummaryWords != 0 {
				t.Errorf("Stats = %+v, want zero", sum.Stats)
			}
		})
	}
}

func TestExtractivePreservesSourceOrder(t *testing.T) {
	sum := New().Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)

	want := "Sentence one is short Final concluding sentence"
	if sum.Text != want {
		t.Fatalf("Text = %q, want %q", sum.Text, want)
	}
	if sum.Mode != domain.SummaryExtractive {
		t.Errorf("Mode = %q, want extractive", sum.Mode)
	}
	if sum.Language != domain.LanguageEnglish {
		t.Errorf("Language = %q, want english", sum.Language)
	}
	if n := textproc.WordCount(sum.Text); n > 10 {
		t.Errorf("summary has %d words, budget is 10", n)
	}
}

func TestExtractiveRespectsBudget(t *testing.T) {
	text := strings.Join([]string{
		"The river flows through the ancient valley every spring.",
		"Farmers gather near the banks to plant their yearly crops.",
		"Trade caravans once crossed these waters carrying silk and spice.",
		"Historians consider the valley a cradle of early settlement.",
		"Modern dams have changed the seasonal rhythm of the water.",
		"The conclusion is that the river still shapes every life around it.",
	}, " ")

	for _, budget := range []int{8, 15, 25, 60} {
		sum := New().Summarize(context.Background(), text, budget, domain.SummaryExtractive)
		if n := textproc.WordCount(sum.Text); n > budget {
			t.Errorf("budget %d: summary has %d words", budget, n)
		}
	}
}

func TestKeyIndicatorBonus(t *testing.T) {
	// The closing sentence carries a conclusion marker; it must outrank the
	// longer middle sentence and be the only sentence over the key-point
	// threshold.
	sum := New().Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)

	if len(sum.KeyPoints) != 1 {
		t.Fatalf("KeyPoints = %v, want exactly one", sum.KeyPoints)
	}
	if sum.KeyPoints[0] != "Final concluding sentence" {
		t.Errorf("KeyPoints[0] = %q, want the concluding sentence", sum.KeyPoints[0])
	}
}

func TestKeyPointTruncation(t *testing.T) {
	svc := New().WithLimits(Limits{KeyPointMaxRunes: 20})
	sum := svc.Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)

	if len(sum.KeyPoints) != 1 {
		t.Fatalf("KeyPoints = %v, want exactly one", sum.KeyPoints)
	}
	point := sum.KeyPoints[0]
	if got := len([]rune(point)); got != 20 {
		t.Errorf("key point is %d runes, want 20: %q", got, point)
	}
	if !strings.HasSuffix(point, "...") {
		t.Errorf("truncated key point %q missing ellipsis", point)
	}
}

func TestCompressionStats(t *testing.T) {
	sum := New().Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)

	if sum.Stats.OriginalWords != 20 {
		t.Errorf("OriginalWords = %d, want 20", sum.Stats.OriginalWords)
	}
	if sum.Stats.SummaryWords != 7 {
		t.Errorf("SummaryWords = %d, want 7", sum.Stats.SummaryWords)
	}
	if math.Abs(sum.Stats.CompressionRatio-0.35) > 1e-9 {
		t.Errorf("CompressionRatio = %v, want 0.35", sum.Stats.CompressionRatio)
	}
	if math.Abs(sum.Stats.CompressionPercent-65.0) > 1e-9 {
		t.Errorf("CompressionPercent = %v, want 65.0", sum.Stats.CompressionPercent)
	}
}

func TestQualityScoreBounds(t *testing.T) {
	sum := New().Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)
	if sum.QualityScore <= 0 || sum.QualityScore > 1 {
		t.Errorf("QualityScore = %v, want within (0, 1]", sum.QualityScore)
	}
}

func TestAbstractiveArabicConcepts(t *testing.T) {
	text := "كتاب يناقش مجتمع المدينة. كان مجتمع المدينة متنوعا ومتغيرا. درس الكاتب تاريخ المدينة القديم. ذلك تاريخ مليء بالأحداث المهمة."

	sum := New().Summarize(context.Background(), text, 50, domain.SummaryAbstractive)

	if sum.Mode != domain.SummaryAbstractive {
		t.Fatalf("Mode = %q, want abstractive", sum.Mode)
	}
	if sum.Language != domain.LanguageArabic {
		t.Errorf("Language = %q, want arabic", sum.Language)
	}
	if !strings.HasPrefix(sum.Text, "يتناول هذا العمل ") {
		t.Errorf("Text = %q, want the Arabic opening template", sum.Text)
	}
	if !strings.Contains(sum.Text, "المجتمع والسياسة") {
		t.Errorf("Text = %q, want the society concept", sum.Text)
	}
	if !strings.Contains(sum.Text, "التاريخ والثقافة") {
		t.Errorf("Text = %q, want the history concept", sum.Text)
	}
	if !strings.HasSuffix(sum.Text, ".") {
		t.Errorf("Text = %q, want terminal period", sum.Text)
	}
}

func TestAbstractiveFallsBackToExtractive(t *testing.T) {
	// No content word repeats, so no concept bucket can match.
	text := "The ancient castle stood quietly. Nearby villagers wondered about forgotten legends."

	sum := New().Summarize(context.Background(), text, 20, domain.SummaryAbstractive)

	want := "The ancient castle stood quietly Nearby villagers wondered about forgotten legends"
	if sum.Text != want {
		t.Errorf("Text = %q, want extractive fallback %q", sum.Text, want)
	}
	if sum.Mode != domain.SummaryAbstractive {
		t.Errorf("Mode = %q, want abstractive", sum.Mode)
	}
}

func TestAbstractiveHonorsWordBudget(t *testing.T) {
	text := "كتاب يناقش مجتمع المدينة. كان مجتمع المدينة متنوعا ومتغيرا. درس الكاتب تاريخ المدينة القديم. ذلك تاريخ مليء بالأحداث المهمة."

	sum := New().Summarize(context.Background(), text, 4, domain.SummaryAbstractive)

	words := strings.Fields(sum.Text)
	// The template overshoot is trimmed to the budget plus a trailing
	// ellipsis token glued to the last word.
	if len(words) > 4 {
		t.Errorf("summary has %d words, budget is 4: %q", len(words), sum.Text)
	}
	if !strings.HasSuffix(sum.Text, "...") {
		t.Errorf("Text = %q, want trailing ellipsis after trim", sum.Text)
	}
}

func TestReadingTime(t *testing.T) {
	sum := New().Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)
	if sum.ReadingTimeMinutes != 1 {
		t.Errorf("ReadingTimeMinutes = %d, want 1", sum.ReadingTimeMinutes)
	}

	slow := New().WithLimits(Limits{WordsPerMinute: 5})
	sum = slow.Summarize(context.Background(), sampleText, 10, domain.SummaryExtractive)
	if sum.ReadingTimeMinutes != 2 {
		t.Errorf("ReadingTimeMinutes = %d at 5 wpm, want 2", sum.ReadingTimeMinutes)
	}
}

func TestSummarizeChapters(t *testing.T) {
	chapters := []domain.Chapter{
		{Title: "البداية", Content: "يبدأ الكاتب رحلته في المدينة القديمة. يصف الأسواق والشوارع بتفاصيل دقيقة. خلاصة الفصل أن المدينة مرآة لسكانها."},
		{Content: "The second part follows the narrator across the desert. Water becomes the most important resource in every decision. The conclusion ties survival to cooperation between travelers."},
	}

	out := New().SummarizeChapters(context.Background(), chapters)

	if len(out) != 2 {
		t.Fatalf("got %d chapter summaries, want 2", len(out))
	}
	for i, ch := range out {
		if ch.ChapterNumber != i+1 {
			t.Errorf("chapter %d: ChapterNumber = %d", i, ch.ChapterNumber)
		}
		if ch.Summary == "" {
			t.Errorf("chapter %d: empty summary", i)
		}
		if len(ch.KeyPoints) > 3 {
			t.Errorf("chapter %d: %d key points, want at most 3", i, len(ch.KeyPoints))
		}
	}
	if out[0].Title != "البداية" {
		t.Errorf("Title = %q, want the given title", out[0].Title)
	}
	if out[1].Title != "Chapter 2" {
		t.Errorf("Title = %q, want generated fallback", out[1].Title)
	}
}
