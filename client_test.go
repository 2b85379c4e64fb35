package lisan

import (
	"context"
	"testing"

	"github.com/kitabi-cloud/lisan/internal/domain"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func TestClient_CachelessPing(t *testing.T) {
	c := newTestClient(t)
	if err := c.Ping(context.Background()); err != nil {
		t.Errorf("Ping without cache: %v", err)
	}
}

func TestClient_AnalyzeMood(t *testing.T) {
	c := newTestClient(t)

	analysis, err := c.AnalyzeMood(context.Background(), BookInput{
		Text: "قصة مليئة بالحزن والألم والدموع في ليالي الفراق الطويلة",
	})
	if err != nil {
		t.Fatalf("AnalyzeMood: %v", err)
	}
	if analysis.PrimaryMood.Mood == "" {
		t.Error("primary mood is empty")
	}
	if analysis.ReadingLevel == "" {
		t.Error("reading level is empty")
	}
}

func TestClient_AnalyzeSentiment(t *testing.T) {
	c := newTestClient(t)

	analysis, err := c.AnalyzeSentiment(context.Background(), "This novel is terrible and boring, a waste of time.")
	if err != nil {
		t.Fatalf("AnalyzeSentiment: %v", err)
	}
	if analysis.Sentiment.Label != domain.LabelNegative {
		t.Errorf("label: got %s, want %s", analysis.Sentiment.Label, domain.LabelNegative)
	}
}

func TestClient_Summarize(t *testing.T) {
	c := newTestClient(t)

	text := "The story opens in a small village by the sea. " +
		"The main character struggles against poverty for many years. " +
		"In the end the important conclusion rewards the reader."

	sum, err := c.Summarize(context.Background(), text, 30, domain.SummaryExtractive)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Text == "" {
		t.Error("summary text is empty")
	}
	if sum.Stats.OriginalWords == 0 {
		t.Error("original word count is zero")
	}
}

func TestClient_RateReview(t *testing.T) {
	c := newTestClient(t)

	score, interp := c.RateReview(context.Background(),
		"A thorough review describing the plot, the characters, and why the pacing works.", 4)
	if score < 0 || score > 1 {
		t.Errorf("score out of range: %v", score)
	}
	if interp == "" {
		t.Error("interpretation is empty")
	}
}

func TestClient_Recommend(t *testing.T) {
	c := newTestClient(t)

	recs := c.Recommend(context.Background(), "reader-1", domain.Preferences{}, 3)
	if len(recs) != 3 {
		t.Fatalf("recommendations: got %d, want 3", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("recommendations not ranked: %v before %v", recs[i-1].Score, recs[i].Score)
		}
	}
}

func TestClient_WordsPerMinuteOption(t *testing.T) {
	c, err := New(WithWordsPerMinute(10))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(c.Close)

	text := "One two three four five six seven eight nine ten eleven twelve. " +
		"More words to push the reading time over a single minute."

	sum, err := c.Summarize(context.Background(), text, 100, domain.SummaryExtractive)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.ReadingTimeMinutes < 2 {
		t.Errorf("reading time: got %d, want >= 2 at 10 wpm", sum.ReadingTimeMinutes)
	}
}
