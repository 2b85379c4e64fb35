package lisan

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kitabi-cloud/lisan/internal/db"
	dbRedis "github.com/kitabi-cloud/lisan/internal/db/redis"
	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/repository/analysiscache"
	moodc "github.com/kitabi-cloud/lisan/internal/usecase/mood"
	recommenduc "github.com/kitabi-cloud/lisan/internal/usecase/recommend"
	sentimentuc "github.com/kitabi-cloud/lisan/internal/usecase/sentiment"
	summaryuc "github.com/kitabi-cloud/lisan/internal/usecase/summary"
)

const defaultReadinessTimeout = 10 * time.Second

// BookInput carries the text surfaces of a book for mood analysis; at
// least one field must be set.
type BookInput = moodc.BookInput

// Client is the lisan SDK entry point. All analysis runs in-process;
// an optional Redis store caches results.
type Client struct {
	store     db.Store
	cache     *analysiscache.Cache
	mood      *moodc.Service
	sentiment *sentimentuc.Service
	summary   *summaryuc.Service
	recommend *recommenduc.Service
}

// New creates a lisan Client. Without WithRedis the client runs cacheless.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		cacheTTL: time.Hour,
		logger:   zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	c := &Client{
		mood:      moodc.New(),
		sentiment: sentimentuc.New(),
		summary:   summaryuc.New(),
		recommend: recommenduc.New(),
	}
	if cfg.wordsPerMinute > 0 {
		c.mood = c.mood.WithHeuristics(moodc.Heuristics{WordsPerMinute: cfg.wordsPerMinute})
		c.summary = c.summary.WithLimits(summaryuc.Limits{WordsPerMinute: cfg.wordsPerMinute})
	}

	if len(cfg.addrs) == 0 {
		return c, nil
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("lisan: create cache store: %w", err)
	}

	if err := store.WaitForReady(context.Background(), defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("lisan: cache store not ready: %w", err)
	}

	c.store = store
	c.cache = analysiscache.New(store, cfg.cacheTTL, nil, cfg.logger)
	return c, nil
}

// Close releases the cache connection, if any.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping verifies cache connectivity. Returns nil for cacheless clients.
func (c *Client) Ping(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	return c.store.Ping(ctx)
}

// AnalyzeMood scores a book's mood, themes, and reading profile.
func (c *Client) AnalyzeMood(ctx context.Context, in BookInput) (domain.MoodAnalysis, error) {
	payload := in.Title + "\n" + in.Description + "\n" + in.Text
	return analysiscache.Do(ctx, c.cache, "mood", payload,
		func(ctx context.Context) (domain.MoodAnalysis, error) {
			return c.mood.AnalyzeMood(ctx, in), nil
		})
}

// ExtractThemes detects standalone themes in a text.
func (c *Client) ExtractThemes(ctx context.Context, text string) ([]domain.ThemeScore, error) {
	return analysiscache.Do(ctx, c.cache, "themes", text,
		func(ctx context.Context) ([]domain.ThemeScore, error) {
			return c.mood.ExtractThemes(ctx, text), nil
		})
}

// AnalyzeSentiment runs the bilingual sentiment analysis.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (domain.SentimentAnalysis, error) {
	return analysiscache.Do(ctx, c.cache, "sentiment", text,
		func(ctx context.Context) (domain.SentimentAnalysis, error) {
			return c.sentiment.Analyze(ctx, text), nil
		})
}

// Summarize produces a summary of text within maxWords.
func (c *Client) Summarize(ctx context.Context, text string, maxWords int, mode domain.SummaryMode) (domain.Summary, error) {
	payload := fmt.Sprintf("%s:%d:%s", mode, maxWords, text)
	return analysiscache.Do(ctx, c.cache, "summary", payload,
		func(ctx context.Context) (domain.Summary, error) {
			return c.summary.Summarize(ctx, text, maxWords, mode), nil
		})
}

// SummarizeChapters summarizes each chapter independently.
func (c *Client) SummarizeChapters(ctx context.Context, chapters []domain.Chapter) []domain.ChapterSummary {
	return c.summary.SummarizeChapters(ctx, chapters)
}

// RateReview scores a review's helpfulness in [0, 1].
func (c *Client) RateReview(ctx context.Context, reviewText string, rating float64) (float64, string) {
	score := c.sentiment.RateHelpfulness(ctx, reviewText, rating)
	return score, c.sentiment.InterpretHelpfulness(score)
}

// Recommend returns ranked book recommendations for the user.
func (c *Client) Recommend(ctx context.Context, userID string, prefs domain.Preferences, limit int) []domain.BookRecommendation {
	return c.recommend.Recommend(ctx, userID, prefs, limit)
}

// SimilarBooks returns books sharing genres with the given book.
func (c *Client) SimilarBooks(ctx context.Context, bookID string, limit int) []domain.SimilarBook {
	return c.recommend.SimilarBooks(ctx, bookID, limit)
}
