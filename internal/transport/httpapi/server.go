package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kitabi-cloud/lisan/internal/domain"
	"github.com/kitabi-cloud/lisan/internal/metrics"
	"github.com/kitabi-cloud/lisan/internal/repository/analysiscache"
	"github.com/kitabi-cloud/lisan/internal/textproc"
	healthuc "github.com/kitabi-cloud/lisan/internal/usecase/health"
	moodc "github.com/kitabi-cloud/lisan/internal/usecase/mood"
	recommenduc "github.com/kitabi-cloud/lisan/internal/usecase/recommend"
	sentimentuc "github.com/kitabi-cloud/lisan/internal/usecase/sentiment"
	summaryuc "github.com/kitabi-cloud/lisan/internal/usecase/summary"
)

// Cache operation names, shared with cache keys and metric labels.
const (
	opMood        = "mood"
	opThemes      = "themes"
	opSentiment   = "sentiment"
	opSummary     = "summary"
	opHelpfulness = "helpfulness"
)

const defaultReviewRating = 3.0

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server exposes the analysis services over HTTP.
type Server struct {
	mood      *moodc.Service
	sentiment *sentimentuc.Service
	summary   *summaryuc.Service
	recommend *recommenduc.Service
	health    *healthuc.Service
	cache     *analysiscache.Cache

	defaultSummaryWords int
	maxTextChars        int

	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. cache may be nil, which disables
// result caching.
func NewServer(
	mood *moodc.Service,
	sentiment *sentimentuc.Service,
	summary *summaryuc.Service,
	recommend *recommenduc.Service,
	health *healthuc.Service,
	cache *analysiscache.Cache,
	defaultSummaryWords int,
	maxTextChars int,
	logger *zap.Logger,
) *Server {
	s := &Server{
		mood:                mood,
		sentiment:           sentiment,
		summary:             summary,
		recommend:           recommend,
		health:              health,
		cache:               cache,
		defaultSummaryWords: defaultSummaryWords,
		maxTextChars:        maxTextChars,
		logger:              logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyText, http.StatusBadRequest),
		sentinelHandler(domain.ErrInvalidRating, http.StatusBadRequest),
		sentinelHandler(domain.ErrUnknownSummaryMode, http.StatusBadRequest),
		sentinelHandler(domain.ErrUserRequired, http.StatusBadRequest),
		sentinelHandler(domain.ErrBookRequired, http.StatusBadRequest),
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/recommend", s.recommendBooks)
	r.Post("/api/similar-books", s.similarBooks)
	r.Post("/api/analyze-sentiment", s.analyzeSentiment)
	r.Post("/api/summarize", s.summarize)
	r.Post("/api/analyze-mood", s.analyzeMood)
	r.Post("/api/extract-themes", s.extractThemes)
	r.Post("/api/rate-review", s.rateReview)
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", s.metricsHandler)
}

// analyzeMood handles POST /api/analyze-mood.
func (s *Server) analyzeMood(w http.ResponseWriter, r *http.Request) {
	var req moodRequest
	if !s.decode(w, r, &req) {
		return
	}

	in := moodc.BookInput{
		Text:        s.truncate(req.Text),
		Title:       req.Title,
		Description: req.Description,
	}
	combined := strings.TrimSpace(in.Title + " " + in.Description + " " + in.Text)
	if combined == "" {
		s.handleDomainError(w, domain.ErrEmptyText)
		return
	}

	start := time.Now()
	analysis, err := analysiscache.Do(r.Context(), s.cache, opMood, combined,
		func(ctx context.Context) (domain.MoodAnalysis, error) {
			return s.mood.AnalyzeMood(ctx, in), nil
		})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.observe(opMood, textproc.DetectLanguage(combined), combined, start)

	writeJSON(w, http.StatusOK, moodResponse{Success: true, MoodAnalysis: analysis})
}

// extractThemes handles POST /api/extract-themes.
func (s *Server) extractThemes(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}

	text := s.truncate(req.Text)
	if strings.TrimSpace(text) == "" {
		s.handleDomainError(w, domain.ErrEmptyText)
		return
	}

	start := time.Now()
	themes, err := analysiscache.Do(r.Context(), s.cache, opThemes, text,
		func(ctx context.Context) ([]domain.ThemeScore, error) {
			return s.mood.ExtractThemes(ctx, text), nil
		})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.observe(opThemes, textproc.DetectLanguage(text), text, start)

	writeJSON(w, http.StatusOK, themesResponse{Success: true, Themes: themes})
}

// analyzeSentiment handles POST /api/analyze-sentiment.
func (s *Server) analyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !s.decode(w, r, &req) {
		return
	}

	text := s.truncate(req.Text)
	if strings.TrimSpace(text) == "" {
		s.handleDomainError(w, domain.ErrEmptyText)
		return
	}

	start := time.Now()
	analysis, err := analysiscache.Do(r.Context(), s.cache, opSentiment, text,
		func(ctx context.Context) (domain.SentimentAnalysis, error) {
			return s.sentiment.Analyze(ctx, text), nil
		})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.observe(opSentiment, textproc.DetectLanguage(text), text, start)

	writeJSON(w, http.StatusOK, sentimentResponse{Success: true, Sentiment: analysis})
}

// summarize handles POST /api/summarize.
func (s *Server) summarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if !s.decode(w, r, &req) {
		return
	}

	text := req.Content
	if strings.TrimSpace(text) == "" {
		text = req.Description
	}
	text = s.truncate(text)
	if strings.TrimSpace(text) == "" {
		s.handleDomainError(w, domain.ErrEmptyText)
		return
	}

	maxWords := req.MaxLength
	if maxWords <= 0 {
		maxWords = s.defaultSummaryWords
	}

	mode := domain.SummaryMode(req.Mode)
	switch mode {
	case "":
		mode = domain.SummaryExtractive
	case domain.SummaryExtractive, domain.SummaryAbstractive:
	default:
		s.handleDomainError(w, domain.ErrUnknownSummaryMode)
		return
	}

	payload := string(mode) + ":" + strconv.Itoa(maxWords) + ":" + text

	start := time.Now()
	sum, err := analysiscache.Do(r.Context(), s.cache, opSummary, payload,
		func(ctx context.Context) (domain.Summary, error) {
			return s.summary.Summarize(ctx, text, maxWords, mode), nil
		})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	s.observe(opSummary, sum.Language, text, start)

	writeJSON(w, http.StatusOK, summarizeResponse{
		Success:        true,
		Summary:        sum,
		OriginalLength: sum.Stats.OriginalWords,
		SummaryLength:  sum.Stats.SummaryWords,
	})
}

// rateReview handles POST /api/rate-review.
func (s *Server) rateReview(w http.ResponseWriter, r *http.Request) {
	var req rateReviewRequest
	if !s.decode(w, r, &req) {
		return
	}

	text := s.truncate(req.ReviewText)
	if strings.TrimSpace(text) == "" {
		s.handleDomainError(w, domain.ErrEmptyText)
		return
	}

	rating := defaultReviewRating
	if req.Rating != nil {
		rating = *req.Rating
	}
	if rating < 1 || rating > 5 {
		s.handleDomainError(w, domain.ErrInvalidRating)
		return
	}

	start := time.Now()
	score := s.sentiment.RateHelpfulness(r.Context(), text, rating)
	s.observe(opHelpfulness, textproc.DetectLanguage(text), text, start)

	writeJSON(w, http.StatusOK, rateReviewResponse{
		Success:          true,
		HelpfulnessScore: score,
		Interpretation:   s.sentiment.InterpretHelpfulness(score),
	})
}

// recommendBooks handles POST /api/recommend.
func (s *Server) recommendBooks(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if !s.decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		s.handleDomainError(w, domain.ErrUserRequired)
		return
	}

	recs := s.recommend.Recommend(r.Context(), req.UserID, req.Preferences, req.Limit)

	writeJSON(w, http.StatusOK, recommendResponse{
		Success:         true,
		Recommendations: recs,
		Count:           len(recs),
	})
}

// similarBooks handles POST /api/similar-books.
func (s *Server) similarBooks(w http.ResponseWriter, r *http.Request) {
	var req similarBooksRequest
	if !s.decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.BookID) == "" {
		s.handleDomainError(w, domain.ErrBookRequired)
		return
	}

	books := s.recommend.SimilarBooks(r.Context(), req.BookID, req.Limit)

	writeJSON(w, http.StatusOK, similarBooksResponse{
		Success:      true,
		SimilarBooks: books,
		Count:        len(books),
	})
}

// healthCheck handles GET /health.
//
// The cache backend is optional, so a degraded report still answers 200:
// every analysis endpoint works without it.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	writeJSON(w, http.StatusOK, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// metricsHandler handles GET /metrics.
func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decode parses the JSON request body into v, answering 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// truncate caps text at the configured rune limit. Zero disables the cap.
func (s *Server) truncate(text string) string {
	if s.maxTextChars <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= s.maxTextChars {
		return text
	}
	return string(runes[:s.maxTextChars])
}

// observe records per-operation analysis metrics.
func (s *Server) observe(op string, lang domain.Language, text string, start time.Time) {
	metrics.AnalysisDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.AnalysisTextWords.WithLabelValues(op).Observe(float64(textproc.WordCount(text)))
	metrics.AnalysisRequestsTotal.WithLabelValues(op, string(lang), "ok").Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// safeDomainMessage returns a sentinel error message for the client without
// exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyText,
		domain.ErrInvalidRating,
		domain.ErrUnknownSummaryMode,
		domain.ErrUserRequired,
		domain.ErrBookRequired,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, safeDomainMessage(err))
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}
