package lisan

import (
	"time"

	"go.uber.org/zap"
)

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	cacheTTL       time.Duration
	wordsPerMinute int
	logger         *zap.Logger
}

// Option configures a Client.
type Option func(*clientConfig)

// WithRedis enables result caching in the given Redis instance.
func WithRedis(addrs ...string) Option {
	return func(c *clientConfig) { c.addrs = addrs }
}

// WithAuth sets Redis credentials.
func WithAuth(username, password string) Option {
	return func(c *clientConfig) {
		c.username = username
		c.password = password
	}
}

// WithDB selects the Redis logical database.
func WithDB(db int) Option {
	return func(c *clientConfig) { c.db = db }
}

// WithCacheTTL overrides the result cache TTL (default one hour).
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *clientConfig) { c.cacheTTL = ttl }
}

// WithWordsPerMinute overrides the reading-speed assumption used for
// reading-time estimates.
func WithWordsPerMinute(wpm int) Option {
	return func(c *clientConfig) { c.wordsPerMinute = wpm }
}

// WithLogger sets the logger for cache diagnostics (default no-op).
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) { c.logger = logger }
}
