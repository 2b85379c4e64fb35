package domain

import "errors"

var (
	// ErrEmptyText signals missing or whitespace-only input text.
	ErrEmptyText = errors.New("empty text")
	// ErrInvalidRating signals a declared rating outside the 1-5 range.
	ErrInvalidRating = errors.New("invalid rating")
	// ErrUnknownSummaryMode signals an unsupported summary mode.
	ErrUnknownSummaryMode = errors.New("unknown summary mode")
	// ErrUserRequired signals a recommendation request without a user id.
	ErrUserRequired = errors.New("user id required")
	// ErrBookRequired signals a similar-books request without a book id.
	ErrBookRequired = errors.New("book id required")
)
