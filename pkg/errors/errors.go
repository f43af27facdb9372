package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeTimeout represents request timeout errors
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeConnection represents connection-level errors
	ErrorTypeConnection ErrorType = "connection"
	// ErrorTypeStatus represents non-2xx HTTP status errors
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeRateLimit represents rate limiting errors
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeParsing represents HTML parsing errors
	ErrorTypeParsing ErrorType = "parsing"
	// ErrorTypeIO represents file output errors
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeCache represents cache-related errors
	ErrorTypeCache ErrorType = "cache"
	// ErrorTypePublisher represents publisher-related errors
	ErrorTypePublisher ErrorType = "publisher"
	// ErrorTypeValidation represents validation errors
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeConfiguration represents configuration errors
	ErrorTypeConfiguration ErrorType = "configuration"
)

// ScrapeError represents a scraper-specific error
type ScrapeError struct {
	Type       ErrorType
	URL        string
	Message    string
	StatusCode int
	Err        error
	Time       time.Time
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s - %v", e.Type, e.URL, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.URL, e.Message)
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Err
}

// IsFetch returns true if the error occurred while fetching a page.
// Fetch errors trigger the mock fallback instead of aborting the run.
func (e *ScrapeError) IsFetch() bool {
	switch e.Type {
	case ErrorTypeTimeout, ErrorTypeConnection, ErrorTypeStatus, ErrorTypeRateLimit:
		return true
	default:
		return false
	}
}

// IsFetch reports whether err wraps a fetch-class ScrapeError
func IsFetch(err error) bool {
	var se *ScrapeError
	if stderrors.As(err, &se) {
		return se.IsFetch()
	}
	return false
}

// IsRateLimit reports whether err wraps a rate limit ScrapeError
func IsRateLimit(err error) bool {
	var se *ScrapeError
	if stderrors.As(err, &se) {
		return se.Type == ErrorTypeRateLimit
	}
	return false
}

// New creates a new ScrapeError
func New(errType ErrorType, url, message string, err error) *ScrapeError {
	return &ScrapeError{
		Type:    errType,
		URL:     url,
		Message: message,
		Err:     err,
		Time:    time.Now(),
	}
}

// NewTimeout creates a new timeout error
func NewTimeout(url string, err error) *ScrapeError {
	return New(ErrorTypeTimeout, url, "request timed out", err)
}

// NewConnection creates a new connection error
func NewConnection(url, message string, err error) *ScrapeError {
	return New(ErrorTypeConnection, url, message, err)
}

// NewStatus creates a new HTTP status error
func NewStatus(url string, statusCode int) *ScrapeError {
	e := New(ErrorTypeStatus, url, fmt.Sprintf("unexpected status code: %d", statusCode), nil)
	e.StatusCode = statusCode
	return e
}

// NewRateLimit creates a new rate limit error
func NewRateLimit(url string, statusCode int) *ScrapeError {
	e := New(ErrorTypeRateLimit, url, "rate limited", nil)
	e.StatusCode = statusCode
	return e
}

// NewParsing creates a new parsing error
func NewParsing(url, message string, err error) *ScrapeError {
	return New(ErrorTypeParsing, url, message, err)
}

// NewIO creates a new file output error
func NewIO(path, message string, err error) *ScrapeError {
	return New(ErrorTypeIO, path, message, err)
}

// NewCache creates a new cache error
func NewCache(message string, err error) *ScrapeError {
	return New(ErrorTypeCache, "", message, err)
}

// NewPublisher creates a new publisher error
func NewPublisher(message string, err error) *ScrapeError {
	return New(ErrorTypePublisher, "", message, err)
}

// NewValidation creates a new validation error
func NewValidation(field, message string) *ScrapeError {
	return New(ErrorTypeValidation, field, message, nil)
}

// NewConfiguration creates a new configuration error
func NewConfiguration(message string, err error) *ScrapeError {
	return New(ErrorTypeConfiguration, "", message, err)
}
