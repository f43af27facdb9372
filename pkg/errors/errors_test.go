package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := NewStatus("https://example.com/search", 500)
	assert.Equal(t, "[status] https://example.com/search: unexpected status code: 500", err.Error())
	assert.Equal(t, 500, err.StatusCode)

	wrapped := NewConnection("https://example.com", "connection refused", stderrors.New("dial tcp: refused"))
	assert.Equal(t, "[connection] https://example.com: connection refused - dial tcp: refused", wrapped.Error())
}

func TestUnwrap(t *testing.T) {
	cause := context.Canceled
	err := NewConnection("https://example.com", "request aborted", cause)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, cause, err.Unwrap())
}

func TestIsFetch(t *testing.T) {
	fetchErrors := []error{
		NewTimeout("https://example.com", nil),
		NewConnection("https://example.com", "connection refused", nil),
		NewStatus("https://example.com", 500),
		NewRateLimit("https://example.com", 429),
	}
	for _, err := range fetchErrors {
		assert.True(t, IsFetch(err), "expected fetch error: %v", err)
	}

	assert.False(t, IsFetch(NewIO("out.csv", "failed to create file", nil)))
	assert.False(t, IsFetch(NewValidation("pages", "must be between 1 and 10")))
	assert.False(t, IsFetch(NewParsing("https://example.com", "bad html", nil)))
	assert.False(t, IsFetch(stderrors.New("plain error")))
	assert.False(t, IsFetch(nil))
}

func TestIsFetchThroughWrapping(t *testing.T) {
	err := fmt.Errorf("page 3: %w", NewRateLimit("https://example.com", 429))

	assert.True(t, IsFetch(err))
	assert.True(t, IsRateLimit(err))
}

func TestIsRateLimit(t *testing.T) {
	assert.True(t, IsRateLimit(NewRateLimit("https://example.com", 430)))
	assert.False(t, IsRateLimit(NewStatus("https://example.com", 500)))
	assert.False(t, IsRateLimit(nil))
}

func TestStatusCodeCarried(t *testing.T) {
	err := NewRateLimit("https://example.com", 430)
	assert.Equal(t, 430, err.StatusCode)
	assert.Equal(t, ErrorTypeRateLimit, err.Type)
	assert.False(t, err.Time.IsZero())
}
