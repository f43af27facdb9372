package helpers

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"slices"

	"golang.org/x/net/html/charset"

	"olxcarcovers/logger"
	errs "olxcarcovers/pkg/errors"
)

// FetchPage sends an HTTP GET request with the given browser-like headers,
// converts the response body to UTF-8 (if needed), and returns it as an io.Reader.
// Errors are typed so callers can distinguish timeouts, connection failures,
// rate limiting and other status codes.
func FetchPage(ctx context.Context, client *http.Client, url string, headers map[string]string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.NewConnection(url, "failed to create request", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		var netErr net.Error
		if stderrors.As(err, &netErr) && netErr.Timeout() {
			return nil, errs.NewTimeout(url, err)
		}
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewTimeout(url, err)
		}
		return nil, errs.NewConnection(url, "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	// Check for rate limiting
	if slices.Contains([]int{http.StatusTooManyRequests, 430}, resp.StatusCode) {
		return nil, errs.NewRateLimit(url, resp.StatusCode)
	}

	// Check for other error status codes
	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewStatus(url, resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewConnection(url, "failed to read response body", err)
	}

	if logger.IsDebugEnabled() {
		logger.Debug("fetched %s (%d bytes)", url, len(bodyBytes))
	}

	// Determine the encoding from Content-Type header and body content
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, resp.Header.Get("Content-Type"))

	// If already UTF-8, return as is
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	// Convert to UTF-8 if necessary
	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, errs.NewConnection(url, "failed to read converted UTF-8 body", err)
	}

	return &buf, nil
}
