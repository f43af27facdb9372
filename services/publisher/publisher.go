package publisher

// Publisher pushes scraped listing batches to a downstream sink. The CLI
// output does not depend on it; publish failures are logged and ignored.
type Publisher interface {
	// Publish publishes one listing batch to the stream
	Publish(message []byte) error

	// Trim cuts the stream to the configured maximum length
	Trim() error

	// Close closes the publisher connection
	Close() error
}
