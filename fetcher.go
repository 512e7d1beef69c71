package pagemark

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the document body for the URL. Fetch failures
	// (network errors, non-success statuses) carry EUNAVAILABLE.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
