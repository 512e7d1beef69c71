package pagemark

import "context"

// Capturer runs the full capture pipeline for a single URL: fetch the page,
// extract canonical content and index it. No store mutation happens unless
// the whole pipeline succeeds.
type Capturer interface {
	Capture(ctx context.Context, url string, overwrite bool) (*Page, error)
}

// DomainLimiter throttles outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context, domain string) error
}
