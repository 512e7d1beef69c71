package pagemark

import (
	"context"
	"time"
)

// Page represents a captured web page reduced to canonical searchable text.
type Page struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageService manages the page store and its search index as a single
// logical unit: every stored page has exactly one index entry and both are
// always mutated in the same transaction.
type PageService interface {
	// IndexPage inserts the page or, when a page with the same URL already
	// exists, updates it in place. Without overwrite an existing URL
	// returns ECONFLICT so the caller can ask for confirmation. On success
	// the page's ID, ContentHash and CreatedAt are populated; CreatedAt is
	// refreshed on every update (last indexed, not first seen).
	IndexPage(ctx context.Context, page *Page, overwrite bool) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id int64) (*Page, error)

	// SearchPages returns pages matching the term, most recently indexed
	// first. An empty term returns all pages. A non-empty term is matched
	// as a case-insensitive token prefix against indexed url and content,
	// unioned with a substring match against the url, deduplicated by id.
	SearchPages(ctx context.Context, term string) ([]*Page, error)

	// DeletePage removes a page and its index entry.
	// Deleting a missing id is a no-op.
	DeletePage(ctx context.Context, id int64) error

	// VerifyIndex checks that the store and the search index agree.
	// Returns EINTERNAL describing any drift. It must never fail as long
	// as all mutations go through IndexPage and DeletePage.
	VerifyIndex(ctx context.Context) error
}
