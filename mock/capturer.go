package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

var _ pagemark.Capturer = (*Capturer)(nil)

// Capturer is a mock implementation of pagemark.Capturer.
type Capturer struct {
	CaptureFn func(ctx context.Context, url string, overwrite bool) (*pagemark.Page, error)
}

func (c *Capturer) Capture(ctx context.Context, url string, overwrite bool) (*pagemark.Page, error) {
	return c.CaptureFn(ctx, url, overwrite)
}
