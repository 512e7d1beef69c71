package mock

import "github.com/fwojciec/pagemark"

var _ pagemark.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemark.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
