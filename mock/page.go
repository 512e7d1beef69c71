package mock

import (
	"context"

	"github.com/fwojciec/pagemark"
)

var _ pagemark.PageService = (*PageService)(nil)

// PageService is a mock implementation of pagemark.PageService.
type PageService struct {
	IndexPageFn    func(ctx context.Context, page *pagemark.Page, overwrite bool) error
	FindPageByIDFn func(ctx context.Context, id int64) (*pagemark.Page, error)
	SearchPagesFn  func(ctx context.Context, term string) ([]*pagemark.Page, error)
	DeletePageFn   func(ctx context.Context, id int64) error
	VerifyIndexFn  func(ctx context.Context) error
}

func (s *PageService) IndexPage(ctx context.Context, page *pagemark.Page, overwrite bool) error {
	return s.IndexPageFn(ctx, page, overwrite)
}

func (s *PageService) FindPageByID(ctx context.Context, id int64) (*pagemark.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) SearchPages(ctx context.Context, term string) ([]*pagemark.Page, error) {
	return s.SearchPagesFn(ctx, term)
}

func (s *PageService) DeletePage(ctx context.Context, id int64) error {
	return s.DeletePageFn(ctx, id)
}

func (s *PageService) VerifyIndex(ctx context.Context) error {
	return s.VerifyIndexFn(ctx)
}
