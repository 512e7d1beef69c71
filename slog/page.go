package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemark"
)

// Ensure LoggingPageService implements pagemark.PageService.
var _ pagemark.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with structured logging.
// Index-consistency failures are logged at Error level; they indicate a
// broken atomicity contract and must never pass silently.
type LoggingPageService struct {
	next   pagemark.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next pagemark.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// IndexPage delegates to the wrapped service, logging the outcome.
func (s *LoggingPageService) IndexPage(ctx context.Context, page *pagemark.Page, overwrite bool) error {
	begin := time.Now()
	err := s.next.IndexPage(ctx, page, overwrite)
	if err != nil {
		s.logger.Info("index page", "url", page.URL, "overwrite", overwrite, "err", err)
		return err
	}
	s.logger.Info("index page",
		"url", page.URL,
		"id", page.ID,
		"overwrite", overwrite,
		"bytes", len(page.Content),
		"duration", time.Since(begin),
	)
	return nil
}

// FindPageByID delegates to the wrapped service.
func (s *LoggingPageService) FindPageByID(ctx context.Context, id int64) (*pagemark.Page, error) {
	return s.next.FindPageByID(ctx, id)
}

// SearchPages delegates to the wrapped service, logging the result size.
func (s *LoggingPageService) SearchPages(ctx context.Context, term string) ([]*pagemark.Page, error) {
	begin := time.Now()
	pages, err := s.next.SearchPages(ctx, term)
	if err != nil {
		s.logger.Error("search", "term", term, "err", err)
		return nil, err
	}
	s.logger.Info("search",
		"term", term,
		"results", len(pages),
		"duration", time.Since(begin),
	)
	return pages, nil
}

// DeletePage delegates to the wrapped service, logging the outcome.
func (s *LoggingPageService) DeletePage(ctx context.Context, id int64) error {
	if err := s.next.DeletePage(ctx, id); err != nil {
		s.logger.Error("delete page", "id", id, "err", err)
		return err
	}
	s.logger.Info("delete page", "id", id)
	return nil
}

// VerifyIndex delegates to the wrapped service. A failure here is loud.
func (s *LoggingPageService) VerifyIndex(ctx context.Context) error {
	if err := s.next.VerifyIndex(ctx); err != nil {
		s.logger.Error("index consistency violation", "err", err)
		return err
	}
	return nil
}
