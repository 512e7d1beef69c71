// Package ingest orchestrates the capture pipeline: fetch a page, extract
// its canonical content and index it.
package ingest

import (
	"context"
	"net/url"
	"sync/atomic"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/bloom"
	"golang.org/x/sync/errgroup"
)

var _ pagemark.Capturer = (*Ingester)(nil)

// Ingester coordinates fetching, extraction and indexing.
type Ingester struct {
	Fetcher     pagemark.Fetcher
	Extractor   pagemark.Extractor
	Pages       pagemark.PageService
	RateLimiter pagemark.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a batch capture.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch capture.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Page      *pagemark.Page
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting capture progress.
type ProgressFunc func(event ProgressEvent)

// Capture fetches the URL, extracts canonical content and indexes it.
// Fetch failures carry EUNAVAILABLE, extraction failures EINVALID and an
// existing URL without overwrite ECONFLICT. On any failure the store is
// left untouched.
func (i *Ingester) Capture(ctx context.Context, pageURL string, overwrite bool) (*pagemark.Page, error) {
	if i.RateLimiter != nil {
		if u, err := url.Parse(pageURL); err == nil {
			if err := i.RateLimiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
	}

	html, err := i.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		if pagemark.ErrorCode(err) == pagemark.EUNAVAILABLE {
			return nil, err
		}
		return nil, pagemark.Errorf(pagemark.EUNAVAILABLE, "fetch %s: %v", pageURL, err)
	}

	content, err := i.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	page := &pagemark.Page{URL: pageURL, Content: content}
	if err := i.Pages.IndexPage(ctx, page, overwrite); err != nil {
		return nil, err
	}

	return page, nil
}

// CaptureAll captures a batch of operator-supplied URLs with bounded
// concurrency. Duplicate URLs within the batch are captured once. Per-URL
// failures are reported through progress and counted in the result; they
// do not abort the batch.
func (i *Ingester) CaptureAll(ctx context.Context, urls []string, overwrite bool, progress ProgressFunc) (*Result, error) {
	// Deduplicate before fanning out.
	seen := bloom.NewFilter(uint(len(urls))+1, 0.001)
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if seen.Test(u) {
			continue
		}
		seen.Add(u)
		unique = append(unique, u)
	}

	notify := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	total := len(unique)
	notify(ProgressEvent{Type: ProgressStarted, Total: total})

	concurrency := i.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	var saved, skipped, failed atomic.Int64
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, u := range unique {
		g.Go(func() error {
			page, err := i.Capture(gctx, u, overwrite)
			done := int(completed.Add(1))
			switch {
			case err == nil:
				saved.Add(1)
				notify(ProgressEvent{Type: ProgressCompleted, Completed: done, Total: total, URL: u, Page: page})
			case pagemark.ErrorCode(err) == pagemark.ECONFLICT:
				skipped.Add(1)
				notify(ProgressEvent{Type: ProgressSkipped, Completed: done, Total: total, URL: u, Error: err})
			default:
				failed.Add(1)
				notify(ProgressEvent{Type: ProgressFailed, Completed: done, Total: total, URL: u, Error: err})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &Result{
		Saved:   int(saved.Load()),
		Skipped: int(skipped.Load()),
		Failed:  int(failed.Load()),
	}, nil
}
