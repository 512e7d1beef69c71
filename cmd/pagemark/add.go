package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/ingest"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	progress := func(event ingest.ProgressEvent) {
		switch event.Type {
		case ingest.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Capturing %d pages\n", event.Total)
		case ingest.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  saved %s (#%d)\n", event.URL, event.Page.ID)
		case ingest.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  skip %s: already saved (use --update to overwrite)\n", event.URL)
		case ingest.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  fail %s: %s\n", event.URL, pagemark.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Ingester.CaptureAll(deps.Ctx, c.URLs, c.Update, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d, skipped %d, failed %d\n", result.Saved, result.Skipped, result.Failed)

	if result.Failed > 0 {
		return pagemark.Errorf(pagemark.EUNAVAILABLE, "%d pages failed", result.Failed)
	}
	return nil
}
