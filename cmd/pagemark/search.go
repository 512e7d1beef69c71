package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.SearchPages(deps.Ctx, c.Term)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'pagemark add' to capture a page.")
		return nil
	}

	for _, p := range pages {
		entry := pagemark.NewEntry(p)
		snippet := pagemark.Highlight(entry.Snippet, c.Term, "[", "]")
		fmt.Fprintf(deps.Stdout, "#%d  %s  %s\n", entry.ID, pagemark.Highlight(entry.URL, c.Term, "[", "]"), entry.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Fprintf(deps.Stdout, "    %s\n", snippet)
		if entry.Truncated {
			fmt.Fprintf(deps.Stdout, "    (truncated, run 'pagemark show %d' for the full text)\n", entry.ID)
		}
	}

	return nil
}
