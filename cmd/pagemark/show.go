package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.FindPageByID(deps.Ctx, c.ID)
	if err != nil {
		if pagemark.ErrorCode(err) == pagemark.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no such entry: %d. Use 'pagemark search' to list entries.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "#%d  %s  %s\n", page.ID, page.URL, page.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, page.Content)

	return nil
}
