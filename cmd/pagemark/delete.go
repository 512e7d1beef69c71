package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the delete command. Deleting an id that does not exist is
// not an error; the end state is the same.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Pages.DeletePage(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted entry %d\n", c.ID)
	return nil
}
