package main

import (
	"fmt"

	"github.com/fwojciec/pagemark"
)

// Run executes the verify command.
func (c *VerifyCmd) Run(deps *Dependencies) error {
	if err := deps.Pages.VerifyIndex(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemark.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Search index is consistent with the store.")
	return nil
}
