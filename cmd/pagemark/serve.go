package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	pmhttp "github.com/fwojciec/pagemark/http"
)

// Run executes the serve command. It blocks until the context is canceled,
// then shuts the server down gracefully.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []pmhttp.ServerOption{pmhttp.WithLogger(deps.Logger)}
	if deps.Translations != nil {
		opts = append(opts, pmhttp.WithTranslations(deps.Translations))
	}

	server := &http.Server{
		Addr:    c.Addr,
		Handler: pmhttp.NewServer(deps.Pages, deps.Ingester, opts...),
	}

	errc := make(chan error, 1)
	go func() {
		errc <- server.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
