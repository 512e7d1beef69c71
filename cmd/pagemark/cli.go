package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/ingest"
	"github.com/fwojciec/pagemark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	DB           *sqlite.DB
	Pages        pagemark.PageService
	Ingester     *ingest.Ingester
	Translations pagemark.Translations
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log to stderr"`

	Add    AddCmd    `cmd:"" help:"Fetch pages and add them to the index"`
	Search SearchCmd `cmd:"" help:"Search saved pages"`
	Show   ShowCmd   `cmd:"" help:"Show the full content of a saved page"`
	Delete DeleteCmd `cmd:"" help:"Delete a saved page"`
	Verify VerifyCmd `cmd:"" help:"Check that the search index matches the store"`
	Serve  ServeCmd  `cmd:"" help:"Run the web interface"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs        []string `arg:"" help:"Page URLs to capture"`
	Update      bool     `short:"u" help:"Overwrite pages that are already saved"`
	Article     bool     `short:"a" help:"Extract main article text instead of element labels"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	RPS         float64  `name:"rps" default:"1" help:"Requests per second per domain"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term string `arg:"" optional:"" help:"Search term (empty lists everything)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID int64 `arg:"" help:"Page ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID int64 `arg:"" help:"Page ID"`
}

// VerifyCmd is the "verify" subcommand.
type VerifyCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr         string `default:":8080" help:"Listen address"`
	Translations string `short:"t" help:"Path to a YAML file with UI strings"`
}
