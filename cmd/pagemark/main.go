package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemark"
	"github.com/fwojciec/pagemark/goquery"
	pmhttp "github.com/fwojciec/pagemark/http"
	"github.com/fwojciec/pagemark/ingest"
	pmslog "github.com/fwojciec/pagemark/slog"
	"github.com/fwojciec/pagemark/sqlite"
	"github.com/fwojciec/pagemark/trafilatura"
	"github.com/fwojciec/pagemark/yaml"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	PageService pagemark.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemark"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemark --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGEMARK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire the page service into dependencies
	m.PageService = pmslog.NewLoggingPageService(sqlite.NewPageService(m.DB), logger)
	deps.DB = m.DB
	deps.Pages = m.PageService

	// Wire the capture pipeline for commands that fetch pages
	if cmd == "add" || cmd == "serve" {
		fetcher := pmslog.NewLoggingFetcher(pmhttp.NewFetcher(), logger)
		defer fetcher.Close()

		var extractor pagemark.Extractor = goquery.NewExtractor()
		if cmd == "add" && cli.Add.Article {
			extractor = trafilatura.NewExtractor()
		}

		concurrency := cli.Add.Concurrency
		rps := cli.Add.RPS
		if cmd == "serve" {
			concurrency = 1
			rps = 1
		}

		deps.Ingester = &ingest.Ingester{
			Fetcher:     fetcher,
			Extractor:   extractor,
			Pages:       m.PageService,
			RateLimiter: ingest.NewDomainLimiter(rps),
			Concurrency: concurrency,
		}
	}

	if cmd == "serve" && cli.Serve.Translations != "" {
		t, err := yaml.LoadTranslations(cli.Serve.Translations)
		if err != nil {
			return fmt.Errorf("failed to load translations: %w", err)
		}
		deps.Translations = t
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEMARK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemark.db"
	}
	dir := filepath.Join(home, ".pagemark")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagemark.db")
}
