package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/mtoscano/cinelist"
	cinecolly "github.com/mtoscano/cinelist/colly"
	"github.com/mtoscano/cinelist/excel"
	"github.com/mtoscano/cinelist/goquery"
	cinehttp "github.com/mtoscano/cinelist/http"
	"github.com/mtoscano/cinelist/scrape"
	cineslog "github.com/mtoscano/cinelist/slog"
	"github.com/mtoscano/cinelist/sqlite"
)

func main() {
	ctx := context.Background()

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

	// SQLite database used by the run history service.
	DB *sqlite.DB

	// Run history service, exposed for end-to-end testing.
	Runs cinelist.RunService
}

// NewMain returns a new instance of Main with defaults. Environment
// overrides may come from a .env file in the working directory.
func NewMain() *Main {
	_ = godotenv.Load()
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cinelist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cinelist --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the run history database.
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CINELIST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.Runs = sqlite.NewRunService(m.DB)
	deps.Runs = m.Runs
	deps.Exporter = excel.NewExporter()

	// Wire the scraper for the commands that fetch.
	if cmd == "scrape" || cmd == "serve" {
		engine, timeout := cli.Serve.Engine, cli.Serve.Timeout
		if cmd == "scrape" {
			engine, timeout = cli.Scrape.Engine, cli.Scrape.Timeout
		}

		fetcher := newFetcher(engine, timeout)
		defer fetcher.Close()

		var extractor cinelist.ListExtractor = goquery.NewExtractor()

		if cli.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			fetcher = cineslog.NewLoggingFetcher(fetcher, logger)
			extractor = cineslog.NewLoggingExtractor(extractor, logger)
		}

		runs := m.Runs
		if cmd == "scrape" && cli.Scrape.NoHistory {
			runs = nil
		}

		deps.Scraper = &scrape.Scraper{
			Fetcher:   fetcher,
			Extractor: extractor,
			Runs:      runs,
			Limiter:   scrape.NewDomainLimiter(1.0),
		}
	}

	return kongCtx.Run(deps)
}

// newFetcher builds the configured fetch engine.
func newFetcher(engine string, timeout time.Duration) cinelist.Fetcher {
	ua := os.Getenv("CINELIST_USER_AGENT")

	if engine == "colly" {
		opts := []cinecolly.Option{cinecolly.WithTimeout(timeout)}
		if ua != "" {
			opts = append(opts, cinecolly.WithUserAgent(ua))
		}
		return cinecolly.NewFetcher(opts...)
	}

	opts := []cinehttp.Option{cinehttp.WithTimeout(timeout)}
	if ua != "" {
		opts = append(opts, cinehttp.WithUserAgent(ua))
	}
	return cinehttp.NewFetcher(opts...)
}

func defaultDBPath() string {
	if path := os.Getenv("CINELIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cinelist.db"
	}
	dir := filepath.Join(home, ".cinelist")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cinelist.db")
}
