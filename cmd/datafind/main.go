package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/locdata/fs"
	"github.com/fwojciec/locdata/gemini"
	locgoquery "github.com/fwojciec/locdata/goquery"
	"github.com/fwojciec/locdata/htmltomarkdown"
	lochttp "github.com/fwojciec/locdata/http"
	"github.com/fwojciec/locdata/locate"
	"github.com/fwojciec/locdata/rod"
	locslog "github.com/fwojciec/locdata/slog"
	"github.com/fwojciec/locdata/sqlite"
	"google.golang.org/genai"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("datafind"),
		kong.Description("Locate the repeated data region of a web page and save a minimal sample"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: stdslog.New(stdslog.NewTextHandler(stderr, nil)),
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// The browser fetcher sees iframe contents and JavaScript-rendered
	// markup; the HTTP fetcher is enough for static pages.
	if cli.Browser {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		deps.Fetcher = fetcher
	} else {
		deps.Fetcher = lochttp.NewFetcher(
			lochttp.WithTimeout(timeout),
			lochttp.WithRateLimit(1.0),
		)
	}
	defer deps.Fetcher.Close()

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: set GEMINI_API_KEY")
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	finder := locate.NewFinder(
		gemini.NewOracle(client),
		locgoquery.NewSnapshotter(),
		fs.NewStore(cli.Out),
		locate.NewLocator(cli.Seed),
	)
	deps.Finder = locslog.NewLoggingFinder(finder, deps.Logger)

	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		deps.Regions = sqlite.NewRegionService(db)
	}

	if cli.Preview {
		deps.Converter = htmltomarkdown.NewConverter()
	}

	cmd := &LocateCmd{
		URL:      cli.URL,
		Query:    cli.Query,
		Name:     cli.Name,
		Attempts: cli.Attempts,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Name     string        `short:"n" default:"data0" help:"Name for the saved sample"`
	Out      string        `short:"o" default:"." help:"Directory for saved samples"`
	DB       string        `help:"SQLite database path for recording located regions"`
	Attempts int           `short:"a" default:"3" help:"Maximum location attempts"`
	Browser  bool          `short:"b" help:"Fetch with a headless browser (needed for iframes and JS)"`
	Preview  bool          `short:"p" help:"Print the located sample as markdown"`
	Seed     int64         `default:"1" help:"Random seed for anchor pair sampling"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	URL      string        `arg:"" required:"" help:"Page URL to search"`
	Query    string        `arg:"" required:"" help:"Description of the data to locate"`
}
