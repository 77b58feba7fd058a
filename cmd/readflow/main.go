// Command readflow extracts clean article content from a URL using
// per-host rule files plus heuristic fallback.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"readflow"
	"readflow/config"
	"readflow/extractor"
	"readflow/htmltomarkdown"
	"readflow/http"
	"readflow/mime"
	"readflow/pipeline"
	"readflow/postprocess"
	"readflow/readability"
	"readflow/trafilatura"
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
	RulesDir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{RulesDir: defaultRulesDir()}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{Ctx: ctx, Stdout: stdout, Stderr: stderr}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readflow"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readflow --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	rulesDir := m.RulesDir
	if cli.RulesDir != "" {
		rulesDir = cli.RulesDir
	}

	logLevel := slog.LevelWarn
	if cli.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg := readflowConfig(cli.Debug)

	store, err := config.NewFileStore(rulesDir)
	if err != nil {
		return fmt.Errorf("failed to open rules directory %q: %w", rulesDir, err)
	}
	baseResolver := config.New(store, nil, config.WithDisableWildcardMatch(cfg.ConfigBuilder.DisableWildcardMatch))
	resolver := config.NewLoggingResolver(baseResolver, logger)

	deps.Resolver = resolver
	deps.Pipeline = newPipeline(resolver, logger, cfg)

	return kongCtx.Run(deps)
}

func newPipeline(resolver *config.LoggingResolver, logger *slog.Logger, cfg *readflow.Config) *pipeline.Pipeline {
	fetcher := http.NewFetcher(http.WithTimeout(cfg.HTTPClient.Timeout))
	dispatcher := mime.New(cfg.ContentTypeExc)
	adapter := readability.NewAdapter()
	detector := trafilatura.NewDetector()
	ext := extractor.New(resolver, adapter, detector,
		extractor.WithLogger(logger),
		extractor.WithLogXPathWarnings(cfg.Extractor.LogXPathWarnings),
	)
	post := postprocess.New(htmltomarkdown.NewConverter())

	return pipeline.New(resolver, fetcher, dispatcher, ext, post, cfg, pipeline.WithLogger(logger))
}

func defaultRulesDir() string {
	if dir := os.Getenv("READFLOW_RULES_DIR"); dir != "" {
		return dir
	}
	return "."
}

func readflowConfig(debug bool) *readflow.Config {
	return readflow.NewConfig(readflow.WithDebug(debug))
}
