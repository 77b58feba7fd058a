package main

import (
	"context"
	"io"

	"readflow"
	"readflow/pipeline"
)

// Dependencies holds the services command Run methods need.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Resolver readflow.ConfigResolver
	Pipeline *pipeline.Pipeline
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	RulesDir string `help:"Directory containing rule files. Defaults to READFLOW_RULES_DIR or the current directory." type:"existingdir"`
	Debug    bool   `help:"Enable verbose logging."`

	Extract ExtractCmd `cmd:"" help:"Extract article content from a URL."`
	Rules   RulesCmd   `cmd:"" help:"Resolve and print the merged site config for a host."`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"URL to extract."`
}

// RulesCmd is the "rules" subcommand.
type RulesCmd struct {
	Host string `arg:"" help:"Hostname to resolve rules for."`
}
