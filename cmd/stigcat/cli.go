package main

import (
	"context"
	"io"

	"github.com/awalters/stigcat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor stigcat.Extractor
	Rules     stigcat.RuleService
	NewWriter func(dir string) stigcat.RuleWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Parse  ParseCmd  `cmd:"" help:"Parse a benchmark and preview its rules"`
	Import ImportCmd `cmd:"" help:"Parse a benchmark into the local catalog"`
	List   ListCmd   `cmd:"" help:"List cataloged rules"`
	Show   ShowCmd   `cmd:"" help:"Show a single rule in full"`
	Export ExportCmd `cmd:"" help:"Export a benchmark's rules as markdown files"`

	Debug bool `help:"Enable debug logging"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	File  string `arg:"" help:"Path to an XCCDF benchmark XML file"`
	Limit int    `short:"n" default:"5" help:"Number of rules to preview"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File string `arg:"" help:"Path to an XCCDF benchmark XML file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Severity string `short:"s" help:"Filter by severity (high, medium, low)"`
	Source   string `help:"Filter by source document"`
	Limit    int    `short:"l" help:"Maximum number of rules to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Rule string `arg:"" help:"Catalog ID or XCCDF rule ID"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	File string `arg:"" help:"Path to an XCCDF benchmark XML file"`
	Out  string `short:"o" default:"stig-export" help:"Output directory"`
}
