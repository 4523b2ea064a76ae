package main

import (
	"fmt"

	"github.com/awalters/stigcat"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	rules, err := deps.Extractor.Extract(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		return err
	}

	if len(rules) == 0 {
		fmt.Fprintln(deps.Stdout, "No rules to export.")
		return nil
	}

	writer := deps.NewWriter(c.Out)
	for _, rule := range rules {
		rule.Source = c.File
		if err := writer.WriteRule(deps.Ctx, rule); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d rules to %s.\n", len(rules), c.Out)
	return nil
}
