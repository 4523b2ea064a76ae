package main

import (
	"fmt"

	"github.com/awalters/stigcat"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	rules, err := deps.Extractor.Extract(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		return err
	}

	if err := deps.Rules.ImportRules(deps.Ctx, c.File, rules); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d rules from %s.\n", len(rules), c.File)
	return nil
}
