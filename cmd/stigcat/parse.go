package main

import (
	"fmt"

	"github.com/awalters/stigcat"
)

// Run executes the parse command. Extraction failures are reported and
// recovered; the command never fails the process over a bad document.
func (c *ParseCmd) Run(deps *Dependencies) error {
	rules, err := deps.Extractor.Extract(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "No rules parsed or an error occurred during parsing.")
		return nil
	}

	if len(rules) == 0 {
		fmt.Fprintln(deps.Stderr, "No rules parsed or an error occurred during parsing.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Parsed %d rules from %s.\n\n", len(rules), c.File)

	limit := c.Limit
	if limit < 0 {
		limit = 0
	}
	if limit > len(rules) {
		limit = len(rules)
	}
	for i, rule := range rules[:limit] {
		fmt.Fprintf(deps.Stdout, "--- Rule %d ---\n", i+1)
		fmt.Fprintf(deps.Stdout, "STIG ID:  %s\n", rule.StigID)
		fmt.Fprintf(deps.Stdout, "Rule ID:  %s\n", rule.RuleID)
		fmt.Fprintf(deps.Stdout, "Severity: %s\n", rule.Severity)
		fmt.Fprintf(deps.Stdout, "Title:    %s\n", rule.Title)
	}

	return nil
}
