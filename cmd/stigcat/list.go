package main

import (
	"fmt"

	"github.com/awalters/stigcat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := stigcat.RuleFilter{Limit: c.Limit}
	if c.Severity != "" {
		filter.Severity = &c.Severity
	}
	if c.Source != "" {
		filter.Source = &c.Source
	}

	rules, err := deps.Rules.FindRules(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		return err
	}

	if len(rules) == 0 {
		fmt.Fprintln(deps.Stdout, "No rules found. Use 'stigcat import' to catalog a benchmark.")
		return nil
	}

	for _, r := range rules {
		fmt.Fprintf(deps.Stdout, "%-12s %-28s %-8s %s\n", r.StigID, r.RuleID, r.Severity, r.Title)
	}

	return nil
}
