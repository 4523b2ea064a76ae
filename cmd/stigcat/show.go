package main

import (
	"fmt"

	"github.com/awalters/stigcat"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	rule, err := deps.Rules.FindRuleByID(deps.Ctx, c.Rule)
	if err != nil {
		if stigcat.ErrorCode(err) == stigcat.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: rule %q not found. Use 'stigcat list' to see cataloged rules.\n", c.Rule)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", stigcat.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "STIG ID:  %s\n", rule.StigID)
	fmt.Fprintf(deps.Stdout, "Rule ID:  %s\n", rule.RuleID)
	fmt.Fprintf(deps.Stdout, "Severity: %s\n", rule.Severity)
	fmt.Fprintf(deps.Stdout, "Source:   %s\n", rule.Source)
	fmt.Fprintf(deps.Stdout, "Title:    %s\n", rule.Title)
	fmt.Fprintf(deps.Stdout, "\nDiscussion:\n%s\n", rule.Description)
	fmt.Fprintf(deps.Stdout, "\nCheck:\n%s\n", rule.CheckContent)
	fmt.Fprintf(deps.Stdout, "\nFix:\n%s\n", rule.FixText)

	return nil
}
