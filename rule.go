package stigcat

import (
	"context"
	"time"
)

// Sentinel is the value recorded for optional rule fields that are
// absent from the source document. It matches the convention used in
// published STIG tooling, so "N/A" in output means "not present in the
// benchmark", not "extraction failed".
const Sentinel = "N/A"

// Severity levels as they appear in XCCDF rule elements. The extractor
// passes severity through verbatim and does not validate against this
// set; the constants exist for callers that filter.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Rule represents one checkable security requirement extracted from an
// XCCDF benchmark.
type Rule struct {
	// StigID is the legacy finding-format identifier (e.g., "V-220719"),
	// or Sentinel when the rule carries none.
	StigID string `json:"stigId"`

	// RuleID is the rule element's id attribute (e.g., "SV-220719r1_rule").
	// Uniqueness is not enforced; duplicates pass through unchanged.
	RuleID string `json:"ruleId"`

	// Severity is the rule element's severity attribute, verbatim.
	Severity string `json:"severity"`

	// Title is the rule's title, or Sentinel when missing.
	Title string `json:"title"`

	// Description is the vulnerability discussion, or "" when missing.
	Description string `json:"description"`

	// CheckContent is the manual compliance-check procedure, or Sentinel.
	CheckContent string `json:"checkContent"`

	// FixText is the remediation guidance, or Sentinel.
	FixText string `json:"fixText"`

	// Catalog fields, populated on import. The extractor leaves them zero.
	ID          string    `json:"id,omitempty"`
	Source      string    `json:"source,omitempty"`
	ContentHash string    `json:"contentHash,omitempty"`
	Position    int       `json:"position,omitempty"`
	ImportedAt  time.Time `json:"importedAt"`
}

// Validate returns an error if the rule cannot be imported into the
// catalog.
func (r *Rule) Validate() error {
	if r.RuleID == "" {
		return Errorf(EINVALID, "rule ID required")
	}
	if r.Source == "" {
		return Errorf(EINVALID, "rule source required")
	}
	return nil
}

// RuleService represents a service for managing the rule catalog.
type RuleService interface {
	// ImportRules stores the extracted rules for a source document,
	// replacing any previous import of the same source. Position follows
	// slice order.
	ImportRules(ctx context.Context, source string, rules []*Rule) error

	// FindRuleByID retrieves a rule by catalog ID or XCCDF rule ID.
	// Returns ENOTFOUND if no rule matches.
	FindRuleByID(ctx context.Context, id string) (*Rule, error)

	// FindRules retrieves rules matching the filter, ordered by source
	// then document position.
	FindRules(ctx context.Context, filter RuleFilter) ([]*Rule, error)

	// DeleteRulesBySource removes all rules imported from a source.
	DeleteRulesBySource(ctx context.Context, source string) error
}

// RuleFilter represents a filter for FindRules.
type RuleFilter struct {
	ID       *string `json:"id"`
	RuleID   *string `json:"ruleId"`
	StigID   *string `json:"stigId"`
	Severity *string `json:"severity"`
	Source   *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RuleWriter writes rules to storage outside the catalog (e.g., as
// markdown files).
type RuleWriter interface {
	WriteRule(ctx context.Context, rule *Rule) error
}
