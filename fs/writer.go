// Package fs provides file-based export of extracted STIG rules.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/awalters/stigcat"
)

// RuleToPath converts a rule to a relative markdown file name.
// Example: SV-220719r569187_rule → SV-220719r569187_rule.md
func RuleToPath(rule *stigcat.Rule) string {
	name := rule.RuleID
	if name == "" {
		name = "rule"
	}
	// Rule IDs come straight from the input document; keep them from
	// escaping the export directory.
	name = strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(name)
	return name + ".md"
}

// FormatRule formats a rule as markdown with YAML frontmatter.
func FormatRule(rule *stigcat.Rule) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("stig_id: ")
	b.WriteString(rule.StigID)
	b.WriteString("\nrule_id: ")
	b.WriteString(rule.RuleID)
	b.WriteString("\nseverity: ")
	b.WriteString(rule.Severity)
	if rule.Source != "" {
		b.WriteString("\nsource: ")
		b.WriteString(rule.Source)
	}
	b.WriteString("\n---\n\n# ")
	b.WriteString(rule.Title)
	b.WriteString("\n\n## Discussion\n\n")
	b.WriteString(rule.Description)
	b.WriteString("\n\n## Check\n\n")
	b.WriteString(rule.CheckContent)
	b.WriteString("\n\n## Fix\n\n")
	b.WriteString(rule.FixText)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements stigcat.RuleWriter at compile time.
var _ stigcat.RuleWriter = (*Writer)(nil)

// Writer writes rules as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteRule writes a rule to disk as a markdown file.
func (w *Writer) WriteRule(ctx context.Context, rule *stigcat.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, RuleToPath(rule))

	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(FormatRule(rule)), 0o644)
}
