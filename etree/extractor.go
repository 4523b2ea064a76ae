// Package etree provides an XCCDF benchmark extractor built on
// github.com/beevik/etree.
package etree

import (
	"context"
	"os"
	"strings"

	"github.com/awalters/stigcat"
	"github.com/beevik/etree"
)

// legacyIdentSystems are the system URIs of ident elements that carry
// the historical V-number cross-reference for a rule. Published DISA
// benchmarks use the short form; older tooling expects the
// findingformat variant.
var legacyIdentSystems = map[string]bool{
	"http://cyber.mil/legacy":                true,
	"http://cyber.mil/legacy/findingformat/": true,
}

// Ensure Extractor implements stigcat.Extractor at compile time.
var _ stigcat.Extractor = (*Extractor)(nil)

// Extractor extracts rules from XCCDF 1.1/1.2 benchmark documents.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the benchmark at path and returns its rules in
// document order. See stigcat.Extractor for the error contract.
func (e *Extractor) Extract(ctx context.Context, path string) ([]*stigcat.Rule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		return nil, stigcat.Errorf(stigcat.ENOTFOUND, "benchmark not found at %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, stigcat.Errorf(stigcat.EMALFORMED, "parsing %s: %s", path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, stigcat.Errorf(stigcat.EMALFORMED, "no root element in %s", path)
	}

	// STIG benchmarks declare the XCCDF namespace (1.1 or 1.2) either as
	// the default namespace or under a prefix. Binding the root's
	// resolved URI once and matching every lookup against it covers both
	// declarations with a single code path.
	ns := root.NamespaceURI()

	rules := []*stigcat.Rule{}
	walk(root, func(el *etree.Element) {
		if !matches(el, ns, "Group") {
			return
		}
		// Only immediate Rule children; descendants belong to nested
		// groups visited in their own right.
		for _, child := range el.ChildElements() {
			if matches(child, ns, "Rule") {
				rules = append(rules, extractRule(child, ns))
			}
		}
	})

	return rules, nil
}

// extractRule assembles a rule record from a Rule element. Every field
// is independently optional; absent elements yield the sentinel or an
// empty value, never an error.
func extractRule(rule *etree.Element, ns string) *stigcat.Rule {
	r := &stigcat.Rule{
		RuleID:       rule.SelectAttrValue("id", ""),
		Severity:     rule.SelectAttrValue("severity", ""),
		StigID:       stigcat.Sentinel,
		Title:        stigcat.Sentinel,
		CheckContent: stigcat.Sentinel,
		FixText:      stigcat.Sentinel,
	}

	if title := childElement(rule, ns, "title"); title != nil {
		r.Title = strings.TrimSpace(title.Text())
	}

	if desc := childElement(rule, ns, "description"); desc != nil {
		r.Description = descriptionText(desc, ns)
	}

	// The manual check procedure nests one level below the check element.
	if check := childElement(rule, ns, "check"); check != nil {
		if content := childElement(check, ns, "check-content"); content != nil {
			if text := strings.TrimSpace(content.Text()); text != "" {
				r.CheckContent = text
			}
		}
	}

	if fix := childElement(rule, ns, "fix"); fix != nil {
		if text := strings.TrimSpace(fix.Text()); text != "" {
			r.FixText = text
		}
	}

	if id := legacyIdent(rule, ns); id != "" {
		r.StigID = id
	}

	return r
}

// descriptionText joins the trimmed text of immediate paragraph children
// with newlines, falling back to the description element's direct text
// when no paragraph yields anything.
func descriptionText(desc *etree.Element, ns string) string {
	var parts []string
	for _, el := range desc.ChildElements() {
		if !matches(el, ns, "p") {
			continue
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}
	return strings.TrimSpace(desc.Text())
}

// legacyIdent scans all ident elements under rule and returns the
// trimmed text of the first one whose system attribute is a legacy
// finding-format URI, or "" when none matches.
func legacyIdent(rule *etree.Element, ns string) string {
	var found string
	walk(rule, func(el *etree.Element) {
		if found != "" || !matches(el, ns, "ident") {
			return
		}
		if !legacyIdentSystems[el.SelectAttrValue("system", "")] {
			return
		}
		if text := strings.TrimSpace(el.Text()); text != "" {
			found = text
		}
	})
	return found
}

// walk visits every descendant element of el in document order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	for _, child := range el.ChildElements() {
		fn(child)
		walk(child, fn)
	}
}

// matches reports whether el has the given tag in the given namespace.
func matches(el *etree.Element, ns, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == ns
}

// childElement returns the first immediate child of el with the given
// tag in the given namespace, or nil.
func childElement(el *etree.Element, ns, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if matches(child, ns, tag) {
			return child
		}
	}
	return nil
}
