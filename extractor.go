package stigcat

import "context"

// Extractor extracts rule records from an XCCDF benchmark document.
type Extractor interface {
	// Extract parses the document at path and returns its rules in
	// document order (group order, then rule order within each group).
	//
	// A missing file yields ENOTFOUND and XML that does not parse yields
	// EMALFORMED; a well-formed document with no rules yields an empty,
	// non-nil slice. On any error the returned slice is nil; partial
	// results are never returned.
	Extract(ctx context.Context, path string) ([]*Rule, error)
}
