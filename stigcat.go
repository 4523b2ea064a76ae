// Package stigcat extracts compliance-rule records from DISA STIG
// documents in the XCCDF XML format and maintains a local catalog of
// them. It parses a benchmark document into an ordered collection of
// rules, each carrying identifiers, severity, description, the manual
// check procedure, and remediation text.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., etree/,
// sqlite/).
package stigcat
