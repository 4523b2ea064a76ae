package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/awalters/stigcat"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ stigcat.RuleService = (*RuleService)(nil)

// RuleService implements stigcat.RuleService using SQLite.
type RuleService struct {
	db *DB
}

// NewRuleService creates a new RuleService.
func NewRuleService(db *DB) *RuleService {
	return &RuleService{db: db}
}

// hashRule computes xxHash over a rule's extracted text fields and
// returns a hex string. Reimporting an unchanged benchmark produces
// identical hashes, which makes drift between revisions visible.
func hashRule(rule *stigcat.Rule) string {
	h := xxhash.New()
	for _, field := range []string{
		rule.StigID, rule.RuleID, rule.Severity, rule.Title,
		rule.Description, rule.CheckContent, rule.FixText,
	} {
		h.WriteString(field)
		h.WriteString("\x00")
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// ImportRules stores the extracted rules for a source document,
// replacing any previous import of the same source.
func (s *RuleService) ImportRules(ctx context.Context, source string, rules []*stigcat.Rule) error {
	if source == "" {
		return stigcat.Errorf(stigcat.EINVALID, "import source required")
	}

	for _, rule := range rules {
		rule.Source = source
		if err := rule.Validate(); err != nil {
			return err
		}
	}

	if err := s.DeleteRulesBySource(ctx, source); err != nil {
		return err
	}

	now := time.Now().UTC()
	for i, rule := range rules {
		rule.ID = uuid.New().String()
		rule.Position = i
		rule.ImportedAt = now
		rule.ContentHash = hashRule(rule)

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO rules (id, source, stig_id, rule_id, severity, title, description, check_content, fix_text, content_hash, position, imported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rule.ID, rule.Source, rule.StigID, rule.RuleID, rule.Severity, rule.Title,
			rule.Description, rule.CheckContent, rule.FixText, rule.ContentHash,
			rule.Position, rule.ImportedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRuleByID retrieves a rule by catalog ID or XCCDF rule ID.
func (s *RuleService) FindRuleByID(ctx context.Context, id string) (*stigcat.Rule, error) {
	var rule stigcat.Rule
	var importedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, stig_id, rule_id, severity, title, description, check_content, fix_text, content_hash, position, imported_at
		FROM rules
		WHERE id = ? OR rule_id = ?
		ORDER BY source ASC, position ASC
		LIMIT 1
	`, id, id).Scan(&rule.ID, &rule.Source, &rule.StigID, &rule.RuleID, &rule.Severity,
		&rule.Title, &rule.Description, &rule.CheckContent, &rule.FixText,
		&rule.ContentHash, &rule.Position, &importedAt)

	if err == sql.ErrNoRows {
		return nil, stigcat.Errorf(stigcat.ENOTFOUND, "rule %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	rule.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
	if err != nil {
		return nil, err
	}

	return &rule, nil
}

// FindRules retrieves rules matching the filter, ordered by source then
// document position.
func (s *RuleService) FindRules(ctx context.Context, filter stigcat.RuleFilter) ([]*stigcat.Rule, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, stig_id, rule_id, severity, title, description, check_content, fix_text, content_hash, position, imported_at FROM rules WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.RuleID != nil {
		query.WriteString(" AND rule_id = ?")
		args = append(args, *filter.RuleID)
	}
	if filter.StigID != nil {
		query.WriteString(" AND stig_id = ?")
		args = append(args, *filter.StigID)
	}
	if filter.Severity != nil {
		query.WriteString(" AND severity = ?")
		args = append(args, *filter.Severity)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY source ASC, position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*stigcat.Rule
	for rows.Next() {
		var rule stigcat.Rule
		var importedAt string

		if err := rows.Scan(&rule.ID, &rule.Source, &rule.StigID, &rule.RuleID, &rule.Severity,
			&rule.Title, &rule.Description, &rule.CheckContent, &rule.FixText,
			&rule.ContentHash, &rule.Position, &importedAt); err != nil {
			return nil, err
		}

		rule.ImportedAt, err = parseRFC3339(importedAt, "imported_at")
		if err != nil {
			return nil, err
		}

		rules = append(rules, &rule)
	}

	return rules, rows.Err()
}

// DeleteRulesBySource removes all rules imported from a source.
func (s *RuleService) DeleteRulesBySource(ctx context.Context, source string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM rules WHERE source = ?", source)
	return err
}
