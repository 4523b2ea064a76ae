package sqlite_test

import (
	"context"
	"testing"

	"github.com/awalters/stigcat"
	"github.com/awalters/stigcat/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB opens an in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// benchRules returns a small ordered set of rules as the extractor
// would produce them.
func benchRules() []*stigcat.Rule {
	return []*stigcat.Rule{
		{
			StigID:       "V-220719",
			RuleID:       "SV-220719r1_rule",
			Severity:     stigcat.SeverityMedium,
			Title:        "Use Windows 11 Enterprise Edition.",
			Description:  "Credential Guard requires virtualization-based security.",
			CheckContent: "Verify the installed edition.",
			FixText:      "Install the Enterprise edition.",
		},
		{
			StigID:   "V-220720",
			RuleID:   "SV-220720r1_rule",
			Severity: stigcat.SeverityHigh,
			Title:    "Secure Boot must be enabled.",
		},
	}
}

func TestRuleService_ImportRules(t *testing.T) {
	t.Parallel()

	t.Run("round trips rules in document order", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()

		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		got, err := svc.FindRules(ctx, stigcat.RuleFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "SV-220719r1_rule", got[0].RuleID)
		assert.Equal(t, "SV-220720r1_rule", got[1].RuleID)
		assert.Equal(t, "win11.xml", got[0].Source)
		assert.Equal(t, 0, got[0].Position)
		assert.Equal(t, 1, got[1].Position)
		assert.Equal(t, "Credential Guard requires virtualization-based security.", got[0].Description)
		assert.NotEmpty(t, got[0].ID)
		assert.NotEmpty(t, got[0].ContentHash)
		assert.False(t, got[0].ImportedAt.IsZero())
	})

	t.Run("reimport replaces the previous import", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()

		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		got, err := svc.FindRules(ctx, stigcat.RuleFilter{})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("identical rules hash identically across imports", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()

		require.NoError(t, svc.ImportRules(ctx, "a.xml", benchRules()))
		require.NoError(t, svc.ImportRules(ctx, "b.xml", benchRules()))

		aSource, bSource := "a.xml", "b.xml"
		fromA, err := svc.FindRules(ctx, stigcat.RuleFilter{Source: &aSource})
		require.NoError(t, err)
		fromB, err := svc.FindRules(ctx, stigcat.RuleFilter{Source: &bSource})
		require.NoError(t, err)
		require.Len(t, fromA, 2)
		require.Len(t, fromB, 2)
		assert.Equal(t, fromA[0].ContentHash, fromB[0].ContentHash)
		assert.NotEqual(t, fromA[0].ContentHash, fromA[1].ContentHash)
	})

	t.Run("rejects rules without an ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)

		err := svc.ImportRules(context.Background(), "win11.xml", []*stigcat.Rule{{Title: "no id"}})
		assert.Equal(t, stigcat.EINVALID, stigcat.ErrorCode(err))
	})

	t.Run("rejects empty source", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)

		err := svc.ImportRules(context.Background(), "", benchRules())
		assert.Equal(t, stigcat.EINVALID, stigcat.ErrorCode(err))
	})
}

func TestRuleService_FindRuleByID(t *testing.T) {
	t.Parallel()

	t.Run("finds by XCCDF rule ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		rule, err := svc.FindRuleByID(ctx, "SV-220720r1_rule")
		require.NoError(t, err)
		assert.Equal(t, "Secure Boot must be enabled.", rule.Title)
	})

	t.Run("finds by catalog ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		all, err := svc.FindRules(ctx, stigcat.RuleFilter{})
		require.NoError(t, err)

		rule, err := svc.FindRuleByID(ctx, all[0].ID)
		require.NoError(t, err)
		assert.Equal(t, all[0].RuleID, rule.RuleID)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)

		_, err := svc.FindRuleByID(context.Background(), "SV-0_rule")
		assert.Equal(t, stigcat.ENOTFOUND, stigcat.ErrorCode(err))
	})
}

func TestRuleService_FindRules(t *testing.T) {
	t.Parallel()

	t.Run("filters by severity", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		high := stigcat.SeverityHigh
		got, err := svc.FindRules(ctx, stigcat.RuleFilter{Severity: &high})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SV-220720r1_rule", got[0].RuleID)
	})

	t.Run("filters by stig ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		stigID := "V-220719"
		got, err := svc.FindRules(ctx, stigcat.RuleFilter{StigID: &stigID})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SV-220719r1_rule", got[0].RuleID)
	})

	t.Run("applies an offset without a limit", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		got, err := svc.FindRules(ctx, stigcat.RuleFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SV-220720r1_rule", got[0].RuleID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		svc := sqlite.NewRuleService(db)
		ctx := context.Background()
		require.NoError(t, svc.ImportRules(ctx, "win11.xml", benchRules()))

		got, err := svc.FindRules(ctx, stigcat.RuleFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SV-220720r1_rule", got[0].RuleID)
	})
}

func TestRuleService_DeleteRulesBySource(t *testing.T) {
	t.Parallel()

	db := mustOpenDB(t)
	svc := sqlite.NewRuleService(db)
	ctx := context.Background()

	require.NoError(t, svc.ImportRules(ctx, "a.xml", benchRules()))
	require.NoError(t, svc.ImportRules(ctx, "b.xml", benchRules()))

	require.NoError(t, svc.DeleteRulesBySource(ctx, "a.xml"))

	got, err := svc.FindRules(ctx, stigcat.RuleFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "b.xml", r.Source)
	}
}
