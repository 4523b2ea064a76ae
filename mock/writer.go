package mock

import (
	"context"

	"github.com/awalters/stigcat"
)

var _ stigcat.RuleWriter = (*RuleWriter)(nil)

// RuleWriter is a mock implementation of stigcat.RuleWriter.
type RuleWriter struct {
	WriteRuleFn func(ctx context.Context, rule *stigcat.Rule) error
}

func (w *RuleWriter) WriteRule(ctx context.Context, rule *stigcat.Rule) error {
	return w.WriteRuleFn(ctx, rule)
}
