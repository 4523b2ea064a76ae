package mock

import (
	"context"

	"github.com/awalters/stigcat"
)

var _ stigcat.RuleService = (*RuleService)(nil)

// RuleService is a mock implementation of stigcat.RuleService.
type RuleService struct {
	ImportRulesFn         func(ctx context.Context, source string, rules []*stigcat.Rule) error
	FindRuleByIDFn        func(ctx context.Context, id string) (*stigcat.Rule, error)
	FindRulesFn           func(ctx context.Context, filter stigcat.RuleFilter) ([]*stigcat.Rule, error)
	DeleteRulesBySourceFn func(ctx context.Context, source string) error
}

func (s *RuleService) ImportRules(ctx context.Context, source string, rules []*stigcat.Rule) error {
	return s.ImportRulesFn(ctx, source, rules)
}

func (s *RuleService) FindRuleByID(ctx context.Context, id string) (*stigcat.Rule, error) {
	return s.FindRuleByIDFn(ctx, id)
}

func (s *RuleService) FindRules(ctx context.Context, filter stigcat.RuleFilter) ([]*stigcat.Rule, error) {
	return s.FindRulesFn(ctx, filter)
}

func (s *RuleService) DeleteRulesBySource(ctx context.Context, source string) error {
	return s.DeleteRulesBySourceFn(ctx, source)
}
