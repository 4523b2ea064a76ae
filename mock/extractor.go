package mock

import (
	"context"

	"github.com/awalters/stigcat"
)

var _ stigcat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of stigcat.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) ([]*stigcat.Rule, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) ([]*stigcat.Rule, error) {
	return e.ExtractFn(ctx, path)
}
