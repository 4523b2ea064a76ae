// Package slog provides logging decorators for stigcat services built
// on the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalters/stigcat"
)

// Ensure Extractor implements stigcat.Extractor.
var _ stigcat.Extractor = (*Extractor)(nil)

// Extractor wraps a stigcat.Extractor with structured logging of each
// extraction attempt.
type Extractor struct {
	next   stigcat.Extractor
	logger *slog.Logger
}

// NewExtractor creates a new logging Extractor around next.
func NewExtractor(next stigcat.Extractor, logger *slog.Logger) *Extractor {
	return &Extractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *Extractor) Extract(ctx context.Context, path string) ([]*stigcat.Rule, error) {
	begin := time.Now()
	rules, err := e.next.Extract(ctx, path)
	if err != nil {
		e.logger.Error("benchmark extraction failed",
			"path", path,
			"code", stigcat.ErrorCode(err),
			"message", stigcat.ErrorMessage(err),
		)
		return nil, err
	}
	e.logger.Info("benchmark extracted",
		"path", path,
		"rules", len(rules),
		"duration", time.Since(begin),
	)
	return rules, nil
}
