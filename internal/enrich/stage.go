// Package enrich runs enrichment steps over saved locations: independent
// steps run in parallel within a stage, stages run one after another.
package enrich

import (
	"context"
)

// Step is a single enrichment operation that mutates the given item.
// Implementations must be safe to run concurrently with the other steps of
// the same stage. A failing step returns an error; the pipeline logs it and
// continues.
type Step[T any] func(ctx context.Context, item *T) error

// Stage groups steps that may run in parallel for a single item. The
// pipeline waits for all of them before moving to the next stage.
//
// Steps in one stage must not write the same fields.
type Stage[T any] struct {
	steps []Step[T]
}

// NewStage constructs a Stage from the provided steps.
func NewStage[T any](steps ...Step[T]) Stage[T] {
	return Stage[T]{steps: steps}
}
