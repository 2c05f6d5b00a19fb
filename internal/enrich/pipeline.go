package enrich

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
)

// Pipeline coordinates the execution of a sequence of stages for items flowing
// through a channel. For each incoming item, steps within the same stage run in
// parallel, and stages themselves run sequentially. Step errors are logged and
// do not stop processing of the current item.
//
// Pipeline is generic over the item type T.
type Pipeline[T any] struct {
	stages []Stage[T]
}

// Stats summarizes a Process run.
type Stats struct {
	// Items is the number of items that went through every stage.
	Items int
	// Failures is the number of items with at least one failed step.
	Failures int
}

// NewPipeline constructs a Pipeline from the provided stages. Stages will be
// applied to each item in order.
func NewPipeline[T any](stages ...Stage[T]) *Pipeline[T] {
	return &Pipeline[T]{stages: stages}
}

// Process consumes items from the input channel until it is closed or ctx is
// done. For each item:
//   - All steps in a stage are started concurrently and must complete before
//     moving to the next stage (a stage barrier).
//   - Errors returned by steps are logged and the remaining stages still run.
func (p *Pipeline[T]) Process(ctx context.Context, in <-chan *T) Stats {
	var stats Stats
	for {
		var item *T
		select {
		case <-ctx.Done():
			return stats
		case it, ok := <-in:
			if !ok {
				return stats
			}
			item = it
		}

		if p.Run(ctx, item) > 0 {
			stats.Failures++
		}
		stats.Items++
	}
}

// Run applies every stage to a single item and returns the number of failed steps.
func (p *Pipeline[T]) Run(ctx context.Context, item *T) int {
	var failed atomic.Int32
	for _, stage := range p.stages {
		var wg sync.WaitGroup
		for _, step := range stage.steps {
			wg.Add(1)
			go func(step Step[T]) {
				defer wg.Done()
				if err := step(ctx, item); err != nil {
					failed.Add(1)
					log.Printf("Step failed: %v", err)
				}
			}(step)
		}
		wg.Wait() // stage barrier: ensure all steps finished before the next stage
	}
	return int(failed.Load())
}
