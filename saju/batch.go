package saju

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// batchWorkers bounds the goroutines of ComputeDailyBatch
const batchWorkers = 8

// ComputeDailyBatch computes the daily fortune of every input for the same
// evaluation date. Results keep the input order; the first invalid input
// fails the whole batch.
func ComputeDailyBatch(ctx context.Context, inputs []SubjectInput, eval Date) ([]FortuneResult, error) {
	results := make([]FortuneResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := in.Parse()
			if err != nil {
				return fmt.Errorf("subject %d: %w", i, err)
			}
			results[i] = dailyFortune(s, eval)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
