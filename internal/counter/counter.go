package counter

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/atomic"

	"github.com/vilya/Hailstones/internal/hailstone"
	"github.com/vilya/Hailstones/internal/histogram"
	"github.com/vilya/Hailstones/internal/ranger"
)

// Столько обработанных стартов воркер копит, прежде чем сбросить их в
// общий счетчик прогресса и проверить отмену
const flushEvery = 1 << 12

// Run computes the capped sequence length of every starting value in the
// shards and merges the per-worker histograms into one. done is advanced
// as starts complete so a progress reporter can watch it.
func Run(
	ctx context.Context,
	shards []ranger.Shard,
	maxLength, bucketSize int64,
	table *hailstone.Table,
	done *atomic.Uint64,
) (*histogram.Histogram, error) {
	locals := make([]*histogram.Histogram, len(shards))

	var wg sync.WaitGroup
	errCh := make(chan error, len(shards))

	for i, sh := range shards {
		wg.Add(1)
		locals[i] = histogram.New(maxLength, bucketSize)

		go func(wid int, local *histogram.Histogram, from, to int64) {
			defer wg.Done()
			if err := runWorker(ctx, local, from, to, maxLength, table, done); err != nil {
				errCh <- fmt.Errorf("worker %d: %w", wid, err)
			}
		}(i+1, locals[i], sh.From, sh.To)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	// сливаем локальные гистограммы воркеров в итоговую
	total := histogram.New(maxLength, bucketSize)
	for _, local := range locals {
		total.Merge(local)
	}

	return total, nil
}

func runWorker(
	ctx context.Context,
	local *histogram.Histogram,
	from, to int64,
	maxLength int64,
	table *hailstone.Table,
	done *atomic.Uint64,
) error {
	var pending uint64

	for start := from; ; start++ {
		local.Observe(table.Length(start, maxLength))

		pending++
		if pending == flushEvery {
			done.Add(pending)
			pending = 0

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}

		if start == to {
			break
		}
	}

	if pending > 0 {
		done.Add(pending)
	}

	return nil
}
