package counter

import (
	"context"
	"testing"

	"go.uber.org/atomic"

	"github.com/vilya/Hailstones/internal/hailstone"
	"github.com/vilya/Hailstones/internal/histogram"
	"github.com/vilya/Hailstones/internal/ranger"
)

func TestRun(t *testing.T) {
	table := hailstone.BuildTable(1<<12, 4)

	t.Run("known distribution for 1 to 10", func(t *testing.T) {
		shards := ranger.Split(1, 10, 3)
		done := atomic.NewUint64(0)

		hist, err := Run(context.Background(), shards, 20, 5, table, done)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}

		expected := []uint64{4, 4, 0, 2}
		for i, want := range expected {
			if got := hist.Count(i); got != want {
				t.Errorf("Count(%d) = %d, want %d", i, got, want)
			}
		}
		if got := hist.Overflow(); got != 0 {
			t.Errorf("Overflow() = %d, want 0", got)
		}
		if got := done.Load(); got != 10 {
			t.Errorf("done counter = %d, want 10", got)
		}
	})

	t.Run("matches the sequential reference", func(t *testing.T) {
		const lower, upper = int64(1), int64(2000)
		const maxLength, bucketSize = int64(50), int64(10)

		want := histogram.New(maxLength, bucketSize)
		for start := lower; start <= upper; start++ {
			want.Observe(hailstone.Length(start, maxLength))
		}

		for _, workers := range []int{1, 3, 8} {
			for _, tbl := range []*hailstone.Table{table, hailstone.BuildTable(0, 1)} {
				shards := ranger.Split(lower, upper, workers)

				hist, err := Run(context.Background(), shards, maxLength, bucketSize, tbl, atomic.NewUint64(0))
				if err != nil {
					t.Fatalf("Run() with %d workers: %v", workers, err)
				}

				for i := 0; i < want.NumBuckets(); i++ {
					if hist.Count(i) != want.Count(i) {
						t.Errorf("workers=%d table=%d: Count(%d) = %d, want %d",
							workers, tbl.Size(), i, hist.Count(i), want.Count(i))
					}
				}
				if hist.Overflow() != want.Overflow() {
					t.Errorf("workers=%d table=%d: Overflow() = %d, want %d",
						workers, tbl.Size(), hist.Overflow(), want.Overflow())
				}
			}
		}
	})

	t.Run("every start lands in exactly one bucket", func(t *testing.T) {
		shards := ranger.Split(1, 1000, 7)
		done := atomic.NewUint64(0)

		hist, err := Run(context.Background(), shards, 30, 7, table, done)
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got := hist.Total(); got != 1000 {
			t.Errorf("Total() = %d, want 1000", got)
		}
		if got := done.Load(); got != 1000 {
			t.Errorf("done counter = %d, want 1000", got)
		}
	})

	t.Run("empty range produces a zero histogram", func(t *testing.T) {
		shards := ranger.Split(10, 1, 4)

		hist, err := Run(context.Background(), shards, 20, 5, table, atomic.NewUint64(0))
		if err != nil {
			t.Fatalf("Run() error: %v", err)
		}
		if got := hist.Total(); got != 0 {
			t.Errorf("Total() = %d, want 0", got)
		}
		if got := hist.NumBuckets(); got != 4 {
			t.Errorf("NumBuckets() = %d, want 4", got)
		}
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		shards := ranger.Split(1, 200_000, 2)
		if _, err := Run(ctx, shards, 50, 10, table, atomic.NewUint64(0)); err == nil {
			t.Fatal("Run() with a cancelled context should fail")
		}
	})
}
