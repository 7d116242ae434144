package progress

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"go.uber.org/atomic"

	"github.com/vilya/Hailstones/internal/util"
)

const progressEvery = 1 * time.Second

// Вся отчетность пишется на stderr, stdout занят гистограммой
type Reporter struct {
	total       uint64
	done        *atomic.Uint64
	start       time.Time
	doneCh      chan struct{}
	inline      bool
	progressTkr *time.Ticker
}

func New(total uint64, done *atomic.Uint64, start time.Time) *Reporter {
	return &Reporter{
		total:  total,
		done:   done,
		start:  start,
		doneCh: make(chan struct{}),
		inline: isTerminal(),
	}
}

func (r *Reporter) Start(ctx context.Context) {
	r.progressTkr = time.NewTicker(progressEvery)
	go func() {
		defer close(r.doneCh)
		defer r.progressTkr.Stop()

		for {
			select {
			case <-r.progressTkr.C:
				starts := r.done.Load()
				elapsed := time.Since(r.start).Seconds()
				sps := float64(starts) / math.Max(elapsed, 0.001)
				pct := 100.0 * float64(starts) / math.Max(float64(r.total), 1)
				if pct > 100 {
					pct = 100
				}
				eta := ""
				if sps > 0 && r.total > 0 {
					remain := float64(r.total) - float64(starts)
					if remain < 0 {
						remain = 0
					}
					etaDur := time.Duration(remain/sps) * time.Second
					eta = etaDur.Truncate(time.Second).String()
				}
				line := fmt.Sprintf("[PROGRESS] starts=%s (%.0f/s) %.1f%% ETA=%s",
					util.FormatNumber(starts), sps, pct, eta)

				if r.inline {
					fmt.Fprintf(os.Stderr, "\r\033[2K%s", line)
				} else {
					log.Print(line)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (r *Reporter) WaitAndFinish() {
	<-r.doneCh
	if r.inline {
		fmt.Fprintln(os.Stderr)
	}
}

func isTerminal() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
