package report

import (
	"fmt"
	"io"
	"time"

	"github.com/vilya/Hailstones/internal/histogram"
	"github.com/vilya/Hailstones/internal/util"
)

// Render prints the histogram in its fixed layout: a header naming the
// range, one "<low>-<high>:\t<count>" line per bucket, then the
// "<cap+1>+:\t<count>" overflow line. The layout is stable output meant
// for diffing and scripts, so it goes through an io.Writer untouched by
// the logger.
func Render(w io.Writer, lower, upper int64, h *histogram.Histogram) error {
	if _, err := fmt.Fprintf(w, "Counts of hailstone sequence lengths for range %d-%d:\n", lower, upper); err != nil {
		return err
	}

	for i := 0; i < h.NumBuckets(); i++ {
		low, high := h.Bounds(i)
		if _, err := fmt.Fprintf(w, "%d-%d:\t%d\n", low, high, h.Count(i)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%d+:\t%d\n", h.MaxLength()+1, h.Overflow())
	return err
}

// RenderStats appends the total observation count and the timing line to
// the report.
func RenderStats(w io.Writer, h *histogram.Histogram, elapsed time.Duration) error {
	if _, err := fmt.Fprintf(w, "Total:\t%d\n", h.Total()); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Counting finished in %s seconds.\n", util.FormatSeconds(elapsed))
	return err
}
