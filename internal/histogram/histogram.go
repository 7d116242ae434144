package histogram

// Histogram tallies hailstone sequence lengths into fixed-width buckets
// covering [1, maxLength], plus a single overflow counter for sequences
// that did not reach 1 within the cap.
type Histogram struct {
	maxLength  int64
	bucketSize int64
	buckets    []uint64
	overflow   uint64
}

// New allocates a histogram with ceil(maxLength/bucketSize) zeroed buckets.
// Both arguments must be positive.
func New(maxLength, bucketSize int64) *Histogram {
	numBuckets := maxLength / bucketSize
	if maxLength%bucketSize != 0 {
		numBuckets++
	}

	return &Histogram{
		maxLength:  maxLength,
		bucketSize: bucketSize,
		buckets:    make([]uint64, numBuckets),
	}
}

// Observe counts one sequence length. Lengths above maxLength land in the
// overflow bucket; every other length lands in bucket (length-1)/bucketSize.
func (h *Histogram) Observe(length int64) {
	if length > h.maxLength {
		h.overflow++
		return
	}

	h.buckets[(length-1)/h.bucketSize]++
}

// Merge adds the counts of other into h. Both histograms must have been
// created with the same maxLength and bucketSize.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.buckets {
		h.buckets[i] += c
	}
	h.overflow += other.overflow
}

// NumBuckets returns the number of regular buckets.
func (h *Histogram) NumBuckets() int {
	return len(h.buckets)
}

// Count returns the number of observations in bucket i.
func (h *Histogram) Count(i int) uint64 {
	return h.buckets[i]
}

// Overflow returns the number of observations above maxLength.
func (h *Histogram) Overflow() uint64 {
	return h.overflow
}

// Bounds returns the inclusive range of sequence lengths counted by bucket
// i. The last bucket is clipped to maxLength when bucketSize does not
// divide it evenly.
func (h *Histogram) Bounds(i int) (low, high int64) {
	low = int64(i)*h.bucketSize + 1

	high = (int64(i) + 1) * h.bucketSize
	if high > h.maxLength {
		high = h.maxLength
	}

	return low, high
}

// MaxLength returns the sequence length cap the histogram was built for.
func (h *Histogram) MaxLength() int64 {
	return h.maxLength
}

// Total returns the number of observations across all buckets, overflow
// included. For a full counting pass it equals the size of the input range.
func (h *Histogram) Total() uint64 {
	total := h.overflow
	for _, c := range h.buckets {
		total += c
	}

	return total
}
