package hailstone

// Step computes the next hailstone number after n: n/2 when n is even,
// 3n+1 otherwise.
func Step(n int64) int64 {
	if n%2 == 0 {
		return n / 2
	}
	return 3*n + 1
}

// Length returns the number of terms in the hailstone sequence of start,
// counting start itself and stopping once the sequence reaches 1 or the
// count would pass maxLength. The result equals min(true length,
// maxLength+1), so a result above maxLength means the sequence did not
// reach 1 within the cap.
func Length(start, maxLength int64) int64 {
	val := start
	count := int64(1)

	for val != 1 && count <= maxLength {
		val = Step(val)
		count++
	}

	return count
}
