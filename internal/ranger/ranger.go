package ranger

// Shard is an inclusive range of starting values handed to one worker.
type Shard struct{ From, To int64 }

// Split divides [min, max] into contiguous shards of roughly span/parts
// starting values each. Adjacent shards touch (next From is previous To
// plus one) and together they cover the whole range exactly once. An
// inverted range yields no shards.
func Split(min, max int64, parts int) []Shard {
	if max < min {
		return nil
	}
	if parts < 1 {
		parts = 1
	}

	// беззнаковая разница переживает диапазоны шире int64
	span := uint64(max) - uint64(min) + 1

	step := span / uint64(parts)
	if step < 1 {
		step = 1
	}

	out := make([]Shard, 0, parts)

	for cur := min; ; {
		end := cur + int64(step) - 1
		if end < cur || end > max {
			end = max
		}

		out = append(out, Shard{cur, end})

		if end == max {
			return out
		}

		cur = end + 1
	}
}
