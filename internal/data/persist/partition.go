package persist

// partition splits in into contiguous disjoint chunks of at most size
// elements; the final chunk carries the remainder. Sub-slices alias the
// input and are capped so appends cannot bleed across chunk boundaries.
// Callers validate size; a size below 1 yields nil.
func partition[T any](in []T, size int) [][]T {
	if size < 1 || len(in) == 0 {
		return nil
	}
	out := make([][]T, 0, (len(in)+size-1)/size)
	for start := 0; start < len(in); start += size {
		end := min(start+size, len(in))
		out = append(out, in[start:end:end])
	}
	return out
}
