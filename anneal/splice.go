package anneal

// excise removes dst[from:to], returning the shortened slice and the
// removed run separately.
func excise[T any](dst []T, from, to int) (remaining, removed []T) {
	removed = append([]T(nil), dst[from:to]...)
	remaining = make([]T, 0, len(dst)-(to-from))
	remaining = append(remaining, dst[:from]...)
	remaining = append(remaining, dst[to:]...)
	return remaining, removed
}

// insertAt splices ins into dst at position at, without removing
// anything.
func insertAt[T any](dst []T, at int, ins []T) []T {
	out := make([]T, 0, len(dst)+len(ins))
	out = append(out, dst[:at]...)
	out = append(out, ins...)
	out = append(out, dst[at:]...)
	return out
}
