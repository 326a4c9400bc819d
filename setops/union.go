// Package setops provides set operations over plain slices.
package setops

// Union returns the distinct elements of a followed by the distinct
// elements of b not already in a, each kept at its first occurrence.
// Inputs are not modified; the result is never nil.
func Union[T comparable](a, b []T) []T {
	seen := make(map[T]struct{}, len(a)+len(b))
	out := make([]T, 0, len(a)+len(b))
	for _, src := range [...][]T{a, b} {
		for _, v := range src {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	return out
}
