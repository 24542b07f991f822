package tagged

import "cmp"

// Comparison operations. Prerequisites are transitive: strict ordering
// demands the full equality chain, so a brand cannot end up with a total
// order it could not also test for equality.

// Equal reports whether two same-branded wrappers hold equal inner values,
// using Go's == (so float NaN compares unequal to itself, as the inner type
// dictates). Requires the CanEqual grant.
func Equal[V comparable, T CanEqual](a, b Tagged[V, T]) bool {
	return a.v == b.v
}

// StrictEqual reports whether two same-branded wrappers hold equal inner
// values under a brand that promises total equality, e.g. for use as map or
// set keys. Requires the CanStrictEqual and CanEqual grants.
func StrictEqual[V comparable, T interface {
	CanStrictEqual
	CanEqual
}](a, b Tagged[V, T]) bool {
	return a.v == b.v
}

// Less reports whether a's inner value orders before b's. Requires the
// CanOrder and CanEqual grants.
func Less[V cmp.Ordered, T interface {
	CanOrder
	CanEqual
}](a, b Tagged[V, T]) bool {
	return cmp.Less(a.v, b.v)
}

// Compare returns -1, 0 or +1 comparing the inner values, suitable for
// slices.SortFunc and friends. Requires the CanStrictOrder, CanOrder,
// CanStrictEqual and CanEqual grants.
func Compare[V cmp.Ordered, T interface {
	CanStrictOrder
	CanOrder
	CanStrictEqual
	CanEqual
}](a, b Tagged[V, T]) int {
	return cmp.Compare(a.v, b.v)
}
