package tagged

import "hash/maphash"

// Tagged wraps a single value of type V under the brand type T. The brand
// occupies no storage; a Tagged[V, T] has the exact memory layout of V, and
// two instantiations that differ only in T are distinct, non-assignable
// types.
//
// The phantom field binds T without storing it and makes the struct
// non-comparable, so built-in == cannot sidestep the CanEqual grant.
type Tagged[V any, T any] struct {
	v V
	_ [0]func(T)
}

// New wraps v under the brand T. Construction is always available and
// requires no marker on the brand.
func New[V any, T any](v V) Tagged[V, T] {
	return Tagged[V, T]{v: v}
}

// Inner returns the wrapped value. Requires the CanInner grant.
func Inner[V any, T CanInner](t Tagged[V, T]) V {
	return t.v
}

// From converts an inner value into its branded form. Requires the CanFrom
// grant. From is New with an opt-in: brands that want construction to stay
// an explicit, grep-able act simply never grant it.
func From[V any, T CanFrom](v V) Tagged[V, T] {
	return Tagged[V, T]{v: v}
}

// Map converts the inner value with f, keeping the brand. Requires the
// CanMap grant.
func Map[V, U any, T CanMap](t Tagged[V, T], f func(V) U) Tagged[U, T] {
	return Tagged[U, T]{v: f(t.v)}
}

// TryMap converts the inner value with f, keeping the brand. A failure from
// f is returned unchanged; a success is re-tagged. Requires the CanMap
// grant.
func TryMap[V, U any, T CanMap](t Tagged[V, T], f func(V) (U, error)) (Tagged[U, T], error) {
	u, err := f(t.v)
	if err != nil {
		return Tagged[U, T]{}, err
	}
	return Tagged[U, T]{v: u}, nil
}

// Cloned converts a wrapper around *V into a wrapper owning a copy of the
// pointed-to value. Requires the CanCloned grant.
func Cloned[V any, T CanCloned](t Tagged[*V, T]) Tagged[V, T] {
	return Tagged[V, T]{v: *t.v}
}

// Ref converts a *Tagged[V, T] into a wrapper around *V, pointing at the
// original inner value. Requires the CanRef grant.
func Ref[V any, T CanRef](t *Tagged[V, T]) Tagged[*V, T] {
	return Tagged[*V, T]{v: &t.v}
}

// Deref returns a pointer to the inner value. Requires the CanDeref grant.
func Deref[V any, T CanDeref](t *Tagged[V, T]) *V {
	return &t.v
}

// Default returns a wrapper around the zero value of V. Requires the
// CanDefault grant.
func Default[V any, T CanDefault]() Tagged[V, T] {
	return Tagged[V, T]{}
}

// Clone returns a duplicate of t. The inner value is duplicated with Go
// assignment semantics; reference types share their backing storage exactly
// as a bare V would. Requires the CanClone grant.
func Clone[V any, T CanClone](t Tagged[V, T]) Tagged[V, T] {
	return Tagged[V, T]{v: t.v}
}

// Copy returns an explicit by-value copy of t. Requires both the CanCopy
// and CanClone grants.
func Copy[V any, T interface {
	CanCopy
	CanClone
}](t Tagged[V, T]) Tagged[V, T] {
	return Tagged[V, T]{v: t.v}
}

// Hash returns the seeded hash of the inner value, identical to hashing the
// bare value with the same seed. Requires the CanHash grant.
func Hash[V comparable, T CanHash](seed maphash.Seed, t Tagged[V, T]) uint64 {
	return maphash.Comparable(seed, t.v)
}

// Number constrains the inner types usable with the arithmetic grants.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns t with rhs added to the inner value. Requires the CanAdd
// grant.
func Add[V Number, T CanAdd](t Tagged[V, T], rhs V) Tagged[V, T] {
	return Tagged[V, T]{v: t.v + rhs}
}

// Sub returns t with rhs subtracted from the inner value. Requires the
// CanSub grant.
func Sub[V Number, T CanSub](t Tagged[V, T], rhs V) Tagged[V, T] {
	return Tagged[V, T]{v: t.v - rhs}
}

// Mul returns t with the inner value multiplied by rhs. Requires the CanMul
// grant.
func Mul[V Number, T CanMul](t Tagged[V, T], rhs V) Tagged[V, T] {
	return Tagged[V, T]{v: t.v * rhs}
}

// Div returns t with the inner value divided by rhs. Division semantics,
// including panics on integer division by zero, are the inner type's own.
// Requires the CanDiv grant.
func Div[V Number, T CanDiv](t Tagged[V, T], rhs V) Tagged[V, T] {
	return Tagged[V, T]{v: t.v / rhs}
}
