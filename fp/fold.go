package fp

import "slices"

// Foldl folds xs from the left, seeded with its first element:
// f(f(x0, x1), x2)... It reports false for an empty slice.
func Foldl[T any](f func(T, T) T, xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	return FoldlFrom(f, xs[0], xs[1:]), true
}

// FoldlFrom folds xs from the left, seeded with init.
func FoldlFrom[T, A any](f func(A, T) A, init A, xs []T) A {
	return Reduce(f, init, FromSlice(xs))
}

// Foldr folds xs from the right, seeded with its last element:
// f(x0, f(x1, x2)). It reports false for an empty slice.
func Foldr[T any](f func(T, T) T, xs []T) (T, bool) {
	if len(xs) == 0 {
		var zero T
		return zero, false
	}
	last := len(xs) - 1
	return FoldrFrom(f, xs[last], xs[:last]), true
}

// FoldrFrom folds xs from the right, seeded with init: f(x0, f(x1, ... f(xn, init))).
func FoldrFrom[T, A any](f func(T, A) A, init A, xs []T) A {
	reversed := slices.Clone(xs)
	slices.Reverse(reversed)
	return FoldlFrom(Flip(f), init, reversed)
}

// Flip swaps the arguments of a binary function.
func Flip[A, B, R any](f func(A, B) R) func(B, A) R {
	return func(b B, a A) R {
		return f(a, b)
	}
}
