package lambda

import (
	"github.com/on-the-ground/fun_ive_go/shared/helper"
)

// Unary adapts a lambda to a typed one-argument function.
// The returned function panics if the first result is not an R.
func Unary[T, R any](l *Lambda) func(T) R {
	return func(x T) R {
		return helper.MustFirst[R](l.Call(x))
	}
}

// Binary adapts a lambda to a typed two-argument function.
func Binary[A, B, R any](l *Lambda) func(A, B) R {
	return func(a A, b B) R {
		return helper.MustFirst[R](l.Call(a, b))
	}
}

// Predicate adapts a lambda to a predicate. The first result is read with Truthy,
// so a lambda answering nil means false.
func Predicate[T any](l *Lambda) func(T) bool {
	return func(x T) bool {
		res := l.Call(x)
		return len(res) > 0 && Truthy(res[0])
	}
}
