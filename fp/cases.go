package fp

import "github.com/on-the-ground/fun_ive_go/lambda"

// Branch produces the result of a matched case from the value that matched.
type Branch[T, R any] func(T) R

// Const is a branch that ignores the value and answers r.
func Const[T, R any](r R) Branch[T, R] {
	return func(T) R { return r }
}

// Cases maps values to branches. Default answers when nothing matches.
type Cases[K comparable, R any] struct {
	Match   map[K]Branch[K, R]
	Default Branch[K, R]
}

// Case resolves value against cases: the matching branch, else Default, is
// called with value. It reports false when neither exists.
func Case[K comparable, R any](value K, cases Cases[K, R]) (R, bool) {
	branch, ok := cases.Match[value]
	if !ok || branch == nil {
		branch = cases.Default
	}
	if branch == nil {
		var zero R
		return zero, false
	}
	return branch(value), true
}

// Clause pairs a condition value with the branch it selects.
type Clause[T, R any] struct {
	When T
	Then Branch[T, R]

	always bool
}

// Otherwise is a clause that always matches; its branch is called with the zero T.
func Otherwise[T, R any](then Branch[T, R]) Clause[T, R] {
	return Clause[T, R]{Then: then, always: true}
}

// Cond returns the branch result of the first clause whose When is truthy.
// It reports false once the clauses are exhausted.
func Cond[T, R any](clauses ...Clause[T, R]) (R, bool) {
	for _, c := range clauses {
		if !c.always && !Truthy(c.When) {
			continue
		}
		if c.Then == nil {
			break
		}
		return c.Then(c.When), true
	}
	var zero R
	return zero, false
}

// Truthy reports whether v counts as true: everything except nil and false.
func Truthy(v any) bool {
	return lambda.Truthy(v)
}
