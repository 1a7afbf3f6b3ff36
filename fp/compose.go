package fp

import (
	"fmt"

	"github.com/on-the-ground/fun_ive_go/pure"
)

// Func is the dynamic calling convention shared with lambda and pure.
type Func = pure.Func

// Compose returns fns[0] ∘ fns[1] ∘ ... ∘ fns[n-1]: the last function runs
// first and every stage receives the whole result tuple of the stage before.
// Compose() is the identity.
func Compose(fns ...Func) Func {
	return func(args ...any) []any {
		for i := len(fns) - 1; i >= 0; i-- {
			args = fns[i](args...)
		}
		return args
	}
}

// Pipe is Compose in reading order: the first function runs first.
func Pipe(fns ...Func) Func {
	return func(args ...any) []any {
		for _, fn := range fns {
			args = fn(args...)
		}
		return args
	}
}

// Curry turns f into a chain of n one-argument functions. Each link returns a
// one-value tuple holding the next link; the last link returns f's results.
//
//	add := fp.Curry(sum3, 3)
//	add(1)[0].(fp.Func)(2)[0].(fp.Func)(3) // sum3(1, 2, 3)
//
// For n <= 1 Curry returns f unchanged.
func Curry(f Func, n int) Func {
	if n <= 1 {
		return f
	}
	return func(args ...any) []any {
		var x any
		if len(args) > 0 {
			x = args[0]
		}
		return []any{Curry(Bind(f, map[int]any{0: x}), n-1)}
	}
}

// Bind pre-fills argument positions of f (zero-based). Calling the result
// fills the remaining positions with the call arguments, in order, skipping
// every bound position; bound values always win.
//
//	fp.Bind(f, map[int]any{1: 3})(5) // f(5, 3)
//
// Bind panics on a negative position.
func Bind(f Func, bound map[int]any) Func {
	size := 0
	for i := range bound {
		if i < 0 {
			panic(fmt.Sprintf("fp: Bind position %d is negative", i))
		}
		size = max(size, i+1)
	}
	return func(args ...any) []any {
		merged := make([]any, size, size+len(args))
		for i, v := range bound {
			merged[i] = v
		}
		pos := 0
		for _, a := range args {
			for {
				if _, taken := bound[pos]; !taken {
					break
				}
				pos++
			}
			if pos < len(merged) {
				merged[pos] = a
			} else {
				merged = append(merged, a)
			}
			pos++
		}
		return f(merged...)
	}
}

// Identity returns v unchanged.
func Identity[T any](v T) T {
	return v
}

// Nop accepts anything and returns nothing.
func Nop(...any) []any {
	return nil
}
