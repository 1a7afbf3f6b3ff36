package lambda

import (
	"fmt"
	"maps"

	"github.com/expr-lang/expr/vm/runtime"

	"github.com/on-the-ground/fun_ive_go/pure"
)

// OperatorTable maps operator symbols to the callables a one-symbol lambda resolves to.
type OperatorTable map[string]pure.Func

// DefaultOperators returns a fresh copy of the built-in operator table.
//
// Arithmetic and comparison follow the expression runtime used for lambda
// bodies, so "<" and "= _1 < _2" agree on every operand pair. "and" and "or"
// return one of their operands, using Truthy.
func DefaultOperators() OperatorTable {
	return maps.Clone(defaultOperators)
}

var defaultOperators = OperatorTable{
	"+":  binary(runtime.Add),
	"-":  binary(runtime.Subtract),
	"*":  binary(runtime.Multiply),
	"/":  binary(runtime.Divide),
	"%":  binary(runtime.Modulo),
	"^":  binary(runtime.Exponent),
	"==": binary(runtime.Equal),
	"~=": binary(notEqual),
	"!=": binary(notEqual),
	"<":  binary(runtime.Less),
	"<=": binary(runtime.LessOrEqual),
	">":  binary(runtime.More),
	">=": binary(runtime.MoreOrEqual),
	"..": binary(func(a, b any) string { return fmt.Sprint(a) + fmt.Sprint(b) }),
	"[]": binary(runtime.Fetch),
	"and": binary(func(a, b any) any {
		if Truthy(a) {
			return b
		}
		return a
	}),
	"or": binary(func(a, b any) any {
		if Truthy(a) {
			return a
		}
		return b
	}),
	"not": unary(func(a any) bool { return !Truthy(a) }),
	"#":   unary(runtime.Len),
	`""`:  unary(func(a any) string { return fmt.Sprint(a) }),
	"{}":  func(args ...any) []any { return []any{append([]any(nil), args...)} },
	"neg": unary(runtime.Negate),
}

// Truthy reports whether v counts as true: everything except nil and false.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

func notEqual(a, b any) bool {
	return !runtime.Equal(a, b)
}

func binary[R any](op func(a, b any) R) pure.Func {
	return func(args ...any) []any {
		return []any{op(argAt(args, 0), argAt(args, 1))}
	}
}

func unary[R any](op func(a any) R) pure.Func {
	return func(args ...any) []any {
		return []any{op(argAt(args, 0))}
	}
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}
