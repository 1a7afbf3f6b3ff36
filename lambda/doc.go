// Package lambda compiles short lambda strings into callables.
//
// Three forms are understood, tried in this order:
//
//	"<"             an operator symbol from the OperatorTable
//	"|a,b| a < b"   named parameters and an expression body
//	"= _1 < _2"     positional parameters _1.._9 and an expression body
//
// Bodies are compiled by an ExpressionCompiler. The default, ExprCompiler, uses
// the expr language (github.com/expr-lang/expr): a sandboxed expression VM, so
// bodies use its syntax ("!=", "and", "or", "not", "a ? b : c") and can only
// see their own parameters.
//
// Compiled lambdas are cached per Compiler, keyed by the verbatim source
// string, and live as long as the Compiler. Programs use a small, fixed set of
// lambda strings, so the cache is never pruned.
//
// Example:
//
//	lt := lambda.Must("|a,b| a < b")
//	lt.Call(3, 5) // []any{true}
//
//	square := lambda.Unary[int, int](lambda.Must("= _1 * _1"))
//	square(4) // 16
package lambda
