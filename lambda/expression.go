package lambda

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/on-the-ground/fun_ive_go/pure"
)

// ExpressionCompiler turns a parameter list and an expression body into a callable.
//
// It is the only place where text becomes code. Implementations must evaluate
// the body in isolation: the body sees its parameters and nothing of the host.
type ExpressionCompiler interface {
	Compile(params []string, body string) (pure.Func, error)
}

// ExpressionCompilerFunc adapts a plain function to ExpressionCompiler.
type ExpressionCompilerFunc func(params []string, body string) (pure.Func, error)

func (f ExpressionCompilerFunc) Compile(params []string, body string) (pure.Func, error) {
	return f(params, body)
}

// ExprCompiler compiles bodies with the expr language VM.
// The compiled callable binds its arguments to params in order; missing
// arguments read as nil and extra arguments are ignored. It returns a
// one-value tuple and panics with ErrEvaluation if the body fails at run time.
type ExprCompiler struct {
	// Options are appended to the compile options, e.g. expr.Function to expose helpers.
	Options []expr.Option
}

func (c ExprCompiler) Compile(params []string, body string) (pure.Func, error) {
	opts := append([]expr.Option{expr.AllowUndefinedVariables()}, c.Options...)
	program, err := expr.Compile(body, opts...)
	if err != nil {
		return nil, err
	}
	return func(args ...any) []any {
		env := make(map[string]any, len(params))
		for i, p := range params {
			env[p] = argAt(args, i)
		}
		out, err := expr.Run(program, env)
		if err != nil {
			panic(fmt.Errorf("%w: %q: %w", ErrEvaluation, body, err))
		}
		return []any{out}
	}, nil
}
