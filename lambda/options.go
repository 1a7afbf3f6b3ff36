package lambda

import "go.uber.org/zap"

// Option configures a Compiler.
type Option func(*Compiler)

// WithOperators replaces the operator table. A nil table disables the operator form.
func WithOperators(ops OperatorTable) Option {
	return func(c *Compiler) {
		c.operators = ops
	}
}

// WithExpressionCompiler replaces the seam that compiles lambda bodies.
func WithExpressionCompiler(ec ExpressionCompiler) Option {
	return func(c *Compiler) {
		c.expressions = ec
	}
}

// WithLogger makes the compiler log to l instead of the shared logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Compiler) {
		c.logger = l
	}
}
