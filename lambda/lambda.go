package lambda

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/on-the-ground/fun_ive_go/pure"
	"github.com/on-the-ground/fun_ive_go/shared/log"
)

var (
	ErrInvalidLambda = errors.New("invalid lambda")
	ErrEvaluation    = errors.New("lambda evaluation failed")
)

// InvalidLambdaError reports a source string that is not a lambda.
type InvalidLambdaError struct {
	Source string
	Cause  error
}

func (e *InvalidLambdaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid lambda %q: %v", e.Source, e.Cause)
	}
	return fmt.Sprintf("invalid lambda %q", e.Source)
}

func (e *InvalidLambdaError) Unwrap() error {
	return e.Cause
}

func (e *InvalidLambdaError) Is(target error) bool {
	return target == ErrInvalidLambda
}

// Form tells which grammar a lambda source matched.
type Form string

const (
	// FormOperator is a bare operator symbol such as "<".
	FormOperator Form = "operator"

	// FormParams is "|a,b| a < b": named parameters.
	FormParams Form = "params"

	// FormPositional is "= _1 < _2": arguments bound to _1.._9.
	FormPositional Form = "positional"
)

// Lambda is a compiled lambda source.
type Lambda struct {
	Source string
	Form   Form
	Params []string
	fn     pure.Func
}

// Call applies the lambda and returns its result tuple.
func (l *Lambda) Call(args ...any) []any {
	return l.fn(args...)
}

// Func exposes the lambda in the dynamic calling convention.
func (l *Lambda) Func() pure.Func {
	return l.fn
}

func (l *Lambda) String() string {
	return l.Source
}

var (
	paramsForm     = regexp.MustCompile(`^\|([^|]*)\|\s*(.+)$`)
	positionalForm = regexp.MustCompile(`^=\s*(.+)$`)
	identifier     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	positionalParams = []string{"_1", "_2", "_3", "_4", "_5", "_6", "_7", "_8", "_9"}
)

// Compiler compiles lambda sources and keeps every compiled lambda for the
// life of the compiler. The cache is keyed by the verbatim source: "=_1" and
// "= _1" are compiled separately. It never evicts; Reset empties it.
//
// A Compiler is safe for concurrent use.
type Compiler struct {
	operators   OperatorTable
	expressions ExpressionCompiler
	logger      *zap.Logger
	memo        *pure.Memo[*Lambda]
}

// New creates a Compiler with the default operator table and the expr-based
// expression compiler unless overridden by options.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		operators:   DefaultOperators(),
		expressions: ExprCompiler{},
		memo:        pure.NewMemo[*Lambda](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile returns the lambda for src, compiling it on first use.
// Calling Compile again with the same string returns the same *Lambda.
// Failures are returned as *InvalidLambdaError and are not cached.
func (c *Compiler) Compile(src string) (*Lambda, error) {
	return c.memo.Do([]pure.ComparableOrString{src}, func() (*Lambda, error) {
		l, err := c.compile(src)
		if err != nil {
			c.log().Debug("rejected lambda", zap.String("source", src), zap.Error(err))
			return nil, err
		}
		c.log().Debug("compiled lambda",
			zap.String("source", src),
			zap.String("form", string(l.Form)),
			zap.String("memoId", c.memo.Id),
		)
		return l, nil
	})
}

// Must is the panic-on-failure variant of Compile.
func (c *Compiler) Must(src string) *Lambda {
	l, err := c.Compile(src)
	if err != nil {
		panic(err)
	}
	return l
}

// Precompile compiles every source up front and reports all failures at once.
func (c *Compiler) Precompile(srcs ...string) error {
	var errs error
	for _, src := range srcs {
		if _, err := c.Compile(src); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// Reset drops every compiled lambda. Later Compile calls build new instances.
func (c *Compiler) Reset() {
	c.memo.Clear()
}

func (c *Compiler) Stats() pure.Stats {
	return c.memo.Stats()
}

func (c *Compiler) compile(src string) (*Lambda, error) {
	if op, ok := c.operators[src]; ok {
		return &Lambda{Source: src, Form: FormOperator, fn: op}, nil
	}

	var (
		form   Form
		params []string
		body   string
	)
	if m := paramsForm.FindStringSubmatch(src); m != nil {
		names, err := parseParams(m[1])
		if err != nil {
			return nil, &InvalidLambdaError{Source: src, Cause: err}
		}
		form, params, body = FormParams, names, m[2]
	} else if m := positionalForm.FindStringSubmatch(src); m != nil {
		form, params, body = FormPositional, positionalParams, m[1]
	} else {
		return nil, &InvalidLambdaError{Source: src}
	}

	fn, err := c.expressions.Compile(params, body)
	if err != nil {
		return nil, &InvalidLambdaError{Source: src, Cause: err}
	}
	return &Lambda{Source: src, Form: form, Params: params, fn: fn}, nil
}

func (c *Compiler) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.Logger()
}

func parseParams(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, ",")
	names := make([]string, len(parts))
	for i, p := range parts {
		name := strings.TrimSpace(p)
		if !identifier.MatchString(name) {
			return nil, fmt.Errorf("bad parameter name %q", name)
		}
		names[i] = name
	}
	return names, nil
}

// Default is the process-wide compiler behind the package-level functions.
var Default = New()

// Compile compiles src with the Default compiler.
func Compile(src string) (*Lambda, error) {
	return Default.Compile(src)
}

// Must compiles src with the Default compiler and panics on failure.
func Must(src string) *Lambda {
	return Default.Must(src)
}

// Precompile warms the Default compiler.
func Precompile(srcs ...string) error {
	return Default.Precompile(srcs...)
}
