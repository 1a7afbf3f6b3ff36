package lambda_test

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/fun_ive_go/lambda"
	"github.com/on-the-ground/fun_ive_go/pure"
)

// countingCompiler wraps the expr compiler and counts body compilations.
func countingCompiler(count *atomic.Int32) lambda.ExpressionCompiler {
	return lambda.ExpressionCompilerFunc(func(params []string, body string) (pure.Func, error) {
		count.Add(1)
		return lambda.ExprCompiler{}.Compile(params, body)
	})
}

func TestLambda_FormsAgree(t *testing.T) {
	c := lambda.New()
	for _, src := range []string{"<", "= _1 < _2", "|a,b| a<b"} {
		l, err := c.Compile(src)
		require.NoError(t, err, src)
		assert.Equal(t, []any{true}, l.Call(3, 5), src)
		assert.Equal(t, []any{false}, l.Call(5, 3), src)
	}
}

func TestLambda_FormDetection(t *testing.T) {
	c := lambda.New()

	op := c.Must("+")
	assert.Equal(t, lambda.FormOperator, op.Form)

	named := c.Must("| x , y | x + y")
	assert.Equal(t, lambda.FormParams, named.Form)
	assert.Equal(t, []string{"x", "y"}, named.Params)
	assert.Equal(t, []any{7}, named.Call(3, 4))

	positional := c.Must("=_1 * _2 + _3")
	assert.Equal(t, lambda.FormPositional, positional.Form)
	assert.Equal(t, []any{10}, positional.Call(2, 3, 4))
	assert.Equal(t, "=_1 * _2 + _3", positional.String())
}

func TestLambda_ArgumentBinding(t *testing.T) {
	c := lambda.New()

	// missing arguments read as nil, extra ones are ignored
	assert.Equal(t, []any{true}, c.Must("|a,b| b == nil").Call(1))
	assert.Equal(t, []any{1}, c.Must("|a| a").Call(1, 2, 3))
	assert.Equal(t, []any{9}, c.Must("= _9").Call(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	assert.Equal(t, []any{42}, c.Must("|| 42").Call())
}

func TestLambda_CompiledOnceAndShared(t *testing.T) {
	var count atomic.Int32
	c := lambda.New(lambda.WithExpressionCompiler(countingCompiler(&count)))

	l1, err := c.Compile("= _1 + 1")
	require.NoError(t, err)
	l2, err := c.Compile("= _1 + 1")
	require.NoError(t, err)

	assert.Same(t, l1, l2)
	assert.Equal(t, int32(1), count.Load())

	// no canonicalization: whitespace makes a distinct entry
	l3 := c.Must("=_1 + 1")
	assert.NotSame(t, l1, l3)
	assert.Equal(t, int32(2), count.Load())
}

func TestLambda_OperatorSkipsExpressionCompiler(t *testing.T) {
	var count atomic.Int32
	c := lambda.New(lambda.WithExpressionCompiler(countingCompiler(&count)))

	assert.Equal(t, []any{5}, c.Must("+").Call(2, 3))
	assert.Equal(t, int32(0), count.Load())
}

func TestLambda_Invalid(t *testing.T) {
	var count atomic.Int32
	c := lambda.New(lambda.WithExpressionCompiler(countingCompiler(&count)))

	for _, src := range []string{
		"not-an-operator-or-pattern",
		"",
		"|a b| a",
		"|a,1b| a",
		"= _1 <",
	} {
		l, err := c.Compile(src)
		assert.Nil(t, l, src)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, lambda.ErrInvalidLambda, src)

		var invalid *lambda.InvalidLambdaError
		require.True(t, errors.As(err, &invalid), src)
		assert.Equal(t, src, invalid.Source)
	}

	// a failed compile is retried, never cached
	_, err := c.Compile("= _1 <")
	assert.Error(t, err)
	assert.Equal(t, int32(2), count.Load())
	assert.Equal(t, 0, c.Stats().Entries)
}

func TestLambda_InvalidCarriesCause(t *testing.T) {
	errBody := errors.New("no bodies today")
	c := lambda.New(lambda.WithExpressionCompiler(lambda.ExpressionCompilerFunc(
		func([]string, string) (pure.Func, error) { return nil, errBody },
	)))

	_, err := c.Compile("= 1")
	assert.ErrorIs(t, err, lambda.ErrInvalidLambda)
	assert.ErrorIs(t, err, errBody)
	assert.Contains(t, err.Error(), `"= 1"`)
}

func TestLambda_ConcurrentFirstUse(t *testing.T) {
	var count atomic.Int32
	c := lambda.New(lambda.WithExpressionCompiler(countingCompiler(&count)))

	const n = 64
	var wg sync.WaitGroup
	got := make([]*lambda.Lambda, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			got[i] = c.Must("|a| a * 2")
		}(i)
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, got[0], l)
	}
	assert.Equal(t, int32(1), count.Load())
}

func TestLambda_RuntimeFailurePanics(t *testing.T) {
	lt := lambda.New().Must("= _1 < _2")

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, lambda.ErrEvaluation)
	}()
	lt.Call("a", 1)
}

func TestLambda_Precompile(t *testing.T) {
	c := lambda.New()

	require.NoError(t, c.Precompile("+", "= _1", "|a| a"))

	err := c.Precompile("= _1", "bogus", "|a|", "also bogus")
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Equal(t, 3, c.Stats().Entries)
}

func TestLambda_Reset(t *testing.T) {
	c := lambda.New()
	l1 := c.Must("= _1")
	c.Reset()
	l2 := c.Must("= _1")

	assert.NotSame(t, l1, l2)
	assert.Equal(t, l1.Call(3), l2.Call(3))
}

func TestLambda_WithOperators(t *testing.T) {
	ops := lambda.DefaultOperators()
	ops["max"] = func(args ...any) []any {
		a, b := args[0].(int), args[1].(int)
		if a > b {
			return []any{a}
		}
		return []any{b}
	}
	c := lambda.New(lambda.WithOperators(ops))

	assert.Equal(t, []any{7}, c.Must("max").Call(3, 7))
	_, err := lambda.New().Compile("max")
	assert.ErrorIs(t, err, lambda.ErrInvalidLambda)

	_, err = lambda.New(lambda.WithOperators(nil)).Compile("+")
	assert.ErrorIs(t, err, lambda.ErrInvalidLambda)
}

func TestLambda_LogsCompilation(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	c := lambda.New(lambda.WithLogger(zap.New(core)))

	c.Must("= _1")
	c.Must("= _1")
	_, _ = c.Compile("nope")

	compiled := logs.FilterMessage("compiled lambda").All()
	require.Len(t, compiled, 1)
	assert.Equal(t, "= _1", compiled[0].ContextMap()["source"])
	assert.Equal(t, "positional", compiled[0].ContextMap()["form"])
	assert.Equal(t, 1, logs.FilterMessage("rejected lambda").Len())
}

func TestLambda_DefaultCompiler(t *testing.T) {
	l1, err := lambda.Compile("|s| s + '!'")
	require.NoError(t, err)
	assert.Same(t, l1, lambda.Must("|s| s + '!'"))
	assert.Equal(t, []any{"go!"}, l1.Call("go"))
	assert.NoError(t, lambda.Precompile("|s| s + '!'"))
}

func ExampleCompiler_Compile() {
	c := lambda.New()
	lt, _ := c.Compile("|a,b| a < b")
	fmt.Println(lt.Call(3, 5)[0], lt.Call(5, 3)[0])
	// Output: true false
}
