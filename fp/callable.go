package fp

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/fun_ive_go/lambda"
	"github.com/on-the-ground/fun_ive_go/pure"
)

var ErrNotCallable = errors.New("not callable")

// Callable resolves fn to a Func. Strings are compiled as lambdas with the
// lambda.Default compiler; lambdas, memoized functions and Funcs are used as is.
func Callable(fn any) (Func, error) {
	switch f := fn.(type) {
	case string:
		l, err := lambda.Compile(f)
		if err != nil {
			return nil, err
		}
		return l.Func(), nil
	case *lambda.Lambda:
		return f.Func(), nil
	case *pure.Memoized:
		return f.Func(), nil
	case Func:
		return f, nil
	case func(...any) []any:
		return f, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
}

// MustCallable is the panic-on-failure variant of Callable.
func MustCallable(fn any) Func {
	f, err := Callable(fn)
	if err != nil {
		panic(err)
	}
	return f
}
