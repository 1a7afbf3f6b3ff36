package pure

import (
	"fmt"
	"strings"
)

// Func is the dynamic calling convention: any arguments in, an ordered result tuple out.
type Func func(args ...any) []any

// Normalizer turns an argument list into the cache key of a memoized call.
type Normalizer func(args []any) string

// Stringify is the default Normalizer: a deterministic rendering of the whole
// argument list, each argument prefixed with its dynamic type.
// Maps print with sorted keys; pointers print their address.
func Stringify(args []any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%T:%#v", arg, arg)
	}
	return b.String()
}

// Memoized is a Func wrapped with an unbounded result cache.
type Memoized struct {
	fn        Func
	normalize Normalizer
	memo      *Memo[[]any]
}

// Memoize wraps a pure function with a cache keyed by normalize(args).
// A nil normalize uses Stringify.
//
// The cache grows without bound and is only emptied by Clear. Use Memoize for
// functions with a small, stable argument domain. fn must be free of side
// effects: a hit returns the stored tuple without calling fn again, however
// the world has changed since.
func Memoize(fn Func, normalize Normalizer) *Memoized {
	if normalize == nil {
		normalize = Stringify
	}
	return &Memoized{
		fn:        fn,
		normalize: normalize,
		memo:      NewMemo[[]any](),
	}
}

// Call returns the cached tuple for args, invoking the wrapped function on a miss.
// A panic in the wrapped function propagates and caches nothing.
func (m *Memoized) Call(args ...any) []any {
	res, _ := m.memo.Do([]ComparableOrString{m.normalize(args)}, func() ([]any, error) {
		return m.fn(args...), nil
	})
	return res
}

// Func exposes the memoized function in the dynamic calling convention.
func (m *Memoized) Func() Func {
	return m.Call
}

func (m *Memoized) Clear() {
	m.memo.Clear()
}

func (m *Memoized) Stats() Stats {
	return m.memo.Stats()
}
