package pure

import (
	"fmt"
)

// MemoizeI1O1 memoizes a one-argument pure function.
// Arguments implementing fmt.Stringer are keyed by String(); any other argument
// must be comparable. The cache is unbounded.
func MemoizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
) func(I1) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1))
		},
	)
	return func(i1 I1) O1 {
		return tableized(i1)
	}
}

func MemoizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
) func(I1, I2) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2))
		},
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized(i1, i2)
	}
}

func MemoizeI3O1[I1, I2, I3 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3) O1,
) func(I1, I2, I3) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
	)
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return tableized(i1, i2, i3)
	}
}

func MemoizeI4O1[I1, I2, I3, I4 ComparableOrStringer, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
) func(I1, I2, I3, I4) O1 {
	tableized := tableize(
		func(args ...ComparableOrStringer) O1 {
			return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return tableized(i1, i2, i3, i4)
	}
}

func MemoizeI1O2[I1 ComparableOrStringer, O1, O2 any](
	pureFn func(I1) (O1, O2),
) func(I1) (O1, O2) {
	tableized := tableize(
		func(args ...ComparableOrStringer) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1))
			return pair[O1, O2]{v1, v2}
		},
	)
	return func(i1 I1) (O1, O2) {
		res := tableized(i1)
		return res.O1, res.O2
	}
}

func MemoizeI2O2[I1, I2 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2) (O1, O2),
) func(I1, I2) (O1, O2) {
	tableized := tableize(
		func(args ...ComparableOrStringer) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2))
			return pair[O1, O2]{v1, v2}
		},
	)
	return func(i1 I1, i2 I2) (O1, O2) {
		res := tableized(i1, i2)
		return res.O1, res.O2
	}
}

func MemoizeI3O2[I1, I2, I3 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
) func(I1, I2, I3) (O1, O2) {
	tableized := tableize(
		func(args ...ComparableOrStringer) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
			return pair[O1, O2]{v1, v2}
		},
	)
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		res := tableized(i1, i2, i3)
		return res.O1, res.O2
	}
}

func MemoizeI4O2[I1, I2, I3, I4 ComparableOrStringer, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
) func(I1, I2, I3, I4) (O1, O2) {
	tableized := tableize(
		func(args ...ComparableOrStringer) pair[O1, O2] {
			v1, v2 := pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
			return pair[O1, O2]{v1, v2}
		},
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		res := tableized(i1, i2, i3, i4)
		return res.O1, res.O2
	}
}

type pair[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}

func tableize[O any](
	pureFn func(...ComparableOrStringer) O,
) func(...ComparableOrStringer) O {
	memo := NewMemo[O]()
	return func(args ...ComparableOrStringer) O {
		keys := make([]ComparableOrString, len(args))
		for i, arg := range args {
			keys[i] = tableKey(arg)
		}
		v, _ := memo.Do(keys, func() (O, error) {
			return pureFn(args...), nil
		})
		return v
	}
}
