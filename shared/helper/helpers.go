package helper

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedType = errors.New("unexpected type")
	ErrEmptyResult    = errors.New("empty result")
)

// GetTypedValueOf safely asserts a dynamic value to the expected type T.
// A nil value yields the zero value of T, the way an absent result reads in a tuple.
func GetTypedValueOf[T any](v any) (T, error) {
	var zero T
	if v == nil {
		return zero, nil
	}
	val, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, zero, v)
	}
	return val, nil
}

// First extracts the first value of a result tuple as T.
func First[T any](tuple []any) (T, error) {
	if len(tuple) == 0 {
		var zero T
		return zero, ErrEmptyResult
	}
	return GetTypedValueOf[T](tuple[0])
}

// MustFirst is the panic-on-failure variant of First.
func MustFirst[T any](tuple []any) T {
	res, err := First[T](tuple)
	if err != nil {
		panic(err)
	}
	return res
}

// MustGetTypedValue is the panic-on-failure variant of GetTypedValueOf.
func MustGetTypedValue[T any](v any) T {
	res, err := GetTypedValueOf[T](v)
	if err != nil {
		panic(err)
	}
	return res
}
