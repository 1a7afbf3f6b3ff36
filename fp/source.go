package fp

import (
	"iter"
	"maps"
)

// StepFunc advances a custom iteration. Given the state and the previous key
// it returns the next pair, or ok == false once the iteration is exhausted.
// It must be pure with respect to state.
type StepFunc[S any, K comparable, V any] func(state S, key K) (next K, value V, ok bool)

// Source is what the collection combinators walk: a slice, a map, a custom
// step function with its state, or any iter.Seq2.
//
// Source is sealed; build one with FromSlice, FromMap, FromStep, FromSeq or
// Table.Source. Positional sources (slices, and tables built from them) are
// re-indexed densely when a combinator drops entries.
type Source[K comparable, V any] interface {
	All() iter.Seq2[K, V]
	Positional() bool

	// index returns the key of the n-th element of a dense rebuild.
	index(n int) K
}

type sliceSource[V any] []V

// FromSlice walks s in order, yielding (index, value).
func FromSlice[V any](s []V) Source[int, V] {
	return sliceSource[V](s)
}

func (s sliceSource[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range s {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (sliceSource[V]) Positional() bool { return true }
func (sliceSource[V]) index(n int) int  { return n }

type mapSource[K comparable, V any] map[K]V

// FromMap walks m in unspecified order, yielding (key, value).
// Callers must not rely on the order being the same across walks.
func FromMap[K comparable, V any](m map[K]V) Source[K, V] {
	return mapSource[K, V](m)
}

func (m mapSource[K, V]) All() iter.Seq2[K, V] {
	return maps.All(m)
}

func (mapSource[K, V]) Positional() bool { return false }
func (mapSource[K, V]) index(int) K {
	var zero K
	return zero
}

type stepSource[S any, K comparable, V any] struct {
	step  StepFunc[S, K, V]
	state S
	init  K
}

// FromStep adapts a (step, state, initial key) triple. Every walk starts again
// from init, and step is never called once it has reported exhaustion.
func FromStep[S any, K comparable, V any](step StepFunc[S, K, V], state S, init K) Source[K, V] {
	return stepSource[S, K, V]{step: step, state: state, init: init}
}

func (s stepSource[S, K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		key := s.init
		for {
			next, v, ok := s.step(s.state, key)
			if !ok || !yield(next, v) {
				return
			}
			key = next
		}
	}
}

func (stepSource[S, K, V]) Positional() bool { return false }
func (stepSource[S, K, V]) index(int) K {
	var zero K
	return zero
}

type seqSource[K comparable, V any] iter.Seq2[K, V]

// FromSeq walks an iter.Seq2, keeping its keys.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) Source[K, V] {
	return seqSource[K, V](seq)
}

func (s seqSource[K, V]) All() iter.Seq2[K, V] {
	return iter.Seq2[K, V](s)
}

func (seqSource[K, V]) Positional() bool { return false }
func (seqSource[K, V]) index(int) K {
	var zero K
	return zero
}

// IPairs is the positional step function over a slice: keys run 0..len-1.
// Start it with the key -1.
func IPairs[V any](s []V, key int) (int, V, bool) {
	next := key + 1
	if next < 0 || next >= len(s) {
		var zero V
		return next, zero, false
	}
	return next, s[next], true
}
