package fp

import (
	"iter"
	"maps"
)

// Table is the container the collection combinators build. Writing a key twice
// keeps its first position and the last value, like result[key] = value.
//
// A Table built from a positional source is itself positional: its keys are
// 0..Len()-1 in order, and Source() walks it as a sequence again.
type Table[K comparable, V any] struct {
	keys   []K
	values map[K]V
	index  func(int) K
}

// NewTable returns an empty associative table.
func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{values: make(map[K]V)}
}

// NewSequence returns an empty positional table keyed 0..Len()-1.
func NewSequence[V any]() *Table[int, V] {
	t := NewTable[int, V]()
	t.index = func(n int) int { return n }
	return t
}

func newTableLike[K comparable, V any, U any](src Source[K, U]) *Table[K, V] {
	t := NewTable[K, V]()
	if src.Positional() {
		t.index = src.index
	}
	return t
}

// Set writes value under key.
func (t *Table[K, V]) Set(key K, value V) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Append writes value under the next dense key. It panics on an associative table.
func (t *Table[K, V]) Append(value V) {
	if t.index == nil {
		panic("fp: Append on an associative table")
	}
	t.Set(t.index(len(t.keys)), value)
}

func (t *Table[K, V]) Get(key K) (V, bool) {
	v, ok := t.values[key]
	return v, ok
}

func (t *Table[K, V]) Len() int {
	return len(t.keys)
}

func (t *Table[K, V]) Positional() bool {
	return t.index != nil
}

// Keys returns the keys in insertion order.
func (t *Table[K, V]) Keys() []K {
	return append([]K(nil), t.keys...)
}

// Values returns the values in insertion order.
func (t *Table[K, V]) Values() []V {
	out := make([]V, len(t.keys))
	for i, k := range t.keys {
		out[i] = t.values[k]
	}
	return out
}

// Map returns a copy of the table as a plain map.
func (t *Table[K, V]) Map() map[K]V {
	return maps.Clone(t.values)
}

// All walks the table in insertion order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range t.keys {
			if !yield(k, t.values[k]) {
				return
			}
		}
	}
}

// Source walks the table in insertion order, positionally if the table is positional.
func (t *Table[K, V]) Source() Source[K, V] {
	return tableSource[K, V]{t}
}

type tableSource[K comparable, V any] struct {
	t *Table[K, V]
}

func (s tableSource[K, V]) All() iter.Seq2[K, V] { return s.t.All() }
func (s tableSource[K, V]) Positional() bool     { return s.t.Positional() }
func (s tableSource[K, V]) index(n int) K {
	if s.t.index == nil {
		var zero K
		return zero
	}
	return s.t.index(n)
}
