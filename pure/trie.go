package pure

import (
	"sync"
	"sync/atomic"
)

// Trie stores values under a path of argument keys.
// It never evicts: entries live until Clear.
type Trie[O any] struct {
	root atomic.Pointer[sync.Map]
	size atomic.Int64
}

func (t *Trie[O]) Load(keys []ComparableOrString) (O, bool) {
	m, k, ok := t.lookup(keys)
	if ok {
		if v, found := m.Load(k); found {
			o, _ := v.(O)
			return o, true
		}
	}
	var zero O
	return zero, false
}

// lookup walks the path without creating intermediate nodes.
func (t *Trie[O]) lookup(keys []ComparableOrString) (*sync.Map, any, bool) {
	length := len(keys)
	if length == 0 {
		panic("lookup: empty keys")
	}

	targetMap := t.root.Load()
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			return nil, nil, false
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1], true
}

func (t *Trie[O]) traverse(keys []ComparableOrString) (*sync.Map, any) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	targetMap := t.root.Load()
	for _, k := range keys[:length-1] {
		v, _ := targetMap.LoadOrStore(k, &sync.Map{})
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

// Store sets the value under keys, overwriting any previous value.
func (t *Trie[O]) Store(keys []ComparableOrString, value O) {
	m, k := t.traverse(keys)
	if _, loaded := m.Swap(k, value); !loaded {
		t.size.Add(1)
	}
}

// Len reports the number of stored values.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

// Clear drops every stored value.
func (t *Trie[O]) Clear() {
	t.root.Store(&sync.Map{})
	t.size.Store(0)
}

func NewTrie[O any]() *Trie[O] {
	t := &Trie[O]{}
	t.root.Store(&sync.Map{})
	return t
}
