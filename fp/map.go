package fp

// Map applies f to every value of src. f answers no key, so the results are
// numbered 0, 1, 2... in iteration order whatever the keys of src.
//
//	fp.Map(square, fp.FromSlice([]int{1, 2, 3, 4})).Values() // [1 4 9 16]
func Map[K comparable, V, U any](f func(V) U, src Source[K, V]) *Table[int, U] {
	return MapPairs(func(v V, _ K) (U, bool) { return f(v), true }, src)
}

// MapPairs applies f to every pair of src and numbers the results densely.
// Pairs for which f answers false are dropped without leaving a gap.
func MapPairs[K comparable, V, U any](f func(V, K) (U, bool), src Source[K, V]) *Table[int, U] {
	out := NewSequence[U]()
	for k, v := range src.All() {
		if u, ok := f(v, k); ok {
			out.Append(u)
		}
	}
	return out
}

// MapKeyed lets f choose the key of every result: result[k2] = u.
// Pairs for which f answers false are dropped.
func MapKeyed[K, K2 comparable, V, U any](f func(K, V) (K2, U, bool), src Source[K, V]) *Table[K2, U] {
	out := NewTable[K2, U]()
	for k, v := range src.All() {
		if k2, u, ok := f(k, v); ok {
			out.Set(k2, u)
		}
	}
	return out
}

// Filter keeps the pairs of src for which pred holds. A positional source is
// re-indexed densely; other sources keep their keys.
//
//	fp.Filter(isEven, fp.FromSlice([]int{1, 2, 3, 4})).Values() // [2 4]
func Filter[K comparable, V any](pred func(V, K) bool, src Source[K, V]) *Table[K, V] {
	out := newTableLike[K, V](src)
	for k, v := range src.All() {
		if !pred(v, k) {
			continue
		}
		if out.Positional() {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	return out
}

// Collect materializes src into a table with the same keys.
func Collect[K comparable, V any](src Source[K, V]) *Table[K, V] {
	return Filter(func(V, K) bool { return true }, src)
}

// Reduce folds the values of src from the left, in iteration order. Keys are ignored.
func Reduce[K comparable, V, A any](f func(A, V) A, init A, src Source[K, V]) A {
	acc := init
	for _, v := range src.All() {
		acc = f(acc, v)
	}
	return acc
}
