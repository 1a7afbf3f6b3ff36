package fp

import (
	"cmp"
	"maps"
	"slices"
)

// Zip transposes a table of tables: out[k][outer] = tt[outer][k] for every
// inner key k found in any inner table. Inner tables with differing keys give
// a sparse transpose. On same-keyed input Zip is its own inverse.
func Zip[K1, K2 comparable, V any](tt map[K1]map[K2]V) map[K2]map[K1]V {
	out := make(map[K2]map[K1]V)
	for outer, inner := range tt {
		for k, v := range inner {
			row, ok := out[k]
			if !ok {
				row = make(map[K1]V)
				out[k] = row
			}
			row[outer] = v
		}
	}
	return out
}

// ZipSlices transposes a sequence of sequences: out[k] holds the k-th element
// of every row long enough to have one, in row order. On rectangular input
// ZipSlices is its own inverse.
func ZipSlices[V any](tt [][]V) [][]V {
	width := 0
	for _, row := range tt {
		width = max(width, len(row))
	}
	out := make([][]V, width)
	for _, row := range tt {
		for k, v := range row {
			out[k] = append(out[k], v)
		}
	}
	return out
}

// MapWith spreads every argument list of src into f and keeps the keys of src.
func MapWith[K comparable, V, R any](f func(...V) R, src Source[K, []V]) *Table[K, R] {
	out := newTableLike[K, R](src)
	for k, args := range src.All() {
		if out.Positional() {
			out.Append(f(args...))
		} else {
			out.Set(k, f(args...))
		}
	}
	return out
}

// ZipWith applies f across the columns of tt: out[k] = f(tt[0][k], tt[1][k], ...).
func ZipWith[V, R any](f func(...V) R, tt [][]V) *Table[int, R] {
	return MapWith(f, FromSlice(ZipSlices(tt)))
}

// ZipWithKeyed is ZipWith over a table of tables: out[k] = f(tt[o1][k], tt[o2][k], ...)
// with o1 < o2 < ... the outer keys that hold an entry for k.
func ZipWithKeyed[K1 cmp.Ordered, K2 comparable, V, R any](f func(...V) R, tt map[K1]map[K2]V) *Table[K2, R] {
	columns := make(map[K2][]V)
	for k, col := range Zip(tt) {
		args := make([]V, 0, len(col))
		for _, outer := range slices.Sorted(maps.Keys(col)) {
			args = append(args, col[outer])
		}
		columns[k] = args
	}
	return MapWith(f, FromMap(columns))
}
