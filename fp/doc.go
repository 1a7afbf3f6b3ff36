// Package fp provides the combinators: mapping, filtering, folding, zipping,
// composition, currying, argument binding and case dispatch.
//
// Collection combinators walk a Source, which is either a plain container
// (FromSlice, FromMap), a custom step function with its state (FromStep), or
// an iter.Seq2 (FromSeq). Map and MapPairs produce only values, so they
// always build a dense sequence. Filter and Collect write result[key] = value,
// so a positional source stays a dense sequence and an associative one stays
// a keyed table. MapKeyed lets the mapping function choose the keys.
//
// Function combinators (Compose, Pipe, Curry, Bind) work on the dynamic Func
// convention, where results are ordered tuples passed whole from stage to
// stage. Lambda strings become Funcs through Callable:
//
//	inc := fp.MustCallable("= _1 + 1")
//	double := fp.MustCallable("|x| x * 2")
//	fp.Compose(double, inc)(3) // []any{8}
package fp
