// Package pure provides memoization for pure functions.
//
// Memoizing is not just a way to make code faster. It forces the question:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// Features:
//   - Memoize: wraps a dynamic Func, keyed by a Normalizer over the argument list.
//   - MemoizeI1O1 to MemoizeI4O2: typed memoizers for common arities.
//   - Memo: the underlying trie-backed cache, safe for concurrent use, with
//     per-key deduplication of in-flight computations.
//
// Every cache in this package grows without bound. Nothing is evicted and
// nothing expires; Clear is the only way to shrink a cache. Memoize only
// functions whose argument domain is small and stable.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
// A cache hit silently returns the stored result.
package pure
