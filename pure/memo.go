package pure

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/on-the-ground/fun_ive_go/shared/log"
)

type ComparableOrStringer any
type ComparableOrString any

// Memo is an unbounded cache of computed results keyed by argument paths.
//
// Results are stored on the first successful computation and returned on every
// later lookup with the same key. Nothing is ever evicted, so a Memo only suits
// functions whose argument domain is small and stable. Failed computations
// (an error or a panic) store nothing.
//
// Memo is safe for concurrent use. Concurrent first use of one key runs the
// computation once and shares its outcome.
type Memo[O any] struct {
	Id string

	trie    *Trie[O]
	flights singleflight.Group
	created time.Time
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// NewMemo creates an empty memo cache.
func NewMemo[O any]() *Memo[O] {
	m := &Memo[O]{
		Id:      uuid.New().String(),
		trie:    NewTrie[O](),
		created: time.Now(),
	}
	log.Logger().Debug("created memo cache", zap.String("memoId", m.Id))
	return m
}

// Do returns the value cached under keys, computing and storing it on a miss.
// Errors from compute are returned to every caller sharing the flight and are
// not cached. A panic in compute is re-raised with its original value in every
// caller sharing the flight, and nothing is stored.
func (m *Memo[O]) Do(keys []ComparableOrString, compute func() (O, error)) (O, error) {
	if v, ok := m.trie.Load(keys); ok {
		m.hits.Add(1)
		return v, nil
	}

	key := flightKey(keys)
	res, err, _ := m.flights.Do(key, func() (res any, err error) {
		// a flight that finished between our Load and Do has already stored it
		if v, ok := m.trie.Load(keys); ok {
			m.hits.Add(1)
			return v, nil
		}
		m.misses.Add(1)
		log.Logger().Debug("memo miss",
			zap.String("memoId", m.Id),
			zap.String("keyDigest", keyDigest(key)),
		)
		defer func() {
			if r := recover(); r != nil {
				res, err = panicked{r}, nil
			}
		}()
		v, err := compute()
		if err != nil {
			return nil, err
		}
		m.trie.Store(keys, v)
		return v, nil
	})
	if p, ok := res.(panicked); ok {
		panic(p.value)
	}
	if err != nil {
		var zero O
		return zero, err
	}
	// res holds a nil interface when O is an interface type and compute answered nil
	o, _ := res.(O)
	return o, nil
}

// Load returns the cached value without computing anything.
func (m *Memo[O]) Load(keys []ComparableOrString) (O, bool) {
	return m.trie.Load(keys)
}

// Clear empties the cache. Counters are kept.
func (m *Memo[O]) Clear() {
	m.trie.Clear()
	log.Logger().Debug("cleared memo cache", zap.String("memoId", m.Id))
}

// Stats is a snapshot of a memo cache.
type Stats struct {
	Id      string
	Entries int
	Hits    uint64
	Misses  uint64
	// Span covers the time from cache creation to the snapshot.
	Span timespan.TimeSpan
}

func (m *Memo[O]) Stats() Stats {
	return Stats{
		Id:      m.Id,
		Entries: m.trie.Len(),
		Hits:    m.hits.Load(),
		Misses:  m.misses.Load(),
		Span:    timespan.BetweenTimes(m.created, time.Now()),
	}
}

// panicked carries a recovered panic value out of a flight.
type panicked struct {
	value any
}

// flightKey renders a key path exactly. Type names are mixed in so that 1 and
// int64(1) do not share a flight.
func flightKey(keys []ComparableOrString) string {
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%T:%#v;", k, k)
	}
	return b.String()
}

// keyDigest shortens a flight key for log fields.
func keyDigest(key string) string {
	return strconv.FormatUint(xxhash.Sum64String(key), 16)
}
