package intern

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/vparva/outcome/pkg/outcome"
)

// Table interns values by comparable key. The zero value is not usable;
// construct with New.
type Table[K comparable, V any] struct {
	build   func(K) V
	entries sync.Map
	flights singleflight.Group
}

// New builds a table around an infallible builder. Validation belongs in
// front of the table: by the time a key reaches Get it is canonical, so
// the builder has no error to report. A nil builder is a contract
// violation.
func New[K comparable, V any](build func(K) V) *Table[K, V] {
	if build == nil {
		panic(&outcome.ArgError{Op: "intern.New", Field: "build", Reason: "must not be nil"})
	}
	return &Table[K, V]{build: build}
}

// Get returns the interned instance for key, building it on first use.
// Concurrent first requests for the same key run the builder exactly once
// and all receive that one instance.
func (t *Table[K, V]) Get(key K) V {
	if v, ok := t.entries.Load(key); ok {
		return v.(V)
	}

	// Flight keys come from %#v and can coincide for distinct keys
	// (pointer keys render their pointees), so a flight only collapses
	// concurrent builds. The typed-key LoadOrStore pins decide what the
	// table holds, and the first store wins.
	v, _, _ := t.flights.Do(fmt.Sprintf("%#v", key), func() (any, error) {
		if existing, ok := t.entries.Load(key); ok {
			return existing, nil
		}
		built, _ := t.entries.LoadOrStore(key, t.build(key))
		return built, nil
	})
	pinned, _ := t.entries.LoadOrStore(key, v)
	return pinned.(V)
}

// Len counts the interned entries.
func (t *Table[K, V]) Len() int {
	n := 0
	t.entries.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// Reset drops every interned entry, so following Gets rebuild. Intended
// for tests; Gets racing a Reset may repopulate the table immediately.
func (t *Table[K, V]) Reset() {
	t.entries.Clear()
}
