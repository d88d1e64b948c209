package intern

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vparva/outcome/pkg/outcome"
)

type record struct {
	key string
}

func TestGetReturnsSameInstance(t *testing.T) {
	t.Parallel()

	table := New(func(k string) *record { return &record{key: k} })

	first := table.Get("alpha")
	second := table.Get("alpha")
	if first != second {
		t.Fatalf("repeated Get returned a different instance")
	}
	if first.key != "alpha" {
		t.Fatalf("builder saw key %q", first.key)
	}
	if table.Len() != 1 {
		t.Fatalf("Len = %d, want 1", table.Len())
	}
}

func TestDistinctKeysGetDistinctInstances(t *testing.T) {
	t.Parallel()

	table := New(func(k string) *record { return &record{key: k} })

	if table.Get("a") == table.Get("b") {
		t.Fatalf("distinct keys share an instance")
	}
	if table.Len() != 2 {
		t.Fatalf("Len = %d, want 2", table.Len())
	}
}

func TestConcurrentGetBuildsOnce(t *testing.T) {
	t.Parallel()

	var builds atomic.Int64
	table := New(func(k string) *record {
		builds.Add(1)
		return &record{key: k}
	})

	const callers = 32
	got := make([]*record, callers)
	var eg errgroup.Group
	for i := 0; i < callers; i++ {
		eg.Go(func() error {
			got[i] = table.Get("shared")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	for i := 1; i < callers; i++ {
		if got[i] != got[0] {
			t.Fatalf("caller %d received a different instance", i)
		}
	}
	if n := builds.Load(); n != 1 {
		t.Fatalf("builder ran %d times, want 1", n)
	}
}

func TestPointerKeysWithEqualPointeesStayIdempotent(t *testing.T) {
	t.Parallel()

	table := New(func(k *record) *record {
		time.Sleep(2 * time.Millisecond)
		return &record{key: k.key}
	})

	// Distinct pointer keys with equal pointees render identically under
	// %#v, so their first Gets may share one flight.
	k1 := &record{key: "same"}
	k2 := &record{key: "same"}

	first := make([]*record, 2)
	var eg errgroup.Group
	eg.Go(func() error {
		first[0] = table.Get(k1)
		return nil
	})
	eg.Go(func() error {
		first[1] = table.Get(k2)
		return nil
	})
	if err := eg.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}

	for i := 0; i < 8; i++ {
		if got := table.Get(k1); got != first[0] {
			t.Fatalf("Get(k1) switched instances on call %d", i)
		}
		if got := table.Get(k2); got != first[1] {
			t.Fatalf("Get(k2) switched instances on call %d", i)
		}
	}
}

func TestResetDropsEntries(t *testing.T) {
	t.Parallel()

	var builds atomic.Int64
	table := New(func(k string) *record {
		builds.Add(1)
		return &record{key: k}
	})

	before := table.Get("alpha")
	table.Reset()
	if table.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", table.Len())
	}

	after := table.Get("alpha")
	if before == after {
		t.Fatalf("Reset kept the old instance")
	}
	if n := builds.Load(); n != 2 {
		t.Fatalf("builder ran %d times, want 2", n)
	}
}

func TestNewNilBuilderPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		p := recover()
		if p == nil {
			t.Fatalf("expected a panic for the nil builder")
		}
		if err, ok := p.(error); !ok || !errors.Is(err, outcome.ErrInvalidArgument) {
			t.Fatalf("expected an ErrInvalidArgument panic, got %v", p)
		}
	}()
	New[string, int](nil)
}
