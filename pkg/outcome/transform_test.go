package outcome

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap_AppliesOnOk(t *testing.T) {
	t.Parallel()

	out := Ok(42).Map(func(v int) int { return v * 2 })
	if !out.IsOk() || out.Value() != 84 {
		t.Fatalf("expected Ok(84), got %v", out)
	}
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	out := Map(Ok(5), strconv.Itoa)
	if !out.IsOk() || out.Value() != "5" {
		t.Fatalf("expected Ok(\"5\"), got %v", out)
	}
}

func TestMap_PropagatesErrWithoutInvoking(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Err[int]("boom").Map(func(v int) int {
		calls++
		return v * 2
	})

	if !out.IsErr() || out.ErrorMessage() != "boom" {
		t.Fatalf("expected Err(boom), got %v", out)
	}
	if calls != 0 {
		t.Fatalf("mapper must not run on Err, ran %d times", calls)
	}
}

func TestMap_RecoversPanicIntoErr(t *testing.T) {
	t.Parallel()

	out := Ok(10).Map(func(v int) int {
		panic("mapper exploded")
	})
	if !out.IsErr() || out.ErrorMessage() != "mapper exploded" {
		t.Fatalf("expected Err(mapper exploded), got %v", out)
	}

	cause := errors.New("typed failure")
	out2 := Map(Ok(10), func(v int) string {
		panic(cause)
	})
	if !out2.IsErr() || out2.ErrorMessage() != "typed failure" || !errors.Is(out2.Cause(), cause) {
		t.Fatalf("expected Err carrying the panic error, got %v (cause=%v)", out2, out2.Cause())
	}
}

func TestMap_AbsentResultBecomesErr(t *testing.T) {
	t.Parallel()

	// the mapper result is wrapped by Ok, so an absent result is caught and
	// converted rather than escaping as a panic
	out := Map(Ok(1), func(int) *int { return nil })
	if !out.IsErr() || !errors.Is(out.Cause(), ErrInvalidArgument) {
		t.Fatalf("expected Err wrapping ErrInvalidArgument, got %v", out)
	}
}

func TestFlatMap_Composes(t *testing.T) {
	t.Parallel()

	positive := func(v int) Outcome[int] {
		if v > 0 {
			return Ok(v)
		}
		return Err[int]("negative")
	}

	if got := Ok(5).FlatMap(positive); !got.IsOk() || got.Value() != 5 {
		t.Fatalf("expected Ok(5), got %v", got)
	}
	if got := Ok(-5).FlatMap(positive); !got.IsErr() || got.ErrorMessage() != "negative" {
		t.Fatalf("expected Err(negative), got %v", got)
	}
}

func TestFlatMap_NoDoubleWrap(t *testing.T) {
	t.Parallel()

	inner := Err[string]("inner failure")
	out := FlatMap(Ok(1), func(int) Outcome[string] { return inner })
	if !out.IsErr() || out.ErrorMessage() != "inner failure" {
		t.Fatalf("expected the inner Err returned directly, got %v", out)
	}
}

func TestFlatMap_PropagatesErrWithoutInvoking(t *testing.T) {
	t.Parallel()

	calls := 0
	out := FlatMap(Err[int]("stop"), func(v int) Outcome[string] {
		calls++
		return Ok("never")
	})
	if !out.IsErr() || out.ErrorMessage() != "stop" {
		t.Fatalf("expected Err(stop), got %v", out)
	}
	if calls != 0 {
		t.Fatalf("binder must not run on Err, ran %d times", calls)
	}
}

func TestFlatMap_RecoversPanicIntoErr(t *testing.T) {
	t.Parallel()

	out := FlatMap(Ok(1), func(int) Outcome[int] {
		panic("binder exploded")
	})
	if !out.IsErr() || out.ErrorMessage() != "binder exploded" {
		t.Fatalf("expected Err(binder exploded), got %v", out)
	}
}

func TestFlatMap_Associativity(t *testing.T) {
	t.Parallel()

	f := func(v int) Outcome[int] { return Ok(v + 1) }
	g := func(v int) Outcome[int] { return Ok(v * 3) }

	for _, start := range []Outcome[int]{Ok(1), Ok(7), Ok(40)} {
		left := start.FlatMap(f).FlatMap(g)
		right := start.FlatMap(func(v int) Outcome[int] { return f(v).FlatMap(g) })

		if left.Value() != right.Value() {
			t.Fatalf("associativity broken for %v: %v vs %v", start, left, right)
		}
	}
}

func TestOrElse_NoOpOnOk(t *testing.T) {
	t.Parallel()

	calls := 0
	orig := Ok(9)
	out := orig.OrElse(func() Outcome[int] {
		calls++
		return Ok(-1)
	})

	if out.Value() != 9 || out.ID() != orig.ID() {
		t.Fatalf("expected the original outcome unchanged, got %v", out)
	}
	if calls != 0 {
		t.Fatalf("fallback must not run on Ok, ran %d times", calls)
	}
}

func TestOrElse_DelegatesOnErr(t *testing.T) {
	t.Parallel()

	out := Err[string]("fail").OrElse(func() Outcome[string] { return Ok("fallback") })
	if !out.IsOk() || out.Value() != "fallback" {
		t.Fatalf("expected Ok(fallback), got %v", out)
	}

	out2 := Err[string]("first").OrElse(func() Outcome[string] { return Err[string]("second") })
	if !out2.IsErr() || out2.ErrorMessage() != "second" {
		t.Fatalf("expected Err(second), got %v", out2)
	}
}

func TestOrElse_DoesNotRecoverPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		p := recover()
		if p != "fallback exploded" {
			t.Fatalf("expected the fallback panic to escape unconverted, got %v", p)
		}
	}()
	Err[int]("boom").OrElse(func() Outcome[int] {
		panic("fallback exploded")
	})
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	out := ErrWith[int]("raw", cause).MapErr(func(m string) string { return "wrapped: " + m })
	if out.ErrorMessage() != "wrapped: raw" || !errors.Is(out.Cause(), cause) {
		t.Fatalf("expected rewritten message with cause kept, got %v (cause=%v)", out, out.Cause())
	}

	ok := Ok(1).MapErr(func(m string) string { return "never" })
	if !ok.IsOk() || ok.Value() != 1 {
		t.Fatalf("expected Ok untouched, got %v", ok)
	}
}

func TestTransforms_DoNotMutateOriginal(t *testing.T) {
	t.Parallel()

	orig := Ok(2)
	_ = orig.Map(func(v int) int { return v * 100 })
	_ = orig.FlatMap(func(v int) Outcome[int] { return Err[int]("x") })

	if !orig.IsOk() || orig.Value() != 2 {
		t.Fatalf("original outcome mutated: %v", orig)
	}
}
