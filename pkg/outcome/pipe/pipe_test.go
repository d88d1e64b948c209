package pipe

import (
	"context"
	"slices"
	"strconv"
	"testing"

	"go.uber.org/goleak"

	"github.com/vparva/outcome/pkg/outcome"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_AppliesStageToEveryInput(t *testing.T) {
	ctx := context.Background()

	out := Run(ctx, Source(ctx, 1, 2, 3, 4, 5), Map(func(_ context.Context, v int) int {
		return v * 2
	}))

	var got []int
	for o := range out {
		if !o.IsOk() {
			t.Fatalf("unexpected failure: %v", o)
		}
		got = append(got, o.Value())
	}
	slices.Sort(got)
	want := []int{2, 4, 6, 8, 10}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRun_FanOutOverWorkers(t *testing.T) {
	ctx := WithWorkers(context.Background(), 4)

	values := make([]int, 50)
	for i := range values {
		values[i] = i
	}

	out := Run(ctx, SourceSlice(ctx, values), Map(func(_ context.Context, v int) int {
		return v + 1
	}))

	got := make([]int, 0, len(values))
	for o := range out {
		got = append(got, o.Value())
	}
	if len(got) != len(values) {
		t.Fatalf("expected %d results, got %d", len(values), len(got))
	}
	slices.Sort(got)
	for i, v := range got {
		if v != i+1 {
			t.Fatalf("missing result: position %d holds %d", i, v)
		}
	}
}

func TestThrough_ChangesValueType(t *testing.T) {
	ctx := context.Background()

	out := Through(ctx, Source(ctx, 7, 8), Map(func(_ context.Context, v int) string {
		return strconv.Itoa(v)
	}))

	got := Collect(context.Background(), out)
	want := []string{"7", "8"}
	if !slices.Equal(got2strings(got), want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func got2strings(outs []outcome.Outcome[string]) []string {
	rendered := make([]string, 0, len(outs))
	for _, o := range outs {
		rendered = append(rendered, o.Value())
	}
	slices.Sort(rendered)
	return rendered
}

func TestValidateStage_PartitionsStream(t *testing.T) {
	ctx := context.Background()

	out := Run(ctx, Source(ctx, 1, -2, 3, -4), Validate(func(_ context.Context, v int) bool {
		return v > 0
	}, "negative input"))

	okCount, errCount := 0, 0
	for o := range out {
		if o.IsOk() {
			okCount++
			continue
		}
		errCount++
		if o.ErrorMessage() != "negative input" {
			t.Fatalf("unexpected message %q", o.ErrorMessage())
		}
	}
	if okCount != 2 || errCount != 2 {
		t.Fatalf("expected 2 ok and 2 err, got %d and %d", okCount, errCount)
	}
}

func TestStagesCompose(t *testing.T) {
	ctx := context.Background()

	validated := Run(ctx, Source(ctx, 1, 2, 3, 40), Validate(func(_ context.Context, v int) bool {
		return v < 10
	}, "too big"))
	squared := Run(ctx, validated, Map(func(_ context.Context, v int) int {
		return v * v
	}))
	rendered := Finally(ctx, squared, FinallyHandlers[int, string]{
		OnOk:  func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		OnErr: func(_ context.Context, err error) string { return "err:" + err.Error() },
	})

	got := Collect(context.Background(), rendered)
	slices.Sort(got)
	want := []string{"err:too big", "ok:1", "ok:4", "ok:9"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestErrSkipsLaterStages(t *testing.T) {
	ctx := context.Background()
	mapped := 0

	out := Run(ctx, SourceOutcomes(ctx, outcome.Ok(1), outcome.Err[int]("poisoned")),
		Map(func(_ context.Context, v int) int {
			mapped++
			return v * 10
		}))

	results := Collect(context.Background(), out)
	if len(results) != 2 {
		t.Fatalf("expected both outcomes forwarded, got %d", len(results))
	}
	if mapped != 1 {
		t.Fatalf("mapper ran %d times, expected once", mapped)
	}
}

func TestTryStage_CapturesErrors(t *testing.T) {
	ctx := context.Background()

	out := Through(ctx, Source(ctx, "10", "x"), Try(func(_ context.Context, s string) (int, error) {
		return strconv.Atoi(s)
	}))

	okCount, errCount := 0, 0
	for o := range out {
		if o.IsOk() {
			okCount++
		} else {
			errCount++
		}
	}
	if okCount != 1 || errCount != 1 {
		t.Fatalf("expected 1 ok and 1 err, got %d and %d", okCount, errCount)
	}
}

func TestTeeStage_ObservesWithoutChanging(t *testing.T) {
	ctx := context.Background()
	seen := make(chan int, 3)

	out := Run(ctx, Source(ctx, 1, 2, 3), Tee(func(_ context.Context, o outcome.Outcome[int]) {
		seen <- o.Value()
	}))

	results := Collect(context.Background(), out)
	close(seen)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	observed := 0
	for range seen {
		observed++
	}
	if observed != 3 {
		t.Fatalf("expected 3 observations, got %d", observed)
	}
}

func TestPreCanceledContextProducesNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	startFailed := false
	inputs := SourceWith(ctx, EmitHandlers[int]{
		OnStartFail: func(_ context.Context, values []int) { startFailed = true },
	}, 1, 2, 3)

	out := RunWith(ctx, inputs, Map(func(_ context.Context, v int) int { return v }),
		CancelHandlers[int, int]{OnCancel: CancelRemaining[int, int]}, nil, 2)

	got := Collect(context.Background(), out)
	if len(got) != 0 {
		t.Fatalf("expected no output from a pre-canceled pipeline, got %d", len(got))
	}
	if !startFailed {
		t.Fatalf("source did not report the failed start")
	}
}

func TestCancellationDrainsQueuedInputs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	inputs := make(chan outcome.Outcome[int])

	out := RunWith(ctx, inputs, Map(func(_ context.Context, v int) int { return v }),
		CancelHandlers[int, int]{
			OnCancel:            CancelRemaining[int, int],
			OnCancelUnprocessed: CancelRemainingOne[int, int],
			OnCancelProcessed:   ForwardProcessed[int, int],
		}, nil, 1)

	inputs <- outcome.Ok(1)
	first := <-out
	if !first.IsOk() || first.Value() != 1 {
		t.Fatalf("expected Ok(1) before cancellation, got %v", first)
	}

	cancel()
	inputs <- outcome.Ok(2)
	close(inputs)

	rest := Collect(context.Background(), out)
	if len(rest) != 1 {
		t.Fatalf("expected exactly one outcome for the abandoned input, got %d", len(rest))
	}
	if rest[0].IsErr() && !rest[0].IsCanceled() {
		t.Fatalf("drained outcome carries the wrong fault: %v", rest[0])
	}
}

func TestFinally_FoldsAllTracks(t *testing.T) {
	ctx := context.Background()

	inputs := SourceOutcomes(ctx,
		outcome.Ok(3),
		outcome.Err[int]("boom"),
		outcome.Canceled[int](context.Canceled),
	)

	folded := Finally(ctx, inputs, FinallyHandlers[int, string]{
		OnOk:       func(_ context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
		OnErr:      func(_ context.Context, err error) string { return "err:" + err.Error() },
		OnCanceled: func(_ context.Context, err error) string { return "canceled" },
	})

	got := Collect(context.Background(), folded)
	want := []string{"ok:3", "err:boom", "canceled"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFirst(t *testing.T) {
	ctx := context.Background()

	out := Run(ctx, Source(ctx, 9), Map(func(_ context.Context, v int) int { return v * 3 }))
	first := First(ctx, out, outcome.Err[int]("empty"))
	if !first.IsOk() || first.Value() != 27 {
		t.Fatalf("expected Ok(27), got %v", first)
	}

	empty := First(ctx, Source[int](ctx), outcome.Err[int]("empty"))
	if !empty.IsErr() || empty.ErrorMessage() != "empty" {
		t.Fatalf("expected the fallback, got %v", empty)
	}
}

func TestWorkersOption(t *testing.T) {
	ctx := context.Background()
	if got := Workers(ctx, 3); got != 3 {
		t.Fatalf("expected fallback 3, got %d", got)
	}
	if got := Workers(WithWorkers(ctx, 8), 3); got != 8 {
		t.Fatalf("expected configured 8, got %d", got)
	}
	if got := Workers(WithWorkers(ctx, 0), 3); got != 3 {
		t.Fatalf("non-positive workers must fall back, got %d", got)
	}
}

func TestDrainRemainingOption(t *testing.T) {
	ctx := context.Background()
	if !DrainRemaining(ctx, true) {
		t.Fatalf("expected fallback true")
	}
	if DrainRemaining(WithDrainRemaining(ctx, false), true) {
		t.Fatalf("expected configured false")
	}
}
