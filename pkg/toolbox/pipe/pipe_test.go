package pipe

import (
	"context"
	"errors"
	"testing"

	"github.com/ZeidLab/toolbox-go/pkg/toolbox"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Start(ctx, toolbox.Success(5)).Result()
	if !out.IsSuccess() || out.Value() != 5 {
		t.Fatalf("expected success with 5, got success=%v", out.IsSuccess())
	}
}

func TestFromValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 7).Result()
	if !out.IsSuccess() || out.Value() != 7 {
		t.Fatalf("expected success with 7, got success=%v", out.IsSuccess())
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fault := toolbox.NewError("boom")

	called := false
	out := Start(ctx, toolbox.Failure[int](fault)).
		Then(func(ctx context.Context, v int) toolbox.Result[int] {
			called = true
			return toolbox.Success(v + 1)
		}).
		Result()

	if out.IsSuccess() || out.Fault() != fault {
		t.Fatalf("expected the original failure, got success=%v", out.IsSuccess())
	}
	if called {
		t.Fatalf("onSuccess must not run when the chain already failed")
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, v int) toolbox.Result[int] { return toolbox.Success(v * 2) }).
		Result()
	if out.Value() != 6 {
		t.Fatalf("expected 6, got %d", out.Value())
	}
}

func TestThenTry_ErrorAndPanicBecomeFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	errOut := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) { return 0, errors.New("try-error") }).
		Result()
	if errOut.IsSuccess() || errOut.Fault().Message() != "try-error" {
		t.Fatalf("expected try-error failure, got success=%v", errOut.IsSuccess())
	}

	panicOut := FromValue(ctx, 10).
		ThenTry(func(ctx context.Context, v int) (int, error) { panic("kaboom") }).
		Result()
	if panicOut.IsSuccess() {
		t.Fatalf("a panic inside ThenTry must become a failure")
	}
}

func TestMapValue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromValue(ctx, 4).
		MapValue(func(ctx context.Context, v int) int { return v * v }).
		Result()
	if out.Value() != 16 {
		t.Fatalf("expected 16, got %d", out.Value())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fault := toolbox.NamedError("Validation", "must be even").WithCode(toolbox.CodeValidation)

	ok := FromValue(ctx, 4).
		Ensure(func(ctx context.Context, v int) bool { return v%2 == 0 }, fault).
		Result()
	if !ok.IsSuccess() {
		t.Fatalf("expected success for even value")
	}

	bad := FromValue(ctx, 3).
		Ensure(func(ctx context.Context, v int) bool { return v%2 == 0 }, fault).
		Result()
	if bad.IsSuccess() || !bad.Fault().IsValidation() {
		t.Fatalf("expected caller-supplied validation failure")
	}
}

func TestTaps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	taps, failTaps := 0, 0

	FromValue(ctx, 2).
		Tap(func(ctx context.Context, v int) { taps += v }).
		TapFailure(func(ctx context.Context, fault toolbox.Error) { failTaps++ })
	if taps != 2 || failTaps != 0 {
		t.Fatalf("success chain taps mismatch: taps=%d failTaps=%d", taps, failTaps)
	}

	Start(ctx, toolbox.Failure[int](toolbox.NewError("down"))).
		Tap(func(ctx context.Context, v int) { taps += 100 }).
		TapFailure(func(ctx context.Context, fault toolbox.Error) { failTaps++ })
	if taps != 2 || failTaps != 1 {
		t.Fatalf("failed chain taps mismatch: taps=%d failTaps=%d", taps, failTaps)
	}
}

func TestTypeChangingThenAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	chain := Then(FromValue(ctx, 41), func(ctx context.Context, v int) toolbox.Result[string] {
		if v < 0 {
			return toolbox.Failure[string](toolbox.NewError("negative"))
		}
		return toolbox.Success("answer")
	})

	out := Finally(MapTo(chain, func(ctx context.Context, s string) int { return len(s) }),
		func(ctx context.Context, v int) string {
			if v == 6 {
				return "ok"
			}
			return "wrong"
		},
		func(ctx context.Context, fault toolbox.Error) string { return "failed" })

	if out != "ok" {
		t.Fatalf("expected ok, got %q", out)
	}
}
