package resext

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/optextra/pkg/rop"
)

var errBoom = errors.New("boom")

func TestMap_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Map(rop.Success(21), func(n int) string {
		calls++
		return strconv.Itoa(n * 2)
	})

	if !out.IsSuccess() || out.Result() != "42" {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
	if calls != 1 {
		t.Fatalf("f should run once, ran %d times", calls)
	}
}

func TestMap_PropagatesFailureAndCancel(t *testing.T) {
	t.Parallel()

	calls := 0
	f := func(n int) string {
		calls++
		return strconv.Itoa(n)
	}

	failed := Map(rop.Fail[int](errBoom), f)
	assert.True(t, failed.IsFailure())
	assert.False(t, failed.IsCancel())
	assert.ErrorIs(t, failed.Err(), errBoom)

	cancelled := Map(rop.Cancel[int](context.Canceled), f)
	assert.True(t, cancelled.IsCancel())
	assert.ErrorIs(t, cancelled.Err(), context.Canceled)

	assert.Zero(t, calls, "f must not run on failure or cancel")
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	calls := 0
	positive := func(n int) rop.Result[int] {
		calls++
		if n <= 0 {
			return rop.Fail[int](errBoom)
		}
		return rop.Success(n)
	}

	assert.Equal(t, 3, AndThen(rop.Success(3), positive).Result())
	assert.ErrorIs(t, AndThen(rop.Success(-3), positive).Err(), errBoom)
	assert.Equal(t, 2, calls)

	assert.True(t, AndThen(rop.Cancel[int](context.DeadlineExceeded), positive).IsCancel())
	assert.True(t, AndThen(rop.Fail[int](errBoom), positive).IsFailure())
	assert.Equal(t, 2, calls, "f must not run on failure or cancel")
}

func TestTry(t *testing.T) {
	t.Parallel()

	calls := 0
	parse := func(s string) (int, error) {
		calls++
		return strconv.Atoi(s)
	}

	ok := Try(rop.Success("12"), parse)
	require.True(t, ok.IsSuccess())
	assert.Equal(t, 12, ok.Result())

	bad := Try(rop.Success("twelve"), parse)
	assert.True(t, bad.IsFailure())
	assert.False(t, bad.IsCancel())

	assert.True(t, Try(rop.Cancel[string](context.Canceled), parse).IsCancel())
	assert.Equal(t, 2, calls)
}

func TestTry_ContextErrorIsCancel(t *testing.T) {
	t.Parallel()

	out := Try(rop.Success(1), func(int) (int, error) { return 0, context.DeadlineExceeded })
	assert.True(t, out.IsCancel())
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	calls := 0
	check := func(n int) error {
		calls++
		if n > 10 {
			return errBoom
		}
		return nil
	}

	in := rop.Success(5)
	assert.Equal(t, in, FailOnError(in, check), "passing check keeps the result")

	out := FailOnError(rop.Success(50), check)
	assert.ErrorIs(t, out.Err(), errBoom)

	failed := rop.Fail[int](errors.New("earlier"))
	assert.Equal(t, failed, FailOnError(failed, check))
	assert.Equal(t, 2, calls)
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	record := func(n int) { seen = append(seen, n) }

	in := rop.Success(1)
	assert.Equal(t, in, Tee(in, record))
	Tee(rop.Fail[int](errBoom), record)
	Tee(rop.Cancel[int](context.Canceled), record)

	assert.Equal(t, []int{1}, seen)
}

func TestTeeIf(t *testing.T) {
	t.Parallel()

	var conditionCalls, effectCalls int
	even := func(n int) bool {
		conditionCalls++
		return n%2 == 0
	}
	effect := func(int) { effectCalls++ }

	TeeIf(rop.Success(2), even, effect)
	TeeIf(rop.Success(3), even, effect)
	TeeIf(rop.Fail[int](errBoom), even, effect)

	assert.Equal(t, 2, conditionCalls, "condition runs only on success")
	assert.Equal(t, 1, effectCalls)
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()

	var successes, errs, cancels int
	onSuccess := func(int) { successes++ }
	onError := func(error) { errs++ }
	onCancel := func(error) { cancels++ }

	DoubleTee(rop.Success(1), onSuccess, onError, onCancel)
	DoubleTee(rop.Fail[int](errBoom), onSuccess, onError, onCancel)
	DoubleTee(rop.Cancel[int](context.Canceled), onSuccess, onError, onCancel)

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, cancels)

	require.NotPanics(t, func() { DoubleTee(rop.Cancel[int](context.Canceled), onSuccess, onError, nil) })
}

func TestFinally(t *testing.T) {
	t.Parallel()

	var successes, errs, cancels int
	onSuccess := func(n int) string {
		successes++
		return "val:" + strconv.Itoa(n)
	}
	onError := func(error) string {
		errs++
		return "err"
	}
	onCancel := func(error) string {
		cancels++
		return "cancel"
	}

	assert.Equal(t, "val:1", Finally(rop.Success(1), onSuccess, onError, onCancel))
	assert.Equal(t, "err", Finally(rop.Fail[int](errBoom), onSuccess, onError, onCancel))
	assert.Equal(t, "cancel", Finally(rop.Cancel[int](context.Canceled), onSuccess, onError, onCancel))

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, errs)
	assert.Equal(t, 1, cancels)
}
