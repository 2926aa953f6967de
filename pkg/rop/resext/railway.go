package resext

import (
	"github.com/ib-77/optextra/pkg/rop"
)

// failFrom carries a failure or cancel over to another value type.
func failFrom[In, Out any](r rop.Result[In]) rop.Result[Out] {
	if r.IsCancel() {
		return rop.Cancel[Out](r.Err())
	}
	return rop.Fail[Out](r.Err())
}

// Map transforms a success value. Failures and cancels pass through with
// their error and f is not called.
func Map[In, Out any](r rop.Result[In], f func(In) Out) rop.Result[Out] {
	if r.IsSuccess() {
		return rop.Success(f(r.Result()))
	}
	return failFrom[In, Out](r)
}

// AndThen switches a success value onto the result returned by f.
func AndThen[In, Out any](r rop.Result[In], f func(In) rop.Result[Out]) rop.Result[Out] {
	if r.IsSuccess() {
		return f(r.Result())
	}
	return failFrom[In, Out](r)
}

// Try calls a (value, error) function on a success value. Its error becomes
// a failure, or a cancel for context errors.
func Try[In, Out any](r rop.Result[In], f func(In) (Out, error)) rop.Result[Out] {
	if r.IsSuccess() {
		return rop.Of(f(r.Result()))
	}
	return failFrom[In, Out](r)
}

// FailOnError keeps r unless check returns an error for its value.
func FailOnError[T any](r rop.Result[T], check func(T) error) rop.Result[T] {
	if !r.IsSuccess() {
		return r
	}
	if err := check(r.Result()); !rop.IsNil(err) {
		return rop.Of(r.Result(), err)
	}
	return r
}

// Tee runs a side effect on a success value and returns r unchanged.
func Tee[T any](r rop.Result[T], onSuccess func(T)) rop.Result[T] {
	if r.IsSuccess() {
		onSuccess(r.Result())
	}
	return r
}

// TeeIf is Tee with a condition. condition runs only on success.
func TeeIf[T any](r rop.Result[T], condition func(T) bool, onSuccess func(T)) rop.Result[T] {
	if r.IsSuccess() && condition(r.Result()) {
		onSuccess(r.Result())
	}
	return r
}

// DoubleTee runs the handler matching r's variant and returns r unchanged.
// Nil handlers are skipped.
func DoubleTee[T any](r rop.Result[T],
	onSuccess func(T),
	onError func(error),
	onCancel func(error)) rop.Result[T] {

	switch {
	case r.IsSuccess():
		if onSuccess != nil {
			onSuccess(r.Result())
		}
	case r.IsCancel():
		if onCancel != nil {
			onCancel(r.Err())
		}
	default:
		if onError != nil {
			onError(r.Err())
		}
	}
	return r
}

// Finally collapses r into a value with the handler matching its variant.
// Exactly one handler is called.
func Finally[In, Out any](r rop.Result[In],
	onSuccess func(In) Out,
	onError func(error) Out,
	onCancel func(error) Out) Out {

	switch {
	case r.IsSuccess():
		return onSuccess(r.Result())
	case r.IsCancel():
		return onCancel(r.Err())
	default:
		return onError(r.Err())
	}
}
