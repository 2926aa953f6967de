package resext

import (
	"github.com/ib-77/optextra/pkg/rop"
)

// Satisfies reports whether r is a success whose value satisfies predicate.
// The predicate is never called on the failure path.
func Satisfies[T any](r rop.WithError[T], predicate func(T) bool) bool {
	if !r.IsSuccess() {
		return false
	}
	return predicate(r.Result())
}

// SatisfiesPair is Satisfies for a plain (value, error) return.
func SatisfiesPair[T any](v T, err error, predicate func(T) bool) bool {
	if !rop.IsNil(err) {
		return false
	}
	return predicate(v)
}

// FailureSatisfies reports whether r failed, cancels included, with an
// error matching predicate.
func FailureSatisfies[T any](r rop.WithError[T], predicate func(error) bool) bool {
	if r.IsSuccess() {
		return false
	}
	return predicate(r.Err())
}

func CancelSatisfies[T any](r rop.WithCancel[T], predicate func(error) bool) bool {
	if !r.IsCancel() {
		return false
	}
	return predicate(r.Err())
}

// Ok drops the error and keeps the success value, if any.
func Ok[T any](r rop.WithError[T]) rop.Option[T] {
	if !r.IsSuccess() {
		return rop.None[T]()
	}
	return rop.Some(r.Result())
}

// Err drops the success value and keeps the error, if any.
func Err[T any](r rop.WithError[T]) rop.Option[error] {
	if r.IsSuccess() {
		return rop.None[error]()
	}
	return rop.Some(r.Err())
}

// OrElse returns r if it succeeded, otherwise the result produced by
// alternative from r's error.
func OrElse[T any](r rop.Result[T], alternative func(error) rop.Result[T]) rop.Result[T] {
	if r.IsSuccess() {
		return r
	}
	return alternative(r.Err())
}

func UnwrapOrElse[T any](r rop.WithError[T], def func(error) T) T {
	if r.IsSuccess() {
		return r.Result()
	}
	return def(r.Err())
}

// MapLazyOr applies f to a success value or def to the error.
// Exactly one of them is called.
func MapLazyOr[T, U any](r rop.WithError[T], def func(error) U, f func(T) U) U {
	if r.IsSuccess() {
		return f(r.Result())
	}
	return def(r.Err())
}
