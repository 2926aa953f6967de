package optext

import (
	"github.com/ib-77/optextra/pkg/rop"
)

// ZipLazy is like rop.Zip, but the second option comes from other,
// which is not called if o is None.
func ZipLazy[T, U any](o rop.Option[T], other func() rop.Option[U]) rop.Option[rop.Pair[T, U]] {
	a, ok := o.Get()
	if !ok {
		return rop.None[rop.Pair[T, U]]()
	}

	b, ok := other().Get()
	if !ok {
		return rop.None[rop.Pair[T, U]]()
	}

	return rop.Some(rop.NewPair(a, b))
}

// Satisfies checks the wrapped value against predicate, or returns false if o is None.
func Satisfies[T any](o rop.OptionProvider[T], predicate func(T) bool) bool {
	if v, ok := o.Get(); ok {
		return predicate(v)
	}
	return false
}

// OrElse returns o if it is Some, otherwise the option produced by alternative.
func OrElse[T any](o rop.Option[T], alternative func() rop.Option[T]) rop.Option[T] {
	if o.IsSome() {
		return o
	}
	return alternative()
}

func UnwrapOrElse[T any](o rop.Option[T], def func() T) T {
	if v, ok := o.Get(); ok {
		return v
	}
	return def()
}

// XorElse returns Some if exactly one of o and the produced option is Some.
// other is always called once, since the result depends on both sides.
func XorElse[T any](o rop.Option[T], other func() rop.Option[T]) rop.Option[T] {
	alt := other()
	switch {
	case o.IsSome() && alt.IsNone():
		return o
	case o.IsNone() && alt.IsSome():
		return alt
	default:
		return rop.None[T]()
	}
}

// Filter keeps o only when predicate holds for its value.
func Filter[T any](o rop.Option[T], predicate func(T) bool) rop.Option[T] {
	if v, ok := o.Get(); ok && predicate(v) {
		return o
	}
	return rop.None[T]()
}

func Map[T, U any](o rop.Option[T], f func(T) U) rop.Option[U] {
	if v, ok := o.Get(); ok {
		return rop.Some(f(v))
	}
	return rop.None[U]()
}

func AndThen[T, U any](o rop.Option[T], f func(T) rop.Option[U]) rop.Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return rop.None[U]()
}

// UnwrapNone panics if o is Some.
func UnwrapNone[T any](o rop.OptionProvider[T]) {
	if _, ok := o.Get(); ok {
		panic("called UnwrapNone on a Some value")
	}
}

// ExpectNone panics with msg if o is Some.
func ExpectNone[T any](o rop.OptionProvider[T], msg string) {
	if _, ok := o.Get(); ok {
		panic(msg)
	}
}
