package rop

import "fmt"

// Option is either Some value or None. The zero value is None.
type Option[T any] struct {
	value  T
	isSome bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, isSome: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from the comma-ok idiom.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.isSome
}

// MustGet panics if o is None.
func (o Option[T]) MustGet() T {
	if !o.isSome {
		panic("called MustGet on a None value")
	}
	return o.value
}

// UnwrapOr returns the value or def. def is evaluated by the caller
// before the call.
func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.value
	}
	return def
}

// Or returns o if it is Some, otherwise alt.
func (o Option[T]) Or(alt Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return alt
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Zip pairs two present values. Both options are already evaluated.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.isSome && b.isSome {
		return Some(Pair[A, B]{First: a.value, Second: b.value})
	}
	return None[Pair[A, B]]()
}
