package optext

import "github.com/ib-77/optextra/pkg/rop"

// As returns Some when the dynamic type of x is V.
//
//	type Shape interface{ Area() float64 }
//	circle := optext.As[Circle](shape)
func As[V any](x any) rop.Option[V] {
	v, ok := x.(V)
	return rop.OptionOf(v, ok)
}

// AsWhen is As with an extra guard. guard runs only when the type matches;
// a nil guard accepts every match.
func AsWhen[V any](x any, guard func(V) bool) rop.Option[V] {
	v, ok := x.(V)
	if !ok || (guard != nil && !guard(v)) {
		return rop.None[V]()
	}
	return rop.Some(v)
}

// AsMap maps a matched value with then. A nil guard accepts every match.
func AsMap[V, U any](x any, guard func(V) bool, then func(V) U) rop.Option[U] {
	v, ok := x.(V)
	if !ok {
		return rop.None[U]()
	}
	if guard != nil && !guard(v) {
		return rop.None[U]()
	}
	return rop.Some(then(v))
}

// FilterMap applies pick to every element and keeps the present values in order.
func FilterMap[S, V any](xs []S, pick func(S) rop.Option[V]) []V {
	out := make([]V, 0, len(xs))
	for _, x := range xs {
		if v, ok := pick(x).Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
