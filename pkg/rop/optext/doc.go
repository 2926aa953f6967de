// Package optext adds lazy and predicate-based combinators to rop.Option.
//
// The alternative operand is always passed as a function and is called at
// most once, and never when the receiver alone decides the outcome:
// - ZipLazy: pair with a second option produced only when the first is Some
// - OrElse/UnwrapOrElse/XorElse: fall back to a produced option or value
// - Filter/Map/AndThen: run a function on the present value only
// - Satisfies: ask a question about the present value
// - UnwrapNone/ExpectNone: assert absence
//
// As, AsWhen and AsMap pick one concrete type out of an interface value,
// and FilterMap applies such a pick to a slice.
package optext
