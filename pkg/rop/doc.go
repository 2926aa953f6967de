// Package rop defines the two value types the extension packages work on:
// Option[T] (Some or None) and Result[T] (success, failure or cancel),
// together with Pair[A, B] and the read-only provider interfaces.
//
// The types carry only a small eager vocabulary (Get, UnwrapOr, Or, Zip,
// Unpack). Lazy and predicate-based combinators live in optext and resext.
package rop
