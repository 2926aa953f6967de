// Package resext adds predicate queries, lazy fallbacks and railway
// combinators to rop.Result.
//
// - Satisfies/FailureSatisfies/CancelSatisfies: ask a question about one variant
// - Ok/Err: drop one side into a rop.Option
// - OrElse/UnwrapOrElse/MapLazyOr: recover from a failure lazily
// - Map/AndThen/Try/FailOnError: move a success forward, carrying failures
//   and cancels over unchanged
// - Tee/TeeIf/DoubleTee: side effects per variant
// - Finally: reduce to a concrete value via success/error/cancel handlers
//
// Functions that only inspect a result take the rop.WithError or
// rop.WithCancel interfaces. A cancelled result is a failure for every
// query here except CancelSatisfies, which looks at cancels only.
// Every closure runs at most once and only for the variant it handles.
//
// No function in this package creates an error value.
package resext
