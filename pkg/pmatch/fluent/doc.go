// Package fluent provides a fluent case builder over a single
// pmatch.Result[T, E], for call sites where chaining reads better than a
// variadic case list.
//
// Semantics are exactly those of pmatch.Match: cases are tried in the order
// written, the first accepting case wins, Ok cases never see Err results
// and vice versa, and collapsing an unmatched result is a hard failure.
//
// Key operations:
// - On: begin a matcher over a Result, naming the output type
// - Ok/Err: add a (pattern, handler) case for the corresponding variant
// - Else: tag-independent fallback accepting anything left
// - Finally/MustFinally: collapse to the chosen handler's value
package fluent
