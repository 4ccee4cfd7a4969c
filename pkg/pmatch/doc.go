// Package pmatch implements structural pattern matching over the two-variant
// Result[T, E] type. Callers dispatch on the shape and content of a payload,
// not just its Ok/Err tag, through a small declarative pattern vocabulary
// evaluated in a fixed precedence order until the first case fires.
//
// Highlights:
// - Ok/Err: construct Result[T, E] values
// - Any: wildcard pattern accepting every value
// - When/Guard: wrap typed predicates as function patterns
// - Some/Every: quantify a sub-pattern over array elements
// - Matches: standalone structural test of a value against a pattern
// - Match/MustMatch: first-match-wins dispatch over ordered cases,
//   failing hard on a non-exhaustive case list
//
// Patterns compose: literals, *regexp.Regexp, predicates, string-keyed maps
// (partial object shapes), and slices of sub-patterns (exact-length arrays)
// nest freely. For fluent single-result dispatch see package fluent, for
// channel pipelines see package stream, and for adapting plain functions
// into Results see package trap.
package pmatch
