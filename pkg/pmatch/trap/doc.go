// Package trap adapts plain Go functions into pmatch.Result values at the
// boundary where failures enter the matching engine.
//
// Highlights:
// - Catch: fold a (T, error) return into Ok/Err
// - CatchOnly: same, with an errors.Is allowlist; non-acceptable errors
//   are re-raised unchanged to the caller instead of converted
// - Recover: fold a panic into Err, re-panicking non-acceptable values
// - CatchAsync: run a function on its own goroutine, delivering one
//   Result on a channel with context cancellation folded to Err
// - IsCancellation: recognize context cancellation failures
package trap
