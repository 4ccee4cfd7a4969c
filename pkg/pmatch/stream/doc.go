// Package stream lifts case dispatch over channels of results with
// controlled concurrency. It is the pipeline-facing surface: matching
// semantics stay exactly those of pmatch.Match per result, while workers,
// cancellation, and miss routing follow the select-loop discipline of the
// rest of the codebase.
//
// Common usage:
// - ToChan/OkChan: feed slices of results or values into a pipeline
// - Dispatch: fan workers over a result channel, dropping misses
// - DispatchWith: add Handlers for miss and cancellation routing
// - Collect: drain an output channel into a slice
// - WithLines/LinesFromContext: carry the worker count on the context
package stream
