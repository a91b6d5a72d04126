// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

// Stats reports the supplemented informational counters
// (SPEC_FULL.md §6): Names, Inferences, and Independent values, as the
// original printed to stderr before compiling.
type Stats struct {
	Names       int
	Inferences  int
	Independent int
}

// options stores the values of a Compile call's parameters, following
// rudd's configs/option-function pattern.
type options struct {
	quick         bool
	trace         bool
	maxCandidates int
	stats         func(Stats)
}

func defaultOptions() *options {
	return &options{maxCandidates: _DEFAULTMAXCANDIDATES}
}

// Option configures a Compile run.
type Option func(*options)

// Quick selects the heuristic search mode (spec.md §4.5): accept the
// first complete decision DAG instead of continuing to tighten the
// depth bound.
func Quick() Option {
	return func(o *options) { o.quick = true }
}

// Trace turns on slog tracing of the DAG Builder search, the way
// cmd/dtc wires up -v and DTC_DEBUG (SPEC_FULL.md §3/§6). Tracing only
// emits records when the binary is also built with the debug tag
// (debug.go); release.go's no-op logStats/traceSearch mean this Option
// has no effect in a release build, by design.
func Trace() Option {
	return func(o *options) { o.trace = true }
}

// MaxCandidates bounds the number of live candidate values the DAG
// Builder will recurse on, guarding against runaway recursion on
// pathological input (spec.md §7 Oom, SPEC_FULL.md §7). The default is
// _DEFAULTMAXCANDIDATES.
func MaxCandidates(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxCandidates = n
		}
	}
}

// WithStats registers a callback invoked once with the Stats counters,
// after ingestion and analysis complete and before the (potentially
// slow) DAG Builder search begins.
func WithStats(f func(Stats)) Option {
	return func(o *options) { o.stats = f }
}
