// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package dtc implements the optimizing core of a decision-table compiler:
ingestion of RFC-4180 CSV decision tables into a normalized fact graph, a
memoized branch-and-bound search that builds a shared-subexpression
decision DAG of minimal worst-case depth, a post-build contradiction
check, and an emitter that writes a language-neutral pseudocode program.

Basics

A compile starts from one or more CSV files, each holding one or more
decision (sub)tables. A table's header names a result variable (a Name)
and the premise variables its rows depend on; every row is one
Inference: a result Value plus the premise Values that determine it.

Compile runs the full pipeline - ingest, validate, analyze, build, check,
emit - and writes the resulting pseudocode to the given io.Writer. Use
the Quick option to trade search optimality for a faster, first-found
decision DAG.

Use of build tags

Compiling with the build tag `debug` lets the runtime Trace option
report the DAG Builder search and its cache hit/miss counts over slog.
Without the tag, or without Trace, nothing is logged.
*/
package dtc
