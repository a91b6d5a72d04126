// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "fmt"

// CompileError is satisfied by every fatal error kind the compiler can
// produce (spec.md §7). Kind returns a short, stable name suitable for
// diagnostics and for tests asserting with errors.As.
type CompileError interface {
	error
	Kind() string
}

// Location pinpoints a CSV source position for diagnostics
// (spec.md §3: an Inference keeps "its originating file path and
// 1-based row number").
type Location struct {
	File string
	Row  int // 1-based; 0 if not applicable
}

func (l Location) String() string {
	switch {
	case l.File == "":
		return ""
	case l.Row == 0:
		return l.File
	default:
		return fmt.Sprintf("%s:%d", l.File, l.Row)
	}
}

func prefix(loc Location) string {
	if s := loc.String(); s != "" {
		return s + ": "
	}
	return ""
}

// CsvSyntaxError wraps a failure reported by the underlying Tokenizer.
type CsvSyntaxError struct {
	Loc Location
	Err error
}

// Kind implements CompileError.
func (e *CsvSyntaxError) Kind() string { return "CsvSyntax" }

func (e *CsvSyntaxError) Error() string {
	return fmt.Sprintf("%sCSV syntax error: %s", prefix(e.Loc), e.Err)
}

// Unwrap exposes the underlying CSV reader error.
func (e *CsvSyntaxError) Unwrap() error { return e.Err }

// MalformedTableError covers every ingestion rule violation (spec.md
// §4.2/§7): a bad '@' header, a duplicate column, an empty premise row,
// an overflow row, or a duplicate inference row.
type MalformedTableError struct {
	Loc    Location
	Reason string
}

// Kind implements CompileError.
func (e *MalformedTableError) Kind() string { return "MalformedTable" }

func (e *MalformedTableError) Error() string {
	return fmt.Sprintf("%s%s", prefix(e.Loc), e.Reason)
}

// UnderSpecifiedNameError reports a Name with fewer than two Values.
type UnderSpecifiedNameError struct {
	Name string
}

// Kind implements CompileError.
func (e *UnderSpecifiedNameError) Kind() string { return "UnderSpecifiedName" }

func (e *UnderSpecifiedNameError) Error() string {
	return fmt.Sprintf("name %q has fewer than two values", e.Name)
}

// NoIndependentValuesError reports that every Name is determined by
// some Inference, leaving the DAG Builder with no root to search from.
type NoIndependentValuesError struct{}

// Kind implements CompileError.
func (e *NoIndependentValuesError) Kind() string { return "NoIndependentValues" }

func (e *NoIndependentValuesError) Error() string {
	return "there are no independent values"
}

// PartiallyIndependentError reports a Name with some Values
// independent and others determined by an Inference.
type PartiallyIndependentError struct {
	Name  string
	Value string
}

// Kind implements CompileError.
func (e *PartiallyIndependentError) Kind() string { return "PartiallyIndependent" }

func (e *PartiallyIndependentError) Error() string {
	return fmt.Sprintf("name %q is independent but value %q is the result of an inference", e.Name, e.Value)
}

// InferenceRef is one side of a ContradictionError: the value and
// source location of the conflicting Inference.
type InferenceRef struct {
	Value string
	Loc   Location
}

// ContradictionError reports two Inferences with the same result Name
// but different result Values, both live on the same DAG path
// (spec.md §4.6).
type ContradictionError struct {
	Name string
	A, B InferenceRef
}

// Kind implements CompileError.
func (e *ContradictionError) Kind() string { return "Contradiction" }

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("unresolvable %q: %s%q vs %s%q", e.Name, prefix(e.A.Loc), e.A.Value, prefix(e.B.Loc), e.B.Value)
}

// OomError reports an allocation failure, or the bounded
// recursion-depth guard standing in for one (SPEC_FULL.md §7).
type OomError struct {
	Reason string
}

// Kind implements CompileError.
func (e *OomError) Kind() string { return "Oom" }

func (e *OomError) Error() string {
	return fmt.Sprintf("out of memory: %s", e.Reason)
}
