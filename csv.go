// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"bufio"
	"encoding/csv"
	"io"
)

// EventKind identifies one callback event raised while scanning a CSV
// stream (spec.md §1: the tokenizer is "out of scope… consumed as a
// callback-driven parser").
type EventKind int

// The three events a Tokenizer ever raises.
const (
	RecordBegin EventKind = iota
	Cell
	RecordEnd
)

// Event is one parser callback. Row and Column are zero-based; Value is
// only meaningful for Cell events and is owned by the caller (copy it
// if you need to retain it past the callback).
type Event struct {
	Kind   EventKind
	Row    int
	Column int
	Value  []byte
}

// Tokenizer is the external, callback-driven CSV scanner the Ingestor
// drives. It is an interface-only collaborator: this package does not
// implement CSV syntax beyond this contract, matching
// original_source/dtc.c's split between its generic csvParse scanner
// and the csvCb callback that interprets events.
type Tokenizer interface {
	Tokenize(r io.Reader, emit func(Event) error) error
}

// StdTokenizer adapts the standard library's RFC-4180 reader
// (encoding/csv) to the Tokenizer contract. It is the default, and the
// only CSV parser anywhere in the supporting reference material is
// itself built on encoding/csv, so there is no ecosystem library to
// reach for instead (see DESIGN.md).
type StdTokenizer struct{}

// Tokenize implements Tokenizer.
func (StdTokenizer) Tokenize(r io.Reader, emit func(Event) error) error {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &CsvSyntaxError{Loc: Location{Row: row + 1}, Err: err}
		}
		if err := emit(Event{Kind: RecordBegin, Row: row}); err != nil {
			return err
		}
		for col, field := range rec {
			if err := emit(Event{Kind: Cell, Row: row, Column: col, Value: []byte(field)}); err != nil {
				return err
			}
		}
		if err := emit(Event{Kind: RecordEnd, Row: row}); err != nil {
			return err
		}
		row++
	}
}
