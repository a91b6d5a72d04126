// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import "io"

// ingestState folds Tokenizer events into a Graph, mirroring
// original_source/dtc.c's csvCb state machine: a flag for being inside
// a '#' comment record, a flag for being inside a '@' header record, the
// header's ordered column-to-Name list (replaced on every header row),
// and the pending Inference being assembled from the current data row.
type ingestState struct {
	g         *Graph
	file      string
	inComment bool
	inHeader  bool
	header    []*Name
	pending   *Inference
}

// Ingest reads r as one CSV file (file is used only for diagnostics)
// and folds its records into g.
func Ingest(g *Graph, file string, r io.Reader, tok Tokenizer) error {
	st := &ingestState{g: g, file: file}
	err := tok.Tokenize(r, st.handle)
	if se, ok := err.(*CsvSyntaxError); ok && se.Loc.File == "" {
		se.Loc.File = file
	}
	return err
}

func (st *ingestState) handle(ev Event) error {
	switch ev.Kind {
	case RecordBegin:
		st.inComment = false
		st.inHeader = false
	case Cell:
		return st.cell(ev.Row, ev.Column, ev.Value)
	case RecordEnd:
		return st.recordEnd(ev.Row)
	}
	return nil
}

func (st *ingestState) loc(row int) Location {
	return Location{File: st.file, Row: row + 1}
}

func (st *ingestState) cell(row, col int, value []byte) error {
	if st.inComment {
		return nil
	}

	if len(value) == 0 {
		if st.inHeader {
			return &MalformedTableError{Loc: st.loc(row), Reason: "empty name in '@' row"}
		}
		if col == 0 {
			return &MalformedTableError{Loc: st.loc(row), Reason: "empty result value"}
		}
		return nil // don't-care premise cell
	}

	if col == 0 {
		switch value[0] {
		case '#':
			st.inComment = true
			return nil
		case '@':
			if len(value) < 2 {
				return &MalformedTableError{Loc: st.loc(row), Reason: "empty name in '@' row"}
			}
			st.header = nil
			st.inHeader = true
			value = value[1:]
		}
	}

	if st.inHeader {
		sym := st.g.Pool.Intern(value)
		nam := st.g.internName(sym)
		for _, h := range st.header {
			if h == nam {
				return &MalformedTableError{Loc: st.loc(row), Reason: "duplicate column '" + nam.Sym.String() + "' in '@' row"}
			}
		}
		st.header = append(st.header, nam)
		return nil
	}

	if len(st.header) == 0 {
		return &MalformedTableError{Loc: st.loc(row), Reason: "data row before any '@' header"}
	}
	if col >= len(st.header) {
		return &MalformedTableError{Loc: st.loc(row), Reason: "row has more columns than the '@' header"}
	}

	nam := st.header[col]
	sym := st.g.Pool.Intern(value)
	val := st.g.internValue(nam, sym)

	if col == 0 {
		st.pending = &Inference{
			Result:  val,
			Premise: newValues(len(st.header) - 1),
			File:    st.file,
			Row:     row + 1,
		}
		return nil
	}
	st.pending.Premise.add(val)
	return nil
}

func (st *ingestState) recordEnd(row int) error {
	defer func() { st.pending = nil }()
	if st.pending == nil {
		return nil
	}
	if st.pending.Premise.Len() == 0 {
		return &MalformedTableError{Loc: st.loc(row), Reason: "row has a result but no premises"}
	}
	if _, added := st.g.addInference(st.pending); !added {
		return &MalformedTableError{Loc: st.loc(row), Reason: "duplicate inference"}
	}
	return nil
}
