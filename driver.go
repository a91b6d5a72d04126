// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Compile sequences the whole pipeline — ingest, validate, analyze,
// build, check, emit — the way original_source/dtc.c's main reads
// every file into one shared Fact Graph before compiling
// (SPEC_FULL.md §6 "multi-file compilation").
func Compile(w io.Writer, files []string, opt ...Option) error {
	opts := defaultOptions()
	for _, o := range opt {
		o(opts)
	}

	g := NewGraph()
	tok := StdTokenizer{}
	for _, path := range files {
		if err := ingestFile(g, path, tok); err != nil {
			return err
		}
	}

	if err := validate(g); err != nil {
		return err
	}

	ind, err := Independent(&g.Names, &g.Infs)
	if err != nil {
		return err
	}

	if opts.stats != nil {
		opts.stats(Stats{
			Names:       g.Names.Len(),
			Inferences:  g.Infs.Len(),
			Independent: ind.Len(),
		})
	}

	b := newBuilder(opts)
	root, err := b.Build(ind, &g.Infs)
	if err != nil {
		return errors.Wrap(err, "build failed")
	}

	if err := Check(root); err != nil {
		return err
	}

	return Emit(w, root, ind.All(), resultValues(&g.Infs))
}

func ingestFile(g *Graph, path string, tok Tokenizer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Ingest(g, path, f, tok)
}

// validate applies the two whole-graph rules that can only be checked
// once every file has been ingested: every Name needs at least two
// Values (UnderSpecifiedName), and every Inference needs at least one
// premise (caught earlier per-row by the Ingestor, reasserted here as a
// defensive invariant).
func validate(g *Graph) error {
	for _, nam := range g.Names.All() {
		if len(nam.Values()) < 2 {
			return &UnderSpecifiedNameError{Name: nam.Sym.String()}
		}
	}
	for i := 0; i < g.Infs.Len(); i++ {
		inf := g.Infs.At(i)
		if inf.Premise.Len() == 0 {
			return &MalformedTableError{
				Loc:    Location{File: inf.File, Row: inf.Row},
				Reason: "row has a result but no premises",
			}
		}
	}
	return nil
}

// resultValues returns the distinct set of result Values across infs,
// in canonical order (original_source/dtc.c main's "O" loop, which
// skips consecutive duplicates of the same result value).
func resultValues(infs *Inferences) []*Value {
	var r []*Value
	var last *Value
	for i := 0; i < infs.Len(); i++ {
		v := infs.At(i).Result
		if v == last {
			continue
		}
		r = append(r, v)
		last = v
	}
	return r
}
