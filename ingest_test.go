// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestBasicTable(t *testing.T) {
	g := ingestString(t, "traffic.csv", trafficLightTable)
	assert.Equal(t, 2, g.Names.Len())
	assert.Equal(t, 2, g.Infs.Len())
}

func TestIngestSkipsCommentRows(t *testing.T) {
	g := ingestString(t, "t.csv", "#a comment row,ignored\n"+trafficLightTable)
	assert.Equal(t, 2, g.Names.Len())
	assert.Equal(t, 2, g.Infs.Len())
}

func TestIngestDontCareCell(t *testing.T) {
	// A second premise column with an empty cell on one row contributes
	// nothing to that row's premise set (spec.md §4.2 "don't care").
	g := ingestString(t, "t.csv", "@proceed,signal,weather\nyes,green,\nno,red,rain\n")
	require.Equal(t, 2, g.Infs.Len())
	var yesInf *Inference
	for i := 0; i < g.Infs.Len(); i++ {
		if g.Infs.At(i).Result.Sym.String() == "yes" {
			yesInf = g.Infs.At(i)
		}
	}
	require.NotNil(t, yesInf)
	assert.Equal(t, 1, yesInf.Premise.Len())
}

func TestIngestDuplicateHeaderColumnIsFatal(t *testing.T) {
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader("@proceed,signal,signal\nyes,green,green\n"), StdTokenizer{})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
}

func TestIngestEmptyPremiseRowIsFatal(t *testing.T) {
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader("@proceed\nyes\n"), StdTokenizer{})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
}

func TestIngestDuplicateInferenceIsFatal(t *testing.T) {
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader(trafficLightTable+"yes,green\n"), StdTokenizer{})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
	assert.Contains(t, err.Error(), "duplicate inference")
}

func TestIngestRowOverflowIsFatal(t *testing.T) {
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader("@proceed,signal\nyes,green,extra\n"), StdTokenizer{})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
}

func TestIngestEmptyResultValueIsFatal(t *testing.T) {
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader("@proceed,signal\n,green\n"), StdTokenizer{})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
}

func TestIngestMultipleFilesShareOneGraph(t *testing.T) {
	g := ingestString(t, "a.csv", trafficLightTable)
	err := Ingest(g, "b.csv", strings.NewReader("@weather,forecast\nrain,cloudy\nsun,clear\n"), StdTokenizer{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Names.Len())
	assert.Equal(t, 4, g.Infs.Len())
}
