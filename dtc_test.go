// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ingestString folds one CSV document into a fresh Graph, failing the
// test immediately on any ingestion error.
func ingestString(t *testing.T, file, csvText string) *Graph {
	t.Helper()
	g := NewGraph()
	err := Ingest(g, file, strings.NewReader(csvText), StdTokenizer{})
	require.NoError(t, err)
	return g
}

const trafficLightTable = "@proceed,signal\nyes,green\nno,red\n"
