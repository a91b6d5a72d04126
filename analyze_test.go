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

func TestIndependentFindsUndeterminedValues(t *testing.T) {
	g := ingestString(t, "traffic.csv", trafficLightTable)
	ind, err := Independent(&g.Names, &g.Infs)
	require.NoError(t, err)
	require.Equal(t, 2, ind.Len())
	assert.Equal(t, "signal", ind.At(0).Nam.Sym.String())
	for i := 0; i < ind.Len(); i++ {
		assert.NotNil(t, ind.At(i).infs)
	}
}

func TestIndependentRejectsNoIndependentValues(t *testing.T) {
	// Every Name is the result of some inference: a <- b and b <- a
	// leaves nothing independent to search from.
	g := NewGraph()
	err := Ingest(g, "cyc.csv", strings.NewReader("@a,b\nyes,y\nno,n\n"), StdTokenizer{})
	require.NoError(t, err)
	err = Ingest(g, "cyc.csv", strings.NewReader("@b,a\ny,yes\nn,no\n"), StdTokenizer{})
	require.NoError(t, err)
	_, err = Independent(&g.Names, &g.Infs)
	require.Error(t, err)
	var nie *NoIndependentValuesError
	require.ErrorAs(t, err, &nie)
}

func TestFireClosureIsTransitiveViaSinglePremiseChain(t *testing.T) {
	// green -> go is chained through an intermediate single-premise
	// inference: signal=green determines proceed=yes, which alone
	// determines action=go.
	g := NewGraph()
	err := Ingest(g, "t.csv", strings.NewReader(
		"@proceed,signal\nyes,green\nno,red\n"+
			"@action,proceed\ngo,yes\nstop,no\n"), StdTokenizer{})
	require.NoError(t, err)
	ind, err := Independent(&g.Names, &g.Infs)
	require.NoError(t, err)
	require.Equal(t, 2, ind.Len())
	green := ind.At(0)
	require.Equal(t, "green", green.Sym.String())
	// green's fire-set must include both proceed=yes and the chained
	// action=go, since proceed=yes is discharged by a single premise.
	require.Equal(t, 2, green.infs.Len())
	results := map[string]bool{}
	for i := 0; i < green.infs.Len(); i++ {
		results[green.infs.At(i).Result.Sym.String()] = true
	}
	assert.True(t, results["yes"])
	assert.True(t, results["go"])
}
