// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTable drops text into a fresh file under t.TempDir and returns its
// path, for exercising Compile's file-based entry point end to end.
func writeTable(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestCompileProducesParseableProgram(t *testing.T) {
	path := writeTable(t, "traffic.csv", trafficLightTable)
	var buf bytes.Buffer
	require.NoError(t, Compile(&buf, []string{path}))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"L", "0"}, records[len(records)-1])
}

func TestCompileMergesMultipleFiles(t *testing.T) {
	a := writeTable(t, "a.csv", trafficLightTable)
	b := writeTable(t, "b.csv", "@weather,forecast\nrain,cloudy\nsun,clear\n")

	var names, infs, ind int
	var buf bytes.Buffer
	err := Compile(&buf, []string{a, b}, WithStats(func(s Stats) {
		names, infs, ind = s.Names, s.Inferences, s.Independent
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, names)
	assert.Equal(t, 4, infs)
	assert.Equal(t, 4, ind)
}

func TestCompileQuickOptionIsWired(t *testing.T) {
	path := writeTable(t, "traffic.csv", trafficLightTable)
	var buf bytes.Buffer
	require.NoError(t, Compile(&buf, []string{path}, Quick()))
	assert.Greater(t, buf.Len(), 0)
}

func TestCompileTraceOptionIsWired(t *testing.T) {
	path := writeTable(t, "traffic.csv", trafficLightTable)
	var buf bytes.Buffer
	require.NoError(t, Compile(&buf, []string{path}, Trace()))
	assert.Greater(t, buf.Len(), 0)
}

func TestTraceOptionReachesBuilder(t *testing.T) {
	// Trace() must actually flip builder.trace, not just sit unread in
	// options — a release build's no-op traceSearch/logStats still take
	// the flag, they just discard it (debug.go is what acts on it).
	opts := defaultOptions()
	Trace()(opts)
	b := newBuilder(opts)
	assert.True(t, b.trace)

	untraced := newBuilder(defaultOptions())
	assert.False(t, untraced.trace)
}

func TestCompileReportsCsvSyntaxError(t *testing.T) {
	path := writeTable(t, "bad.csv", "@proceed,signal\n\"yes,green\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{path})
	require.Error(t, err)
	var cse *CsvSyntaxError
	require.ErrorAs(t, err, &cse)
}

func TestCompileReportsMalformedTableError(t *testing.T) {
	path := writeTable(t, "bad.csv", "@proceed,signal,signal\nyes,green,green\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{path})
	require.Error(t, err)
	var mte *MalformedTableError
	require.ErrorAs(t, err, &mte)
}

func TestCompileReportsUnderSpecifiedNameError(t *testing.T) {
	// "weather" never varies across rows, so it never accumulates a
	// second Value.
	path := writeTable(t, "bad.csv", "@proceed,weather\nyes,rain\nno,rain\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{path})
	require.Error(t, err)
	var use *UnderSpecifiedNameError
	require.ErrorAs(t, err, &use)
}

func TestCompileReportsNoIndependentValuesError(t *testing.T) {
	a := writeTable(t, "a.csv", "@a,b\nyes,y\nno,n\n")
	b := writeTable(t, "b.csv", "@b,a\ny,yes\nn,no\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{a, b})
	require.Error(t, err)
	var nie *NoIndependentValuesError
	require.ErrorAs(t, err, &nie)
}

func TestCompileReportsPartiallyIndependentError(t *testing.T) {
	// signal's "green" is never a result anywhere, but a second table
	// makes "red" and "blue" the results of inferences, leaving signal
	// with one independent value and two dependent values.
	a := writeTable(t, "a.csv", trafficLightTable)
	b := writeTable(t, "b.csv", "@signal,other\nred,foo\nblue,bar\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{a, b})
	require.Error(t, err)
	var pie *PartiallyIndependentError
	require.ErrorAs(t, err, &pie)
}

func TestCompileReportsOomError(t *testing.T) {
	path := writeTable(t, "traffic.csv", trafficLightTable)
	var buf bytes.Buffer
	err := Compile(&buf, []string{path}, MaxCandidates(1))
	require.Error(t, err)
	var oom *OomError
	require.ErrorAs(t, err, &oom)
}

func TestCompileReportsContradictionError(t *testing.T) {
	// a=t discharges "verdict" to two different values, a genuine
	// contradiction in the source table rather than a duplicate row
	// (the two rows differ in their result, not their premise).
	path := writeTable(t, "bad.csv", "@verdict,a\nyes,t\nno,t\nno,f\n")
	var buf bytes.Buffer
	err := Compile(&buf, []string{path})
	require.Error(t, err)
	var ce *ContradictionError
	require.ErrorAs(t, err, &ce)
}
