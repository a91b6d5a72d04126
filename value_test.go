// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameAddValueDedupes(t *testing.T) {
	p := NewPool()
	nam := newName(p.Intern([]byte("signal")))
	green := nam.addValue(p.Intern([]byte("green")))
	again := nam.addValue(p.Intern([]byte("green")))
	assert.Same(t, green, again)
	assert.Len(t, nam.Values(), 1)
}

func TestNameValuesCanonicalOrder(t *testing.T) {
	p := NewPool()
	nam := newName(p.Intern([]byte("signal")))
	nam.addValue(p.Intern([]byte("red")))
	nam.addValue(p.Intern([]byte("green")))
	nam.addValue(p.Intern([]byte("amber")))
	require.Len(t, nam.Values(), 3)
	assert.Equal(t, "amber", nam.Values()[0].Sym.String())
	assert.Equal(t, "green", nam.Values()[1].Sym.String())
	assert.Equal(t, "red", nam.Values()[2].Sym.String())
}

func TestValuesSetAddContainsClone(t *testing.T) {
	p := NewPool()
	nam := newName(p.Intern([]byte("signal")))
	green := nam.addValue(p.Intern([]byte("green")))
	red := nam.addValue(p.Intern([]byte("red")))

	vs := newValues(0)
	assert.True(t, vs.add(red))
	assert.True(t, vs.add(green))
	assert.False(t, vs.add(green), "re-adding an existing value reports false")
	require.Equal(t, 2, vs.Len())
	assert.True(t, vs.contains(green))
	assert.True(t, vs.contains(red))

	clone := vs.clone()
	assert.Equal(t, 0, vs.Cmp(clone))
	clone.add(nam.addValue(p.Intern([]byte("amber"))))
	assert.NotEqual(t, 0, vs.Cmp(clone))
}
