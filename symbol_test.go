// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolInternIdempotent(t *testing.T) {
	p := NewPool()
	a := p.Intern([]byte("green"))
	b := p.Intern([]byte("green"))
	assert.Same(t, a, b)
}

func TestPoolInternDistinct(t *testing.T) {
	p := NewPool()
	a := p.Intern([]byte("green"))
	b := p.Intern([]byte("red"))
	assert.NotSame(t, a, b)
}

func TestPoolCanonicalOrder(t *testing.T) {
	p := NewPool()
	for _, v := range []string{"red", "green", "amber"} {
		p.Intern([]byte(v))
	}
	require := assert.New(t)
	require.Len(p.syms, 3)
	require.Equal("amber", p.syms[0].String())
	require.Equal("green", p.syms[1].String())
	require.Equal("red", p.syms[2].String())
}

func TestCmpBytesShorterFirstOnSharedPrefix(t *testing.T) {
	assert.True(t, cmpBytes([]byte("go"), []byte("gopher")) < 0)
	assert.True(t, cmpBytes([]byte("gopher"), []byte("go")) > 0)
	assert.Equal(t, 0, cmpBytes([]byte("go"), []byte("go")))
}
