package llc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodePoolPlainWrapsAround(t *testing.T) {
	p := newNodePool(2)

	a := p.allocPlain()
	p.set(a, 1, 1, nilRef)
	b := p.allocPlain()
	p.set(b, 2, 2, a)
	require.Equal(t, nodeRef(0), a)
	require.Equal(t, nodeRef(1), b)

	// Exhaustion with no roots frees the whole arena.
	c := p.allocPlain()
	require.Equal(t, nodeRef(0), c)
	require.False(t, p.at(nodeRef(1)).inUse)
}

func TestNodePoolReclaimKeepsReachable(t *testing.T) {
	p := newNodePool(4)

	a := p.allocPlain()
	p.set(a, 10, 1, nilRef)
	b := p.allocPlain()
	p.set(b, 20, 2, a)
	lists := []lookahead{{prev: a, cur: b}}

	c := p.allocTracked(lists)
	p.set(c, 30, 3, b)
	d := p.allocTracked(lists)
	p.set(d, 40, 4, c)

	// The arena is now full and only a and b hang off the roots, so the
	// next allocation sweeps c and d and reuses c's slot.
	e := p.allocTracked(lists)
	require.Equal(t, c, e)

	require.True(t, p.at(a).inUse)
	require.True(t, p.at(b).inUse)
	require.False(t, p.at(d).inUse)
	require.Equal(t, uint64(10), p.at(a).weight)
	require.Equal(t, uint64(20), p.at(b).weight)
	require.Equal(t, a, p.at(b).tail)
}

func TestNodePoolExhaustionPanics(t *testing.T) {
	p := newNodePool(2)

	a := p.allocPlain()
	p.set(a, 1, 1, nilRef)
	b := p.allocPlain()
	p.set(b, 2, 2, a)
	lists := []lookahead{{prev: b, cur: b}}

	// Every slot is reachable from the roots, so reclamation cannot make
	// progress; this is a broken capacity bound and must fail loudly.
	require.Panics(t, func() { p.allocTracked(lists) })
}
