package llc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCoderClampsListCount(t *testing.T) {
	leaves := []leaf{{1, 0}, {2, 1}, {3, 2}}

	// Three leaves never need more than 2-bit codes, so only two
	// lookahead lists exist no matter how generous the limit is.
	c := newCoder(leaves, 15)
	require.Len(t, c.lists, 2)
	require.Len(t, c.pool.slots, 2*2*(2+1))

	c = newCoder(leaves, 1)
	require.Len(t, c.lists, 1)
}

func TestNewCoderRejectsUnsortedLeaves(t *testing.T) {
	leaves := []leaf{{9, 0}, {2, 1}, {3, 2}}
	require.Panics(t, func() { newCoder(leaves, 4) })
}

func TestInitLists(t *testing.T) {
	leaves := []leaf{{3, 2}, {5, 0}, {8, 1}}
	c := newCoder(leaves, 4)

	for _, pair := range c.lists {
		prev, cur := c.pool.at(pair.prev), c.pool.at(pair.cur)
		require.Equal(t, uint64(3), prev.weight)
		require.Equal(t, int32(1), prev.count)
		require.Equal(t, nilRef, prev.tail)
		require.Equal(t, uint64(5), cur.weight)
		require.Equal(t, int32(2), cur.count)
		require.Equal(t, nilRef, cur.tail)
	}
}

func TestFinalChain(t *testing.T) {
	leaves := []leaf{{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4}}
	c := newCoder(leaves, 3)
	c.run()

	// Every link consumes between 1 and numLeaves leaves, and the chain
	// is no longer than the number of lists.
	links := 0
	for ref := c.lists[len(c.lists)-1].cur; ref != nilRef; {
		n := c.pool.at(ref)
		require.Positive(t, n.count)
		require.LessOrEqual(t, n.count, int32(len(leaves)))
		links++
		ref = n.tail
	}
	require.LessOrEqual(t, links, len(c.lists))

	// The extracted sizes never increase with leaf weight: the lightest
	// leaves sit deepest in the code.
	sizes := make([]byte, 5)
	c.extractSizes(sizes)
	require.Equal(t, []byte{3, 3, 2, 2, 2}, sizes)
}
