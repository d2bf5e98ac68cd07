package llc

import (
	"github.com/chronos-tachyon/assert"
)

// coder holds the per-invocation state of the boundary package-merge
// computation: the sorted leaves, one lookahead pair per code size, and the
// node pool the chains allocate from.  All of it is discarded when the
// invocation returns.
type coder struct {
	leaves []leaf
	lists  []lookahead
	pool   *nodePool
}

// newCoder builds the coder state for a sorted leaf list.  Requires at least
// two leaves; the 0- and 1-symbol alphabets never reach the merge phase.
func newCoder(leaves []leaf, maxSize byte) *coder {
	for i := 1; i < len(leaves); i++ {
		assert.Assertf(leaves[i-1].weight <= leaves[i].weight, "leaves out of order at index %d", i)
	}

	// Optimal sizes never exceed len(leaves)-1, so deeper lists cannot
	// contribute chains and only inflate the pool.
	numLists := int(maxSize)
	if n := len(leaves) - 1; n < numLists {
		numLists = n
	}

	// Between any two reclamations the merge phase allocates at most
	// 2*numLists*(numLists+1) nodes, so a pool of that capacity never
	// runs dry twice in a row.
	c := &coder{
		leaves: leaves,
		lists:  make([]lookahead, numLists),
		pool:   newNodePool(2 * numLists * (numLists + 1)),
	}
	c.initLists()
	return c
}

// initLists seeds every level with the same two singleton chains, built from
// the two lowest-weight leaves.
func (c *coder) initLists() {
	node0 := c.pool.allocPlain()
	c.pool.set(node0, uint64(c.leaves[0].weight), 1, nilRef)
	node1 := c.pool.allocPlain()
	c.pool.set(node1, uint64(c.leaves[1].weight), 2, nilRef)
	for level := range c.lists {
		c.lists[level] = lookahead{prev: node0, cur: node1}
	}
}

// run drives the merge to completion.  Two chains per level already exist
// from initLists, and each top-level call produces one more, so the final
// chain at the top level is ready after 2*len(leaves)-4 calls.
func (c *coder) run() {
	top := len(c.lists) - 1
	numRuns := 2*len(c.leaves) - 4
	for i := 0; i < numRuns; i++ {
		c.boundaryPM(top, i == numRuns-1)
	}
}

// boundaryPM grows the lookahead pair at level by one chain.  A new chain
// either consumes the next unconsumed leaf (whichever of the two is cheaper)
// or packages the two lookahead chains of the level below; in the latter
// case the consumed chains are regenerated by recursing twice, unless this
// is the final call and no later call will look at them.
func (c *coder) boundaryPM(level int, final bool) {
	lastCount := c.pool.at(c.lists[level].cur).count
	assert.Assertf(int(lastCount) <= len(c.leaves), "chain count %d exceeds %d leaves", lastCount, len(c.leaves))

	if level == 0 && int(lastCount) >= len(c.leaves) {
		// No leaves left to place at the finest level.
		return
	}

	// Shift the pair before touching the level below, so that the new
	// chain is a reclamation root during any nested allocation.
	newChain := c.pool.allocTracked(c.lists)
	oldChain := c.lists[level].cur
	c.lists[level].prev = oldChain
	c.lists[level].cur = newChain

	if level == 0 {
		// Consume the next leaf in ascending weight order.
		c.pool.set(newChain, uint64(c.leaves[lastCount].weight), lastCount+1, nilRef)
		return
	}

	below := c.lists[level-1]
	sum := c.pool.at(below.prev).weight + c.pool.at(below.cur).weight
	if int(lastCount) < len(c.leaves) && sum > uint64(c.leaves[lastCount].weight) {
		// The next leaf is cheaper than packaging the two chains
		// below: substitute it, keeping the old chain's tail.
		tail := c.pool.at(oldChain).tail
		c.pool.set(newChain, uint64(c.leaves[lastCount].weight), lastCount+1, tail)
		return
	}

	c.pool.set(newChain, sum, lastCount, below.cur)
	if !final {
		c.boundaryPM(level-1, false)
		c.boundaryPM(level-1, false)
	}
}

// extractSizes walks the final chain at the top level and writes the bit
// size of every present symbol into sizes.  Each link contributes one bit to
// the first count leaves in sorted order, so a leaf's size ends up equal to
// the number of links whose count exceeds its index.
func (c *coder) extractSizes(sizes []byte) {
	numLeaves := int32(len(c.leaves))
	for ref := c.lists[len(c.lists)-1].cur; ref != nilRef; {
		n := c.pool.at(ref)
		assert.Assertf(n.count <= numLeaves, "chain count %d exceeds %d leaves", n.count, numLeaves)
		for i := int32(0); i < n.count; i++ {
			sizes[c.leaves[i].symbol]++
		}
		ref = n.tail
	}
}
