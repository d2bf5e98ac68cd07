package llc

import (
	"github.com/chronos-tachyon/assert"
)

// nodeRef is a handle to one slot in a nodePool's arena.  Chains link
// through nodeRefs rather than pointers so that the pool can sweep and reuse
// slots in place.
type nodeRef int32

// nilRef terminates a chain.
const nilRef = nodeRef(-1)

// node is one link in a chain of package-merge steps.  count is the number
// of leaves consumed by the chain ending at this link, and tail is the
// previous link in the same chain.  Chains share tails, so a node may be
// referenced by several chains at once; nodes are never freed individually,
// only mass-reclaimed by the pool.
type node struct {
	weight uint64
	count  int32
	tail   nodeRef
	inUse  bool
}

// lookahead holds the two most recent chains produced at one merge level.
// The prev and cur refs of every level together form the root set for
// reclamation.
type lookahead struct {
	prev nodeRef
	cur  nodeRef
}

// nodePool is a fixed-capacity arena of chain nodes with an allocation
// cursor.  The cursor only moves forward; when it runs off the end of the
// arena, the pool reclaims every slot not reachable from the caller's roots
// and resumes scanning from the start.
type nodePool struct {
	slots  []node
	cursor int
}

func newNodePool(capacity int) *nodePool {
	return &nodePool{slots: make([]node, capacity)}
}

// at returns the node for the given ref.  The pointer is only valid until
// the next reclamation.
func (p *nodePool) at(ref nodeRef) *node {
	return &p.slots[ref]
}

// allocPlain hands out the next free slot without regard for any roots: on
// exhaustion, every slot in the arena becomes free again.  Only valid before
// the lookahead lists exist.
func (p *nodePool) allocPlain() nodeRef {
	return p.alloc(nil)
}

// allocTracked hands out the next free slot, reclaiming unreachable slots if
// the arena is exhausted.  lists supplies the root set for the mark pass.
// Every chain still needed by the caller must hang off one of the roots.
func (p *nodePool) allocTracked(lists []lookahead) nodeRef {
	return p.alloc(lists)
}

func (p *nodePool) alloc(lists []lookahead) nodeRef {
	reclaimed := false
	for {
		if p.cursor >= len(p.slots) {
			assert.Assertf(!reclaimed, "node pool exhausted: no free slot among %d after reclamation", len(p.slots))
			p.reclaim(lists)
			reclaimed = true
		}
		if !p.slots[p.cursor].inUse {
			break
		}
		p.cursor++
	}
	ref := nodeRef(p.cursor)
	p.cursor++
	p.slots[ref] = node{tail: nilRef, inUse: true}
	return ref
}

// set fills in a freshly allocated slot.
func (p *nodePool) set(ref nodeRef, weight uint64, count int32, tail nodeRef) {
	p.slots[ref] = node{weight: weight, count: count, tail: tail, inUse: true}
}

// reclaim clears every slot not reachable from the given roots and resets
// the cursor.  With nil lists there are no roots and the whole arena is
// cleared.
func (p *nodePool) reclaim(lists []lookahead) {
	for i := range p.slots {
		p.slots[i].inUse = false
	}
	for _, pair := range lists {
		p.mark(pair.prev)
		p.mark(pair.cur)
	}
	p.cursor = 0
}

func (p *nodePool) mark(ref nodeRef) {
	for ref != nilRef {
		n := p.at(ref)
		if n.inUse {
			// Already marked, so the rest of the chain is too.
			break
		}
		n.inUse = true
		ref = n.tail
	}
}
