package llc

import (
	"sort"
)

// leaf pairs one positive-frequency symbol with its weight.  The collection
// of leaves is sorted once by ascending weight and is read-only afterward.
type leaf struct {
	weight uint32
	symbol Symbol
}

// buildLeaves filters the frequency table down to the symbols that actually
// occur, in symbol order.
func buildLeaves(frequencies []uint32) []leaf {
	leaves := make([]leaf, 0, len(frequencies))
	for symbol := Symbol(0); symbol < Symbol(len(frequencies)); symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			leaves = append(leaves, leaf{freq, symbol})
		}
	}
	return leaves
}

// type byWeight {{{

type byWeight []leaf

func (list byWeight) Len() int {
	return len(list)
}

func (list byWeight) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight) Less(i, j int) bool {
	a, b := list[i], list[j]
	aw, ay := a.weight, a.symbol
	bw, by := b.weight, b.symbol
	if aw != bw {
		return aw < bw
	}
	return ay < by
}

func (list byWeight) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byWeight(nil)

// }}}
