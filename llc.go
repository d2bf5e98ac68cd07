package llc

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// ErrLengthLimit is returned by SizeBySymbol when the alphabet contains more
// positive-frequency symbols than a prefix code of the requested maximum
// size can distinguish.  The caller must decide whether to raise the limit
// or shrink the alphabet.
var ErrLengthLimit = errors.New("llc: too many symbols for length limit")

// SizeBySymbol computes an optimal length-limited prefix code.  The first
// argument tells SizeBySymbol how many Symbols are in the code's alphabet,
// and the second argument lists the frequency (i.e. number of occurrences)
// for each Symbol in the code, one for each Symbol except that any Symbol
// not represented in the list is assumed to have a frequency of 0.
//
// The result contains the bit size for each Symbol in the alphabet: 0 for a
// Symbol with frequency 0, and a value in [1, maxSize] otherwise.  Among all
// prefix codes whose longest codeword does not exceed maxSize bits, the
// returned sizes minimize the total weighted code length.  The sizes always
// satisfy Kraft's inequality, so they can be turned into actual codewords by
// canonical assignment.
//
// SizeBySymbol returns an error wrapping ErrLengthLimit if more than
// 2**maxSize symbols have a positive frequency; in that case no sizes are
// produced.
func SizeBySymbol(numSymbols int, frequencies []uint32, maxSize byte) ([]byte, error) {
	assert.Assertf(numSymbols <= int(MaxSymbol), "numSymbols %d > MaxSymbol %d", numSymbols, int(MaxSymbol))
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))
	assert.Assertf(maxSize != 0, "maxSize must be at least 1")

	leaves := buildLeaves(frequencies)
	numLeaves := len(leaves)

	sizes := make([]byte, numSymbols)
	switch numLeaves {
	case 0:
		return sizes, nil
	case 1:
		// A 1-symbol code carries no information, but the symbol
		// still needs a nonzero size.
		sizes[leaves[0].symbol] = 1
		return sizes, nil
	}

	if tooManySymbols(numLeaves, maxSize) {
		return nil, fmt.Errorf("llc: %d symbols do not fit in %d-bit codes: %w", numLeaves, maxSize, ErrLengthLimit)
	}

	byWeight(leaves).Sort()

	c := newCoder(leaves, maxSize)
	c.run()
	c.extractSizes(sizes)

	for symbol := Symbol(0); symbol < Symbol(len(frequencies)); symbol++ {
		size, freq := sizes[symbol], frequencies[symbol]
		assert.Assertf((size == 0) == (freq == 0), "symbol %d: frequency %d paired with size %d", symbol, freq, size)
		assert.Assertf(size <= maxSize, "symbol %d: size %d exceeds limit %d", symbol, size, maxSize)
	}
	return sizes, nil
}

// tooManySymbols reports whether numLeaves exceeds 2**maxSize, i.e. whether
// numLeaves-1 needs more than maxSize bits.  Requires numLeaves >= 2.
func tooManySymbols(numLeaves int, maxSize byte) bool {
	if maxSize >= 32 {
		// numLeaves <= MaxSymbol < 2**32.
		return false
	}
	return log2uint32(uint32(numLeaves-1)) > uint32(maxSize)
}
