// Package llc computes optimal length-limited prefix codes.  These are
// useful for DEFLATE and other compression formats that cap the length of
// their Huffman codewords.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//	Katajainen, Moffat & Turpin, "A Fast and Space-Economical Algorithm
//	for Length-Limited Coding", ISAAC 1995
package llc
