// Command llc counts byte frequencies in a file (or stdin) and prints the
// optimal length-limited code sizes for them.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/kanigsson/llc"
)

func main() {
	maxSize := flag.Uint("b", 15, "maximum code size in bits")
	flag.Parse()
	if *maxSize < 1 || *maxSize > 255 {
		log.Fatalf("-b %d out of range [1, 255]", *maxSize)
	}

	fin := os.Stdin
	if name := flag.Arg(0); name != "" {
		f, err := os.Open(name)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		fin = f
	}

	frequencies := countBytes(bufio.NewReader(fin))
	sizes, err := llc.SizeBySymbol(len(frequencies), frequencies, byte(*maxSize))
	if err != nil {
		log.Fatal(err)
	}

	for symbol, size := range sizes {
		if size == 0 {
			continue
		}
		fmt.Printf("%q\t%d\t%d\n", byte(symbol), frequencies[symbol], size)
	}
}

func countBytes(r io.ByteReader) []uint32 {
	frequencies := make([]uint32, 256)
	for {
		ch, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return frequencies
			}
			log.Fatal(err)
		}
		frequencies[ch]++
	}
}
