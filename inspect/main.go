package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"

	"github.com/fumin/rangecoder"
	"github.com/fumin/rangecoder/internal/baseline"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
)

var compare = flag.Bool("compare", false, "also decompress the payload and report the sizes of other compressors")

type report struct {
	Name       string
	Length     uint32
	Distinct   int
	Compressed int

	// PayloadBytes is what remains after the uniformly coded header.
	PayloadBytes int

	// EntropyBytes is the order-0 entropy of the payload, the least any coder with this histogram can achieve.
	EntropyBytes float64

	Baselines map[string]int
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] compressed-file\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	r, err := inspect(name, *compare)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	pretty.Println(r)
}

func inspect(name string, compare bool) (report, error) {
	compressed, err := ioutil.ReadFile(name)
	if err != nil {
		return report{}, errors.Wrap(err, "")
	}
	hdr, err := rangecoder.ReadHeader(compressed)
	if err != nil {
		return report{}, errors.Wrap(err, name)
	}

	r := report{
		Name:         name,
		Length:       hdr.Length,
		Distinct:     hdr.Freqs.Distinct(),
		Compressed:   len(compressed),
		PayloadBytes: len(compressed) - rangecoder.HeaderSize,
		EntropyBytes: entropy(&hdr.Freqs) / 8,
	}
	if !compare {
		return r, nil
	}

	payload, err := rangecoder.Decompress(compressed)
	if err != nil {
		return report{}, errors.Wrap(err, name)
	}
	r.Baselines = make(map[string]int)
	for _, c := range baseline.Compressors {
		n, err := baseline.Size(c, payload)
		if err != nil {
			return report{}, errors.Wrap(err, c)
		}
		r.Baselines[c] = n
	}
	return r, nil
}

// entropy returns the order-0 information content of a payload with histogram h, in bits.
func entropy(h *rangecoder.Histogram) float64 {
	n := float64(h.Sum())
	var bits float64
	for _, c := range h {
		if c == 0 {
			continue
		}
		bits += float64(c) * math.Log2(n/float64(c))
	}
	return bits
}
