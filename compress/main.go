package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fumin/rangecoder"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := rangecoder.CompressFile(os.Stdout, name); err != nil {
		log.Fatalf("%+v", err)
	}
}
