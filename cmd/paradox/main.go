//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command paradox is a CLI wrapper around package codec: compress,
// decompress (each reading an input file and writing a separate output
// file), and verify files.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"

	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/codec"
)

var (
	modulusFile = flag.String("modulus", "", "path to a file containing an alternate modulus N in hex")
	verbose     = flag.Bool("verbose", false, "log codec.Stats after compressing")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		usage()
	}

	c, err := newCodec()
	if err != nil {
		log.Fatalf("paradox: %v", err)
	}

	switch args[0] {
	case "compress":
		if len(args) != 3 {
			usage()
		}
		runCompress(c, args[1], args[2])

	case "decompress":
		if len(args) != 3 {
			usage()
		}
		runDecompress(c, args[1], args[2])

	case "verify":
		if len(args) != 2 {
			usage()
		}
		runVerify(c, args[1])

	default:
		log.Printf("paradox: invalid operation: %v", args[0])
		os.Exit(1)
	}
}

func usage() {
	log.Printf("usage: paradox compress <in> <out>")
	log.Printf("       paradox decompress <in> <out>")
	log.Printf("       paradox verify <in>")
	os.Exit(1)
}

func newCodec() (*codec.Codec, error) {
	if *modulusFile == "" {
		return codec.NewDefault()
	}
	raw, err := os.ReadFile(*modulusFile)
	if err != nil {
		return nil, err
	}
	n, err := bigint.ParseRadix(string(bytes.TrimSpace(raw)), 0)
	if err != nil {
		return nil, err
	}
	return codec.New(n)
}

func runCompress(c *codec.Codec, inPath, outPath string) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("paradox: %v", err)
	}

	out, stats, err := c.CompressWithStats(data)
	if err != nil {
		log.Fatalf("paradox: compress: %v", err)
	}
	if *verbose {
		log.Printf("paradox: input=%d output=%d header=%d counter=%v",
			stats.InputLen, stats.OutputLen, stats.HeaderLen, stats.Counter)
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		log.Fatalf("paradox: %v", err)
	}
}

func runDecompress(c *codec.Codec, inPath, outPath string) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("paradox: %v", err)
	}

	out, err := c.Decompress(data)
	if err != nil {
		log.Fatalf("paradox: decompress: %v", err)
	}

	if err := os.WriteFile(outPath, out, 0644); err != nil {
		log.Fatalf("paradox: %v", err)
	}
}

func runVerify(c *codec.Codec, inPath string) {
	data, err := os.ReadFile(inPath)
	if err != nil {
		log.Fatalf("paradox: %v", err)
	}

	if c.VerifyHeader(data) {
		log.Printf("paradox: %s: valid VDF header", inPath)
		return
	}
	log.Printf("paradox: %s: no valid VDF header present", inPath)
	os.Exit(1)
}
