//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command genmodulus generates a small, fully-known-factorization
// test modulus N = p*q for exercising the synthetic VDF forgery
// scenario (spec.md §8, S5). It is explicitly not a production RSA
// modulus generator: a modulus whose factors are known to its
// generator is unsafe to use for real VDF compression, which is why
// this tool requires -unsafe-test-modulus before it will run.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/paradoxcompress/bigint"
)

var (
	bits   = flag.Int("bits", 512, "bit size of each of the two prime factors")
	unsafe = flag.Bool("unsafe-test-modulus", false, "acknowledge this modulus's factorization will be known and must never be used in production")
)

func main() {
	flag.Parse()

	if !*unsafe {
		log.Fatalf("genmodulus: refusing to run without -unsafe-test-modulus; " +
			"this tool prints a modulus whose factorization it knows")
	}
	if *bits < 512 {
		log.Fatalf("genmodulus: -bits must be at least 512 to keep N >= 1024 bits overall")
	}

	p, err := randPrime(*bits)
	if err != nil {
		log.Fatalf("genmodulus: %v", err)
	}
	q, err := randPrime(*bits)
	if err != nil {
		log.Fatalf("genmodulus: %v", err)
	}
	n := p.Mul(q)
	if n.IsEven() {
		log.Fatalf("genmodulus: internal error: p*q is even")
	}

	fmt.Printf("# p = %s\n", hex(p))
	fmt.Printf("# q = %s\n", hex(q))
	fmt.Printf("0x%s\n", hex(n))
}

func randPrime(bits int) (*bigint.Int, error) {
	one := bigint.One()
	min := one.Lsh(uint(bits - 1))
	max := one.Lsh(uint(bits)).Sub(one)
	return bigint.RandomPrime(rand.Reader, min, max, nil, false)
}

func hex(x *bigint.Int) string {
	s, err := x.ToRadix(16)
	if err != nil {
		fmt.Fprintln(os.Stderr, "genmodulus:", err)
		os.Exit(1)
	}
	return s
}
