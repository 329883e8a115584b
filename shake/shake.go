//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package shake implements the SHAKE128 extendable-output function as
// a thin façade over package keccak: capacity 256 bits (rate 1344
// bits / 168 bytes), SHAKE domain-separation padding (0x1F).
package shake

import "github.com/markkurossi/paradoxcompress/keccak"

const (
	capacityBits = 256
	domainSHAKE  = 0x1F
)

// Shake128 is a SHAKE128 extendable-output hash instance.
type Shake128 struct {
	sp *keccak.Sponge
}

// New creates a fresh SHAKE128 instance, ready to absorb.
func New() *Shake128 {
	return &Shake128{sp: keccak.New(capacityBits)}
}

// Update absorbs more input. Valid only before Flip.
func (s *Shake128) Update(data []byte) *Shake128 {
	s.sp.Update(data)
	return s
}

// Flip finishes absorption and switches to squeezing.
func (s *Shake128) Flip() *Shake128 {
	s.sp.Flip(domainSHAKE)
	return s
}

// Next squeezes len(out) further bytes. Valid only after Flip.
func (s *Shake128) Next(out []byte) {
	s.sp.Next(out)
}

// Squeeze returns n freshly squeezed bytes. Valid only after Flip.
func (s *Shake128) Squeeze(n int) []byte {
	return s.sp.Squeeze(n)
}

// Reset returns the instance to a fresh absorb state.
func (s *Shake128) Reset() *Shake128 {
	s.sp.Reset()
	return s
}

// Sum128 is a convenience one-shot helper: absorb data, then squeeze n
// bytes.
func Sum128(data []byte, n int) []byte {
	return New().Update(data).Flip().Squeeze(n)
}
