//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vdf

import (
	"errors"

	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/group"
	"github.com/markkurossi/paradoxcompress/shake"
)

var errInvalidCounterLength = errors.New("vdf: counter must be exactly 16 bytes")

const (
	domainH = 0x01
	domainH2 = 0x02
)

// H is the hash-to-group oracle (spec.md §4.5): it derives a group
// element deterministically from the compressed input e, domain
// separated from h by a leading 0x01 byte and additionally bound to
// the modulus N so the same e under two different moduli cannot
// collide.
func (v *VDF) H(e []byte) *group.Element {
	s := shake.New()
	s.Update([]byte{domainH})
	s.Update(e)
	s.Update(v.g.ModulusBytes())
	s.Flip()
	out := s.Squeeze(v.g.Nlen())
	x := bigint.FromUnsignedBytesBE(out)
	return v.g.FromResidue(x)
}

// h is the Fiat-Shamir challenge oracle (spec.md §4.5): it derives the
// prime ell used to compress the VDF proof, bound to g, N, T and f so
// a prover cannot choose ell after the fact. Domain separated from H
// by a leading 0x02 byte.
func (v *VDF) h(g *group.Element, t *bigint.Int, f *group.Element) *bigint.Int {
	s := shake.New()
	s.Update([]byte{domainH2})
	s.Update(v.g.Encode(g))
	s.Update(v.g.ModulusBytes())
	s.Update(EncodeCounter(t))
	s.Update(v.g.Encode(f))
	s.Flip()
	out := s.Squeeze(32)

	y := bigint.FromUnsignedBytesBE(out)
	if y.Cmp(bigint.FromInt64(2)) <= 0 {
		return bigint.FromInt64(3)
	}
	return bigint.NextPrime(y)
}
