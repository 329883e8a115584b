//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package vdf implements Wesolowski's Verifiable Delay Function over
// the group G of package group: the hash oracles H and h (spec.md
// §4.5) and the Eval/Verify procedures (spec.md §4.6).
package vdf

import (
	"github.com/markkurossi/paradoxcompress/bigint"
	"github.com/markkurossi/paradoxcompress/group"
)

// CounterSize is the fixed byte width of the encoded counter T.
const CounterSize = 16

// MaxCounterBits is the maximum bit width of a counter T (T < 2^128).
const MaxCounterBits = 128

// VDF binds the hash oracles and Eval/Verify to a single group.
type VDF struct {
	g *group.Group
}

// New creates a VDF instance over the given group.
func New(g *group.Group) *VDF {
	return &VDF{g: g}
}

// Group returns the underlying group.
func (v *VDF) Group() *group.Group {
	return v.g
}

// EncodeCounter encodes T as exactly 16 big-endian bytes. T must be
// non-negative and representable in 128 bits; violating either is a
// programmer error (spec.md §9's truncation is the caller's
// responsibility, not this package's).
func EncodeCounter(t *bigint.Int) []byte {
	if t.Sign() < 0 {
		panic("vdf: counter must be non-negative")
	}
	if t.BitLen() > MaxCounterBits {
		panic("vdf: counter does not fit in 128 bits")
	}
	b := t.ToUnsignedBytesBE()
	out := make([]byte, CounterSize)
	copy(out[CounterSize-len(b):], b)
	return out
}

// DecodeCounter decodes a 16-byte big-endian counter.
func DecodeCounter(b []byte) (*bigint.Int, error) {
	if len(b) != CounterSize {
		return nil, errInvalidCounterLength
	}
	return bigint.FromUnsignedBytesBE(b), nil
}

// Eval computes (f, pi) = (g^(2^T), g^q) for g = H(e), where
// q = floor(2^T / ell) and ell = h(g, T, f), per spec.md §4.6. The
// squaring and the bit-by-bit long division are both inherently
// sequential in T; this is the source of the VDF's delay.
func (v *VDF) Eval(t *bigint.Int, e []byte) (f, pi *group.Element) {
	EncodeCounter(t) // validate range; panics on violation

	g := v.H(e)

	f = g
	one := bigint.One()
	i := bigint.Zero()
	for i.Cmp(t) < 0 {
		f = f.Mul(f)
		i = i.Add(one)
	}

	ell := v.h(g, t, f)
	pi = computePi(g, t, ell)
	return f, pi
}

// computePi computes g^floor(2^T/ell) via the bit-by-bit long-division
// recurrence of spec.md §4.6: at each step the running remainder r is
// doubled, reduced mod ell to extract one quotient bit b, and pi is
// squared and multiplied by g whenever b is 1. This materializes the
// quotient without ever forming 2^T itself. The dividend 2^T is, in
// binary, a single 1 bit followed by T zero bits; r starts at 1 to
// account for that leading bit (assuming ell > 1, which h guarantees),
// then the loop folds in the T trailing zero bits one at a time.
func computePi(g *group.Element, t, ell *bigint.Int) *group.Element {
	pi := g.Pow(bigint.Zero()) // identity: g^0
	r := bigint.One()
	two := bigint.FromInt64(2)

	i := bigint.Zero()
	one := bigint.One()
	for i.Cmp(t) < 0 {
		r = r.Mul(two)
		q, rem := r.QuoRem(ell)
		r = rem
		pi = pi.Mul(pi)
		if q.Sign() != 0 {
			pi = pi.Mul(g)
		}
		i = i.Add(one)
	}
	return pi
}

// Verify checks that (f, pi) is a valid VDF proof for (T, e): it
// recomputes g and ell, then checks pi^ell * g^r == f where
// r = 2^T mod ell.
func (v *VDF) Verify(t *bigint.Int, e []byte, f, pi *group.Element) bool {
	g := v.H(e)
	ell := v.h(g, t, f)
	r := bigint.FromInt64(2).ModPow(t, ell)
	lhs := pi.Pow(ell).Mul(g.Pow(r))
	return lhs.Eq(f)
}
