//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package group implements the group G = (Z/NZ)* / {±1}: elements are
// unordered pairs {u, -u} of invertible residues modulo N, represented
// by their canonical lift in [1, (N-1)/2]. Raw modular residues are
// never exposed outside this package; callers only see Element values
// produced by FromResidue/TryDecode/Mul/Pow, localizing canonicalization to
// this one module (spec.md §9's design note).
package group

import (
	"fmt"

	"github.com/markkurossi/paradoxcompress/bigint"
)

// Group holds the fixed modulus N for the lifetime of a codec.
type Group struct {
	n     *bigint.Int
	nlen  int
	halfN *bigint.Int
}

// New validates N and constructs the group (Z/NZ)* / {±1} over it. N
// must be a positive odd integer whose big-endian encoding is at
// least 1024 bits (128 bytes) long.
func New(n *bigint.Int) (*Group, error) {
	if n.Sign() <= 0 {
		return nil, fmt.Errorf("group: modulus must be positive")
	}
	if n.IsEven() {
		return nil, fmt.Errorf("group: modulus must be odd")
	}
	nlen := len(n.ToUnsignedBytesBE())
	if 8*nlen < 1024 {
		return nil, fmt.Errorf("group: modulus too short (%d bits < 1024)", 8*nlen)
	}
	halfN := n.Sub(bigint.One()).Rsh(1)
	return &Group{n: n, nlen: nlen, halfN: halfN}, nil
}

// N returns the modulus.
func (g *Group) N() *bigint.Int { return g.n }

// Nlen returns the byte length of the modulus encoding.
func (g *Group) Nlen() int { return g.nlen }

// ModulusBytes returns the fixed Nlen-byte big-endian encoding of N
// itself (as absorbed by the hash oracles, not a group element).
func (g *Group) ModulusBytes() []byte {
	b := g.n.ToUnsignedBytesBE()
	out := make([]byte, g.nlen)
	copy(out[g.nlen-len(b):], b)
	return out
}

// Element is a member of G, represented by its canonical lift.
type Element struct {
	g *Group
	x *bigint.Int
}

func (g *Group) canonical(x *bigint.Int) *bigint.Int {
	r := x.Mod(g.n)
	if r.Cmp(g.halfN) > 0 {
		r = g.n.Sub(r)
	}
	return r
}

// elem wraps an already-canonicalized lift produced within this
// package; it is not exported so outside callers cannot fabricate an
// Element from an arbitrary residue without going through
// TryDecode/FromResidue.
func (g *Group) elem(x *bigint.Int) *Element {
	return &Element{g: g, x: x}
}

// FromResidue builds the canonical Element for an arbitrary (possibly
// non-canonical, possibly out-of-range) residue x, e.g. the output of
// a hash oracle before it is known to lie in [1,(N-1)/2].
func (g *Group) FromResidue(x *bigint.Int) *Element {
	return g.elem(g.canonical(x))
}

// Encode returns the fixed Nlen-byte big-endian encoding of e's
// canonical lift.
func (g *Group) Encode(e *Element) []byte {
	b := e.x.ToUnsignedBytesBE()
	out := make([]byte, g.nlen)
	copy(out[g.nlen-len(b):], b)
	return out
}

// TryDecode parses exactly Nlen bytes as an unsigned big-endian
// integer x and accepts it as a group element iff 1 <= x <= (N-1)/2.
func (g *Group) TryDecode(b []byte) (*Element, bool) {
	if len(b) != g.nlen {
		return nil, false
	}
	x := bigint.FromUnsignedBytesBE(b)
	if x.Sign() <= 0 || x.Cmp(g.halfN) > 0 {
		return nil, false
	}
	return g.elem(x), true
}

// Mul returns a*b in G.
func (a *Element) Mul(b *Element) *Element {
	return a.g.elem(a.g.canonical(a.x.Mul(b.x)))
}

// Pow returns a^e in G, for any integer exponent e (negative exponents
// invert a first, per bigint.Int.ModPow's contract).
func (a *Element) Pow(e *bigint.Int) *Element {
	return a.g.elem(a.g.canonical(a.x.ModPow(e, a.g.n)))
}

// Eq reports whether a and b are equal (i.e. have equal canonical
// lifts).
func (a *Element) Eq(b *Element) bool {
	return a.x.Cmp(b.x) == 0
}

// Lift returns the canonical lift of a, in [1, (N-1)/2].
func (a *Element) Lift() *bigint.Int {
	return a.x
}
