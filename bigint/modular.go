//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import "fmt"

// GCD computes the extended Euclidean algorithm of a and b, returning
// (g, u, v) such that g = a*u + b*v and g >= 0.
func (a *Int) GCD(b *Int) (g, u, v *Int) {
	oldR, r := a, b
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		q := oldR.Quo(r)
		oldR, r = r, oldR.Sub(q.Mul(r))
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}

	g, u, v = oldR, oldS, oldT
	if g.Sign() < 0 {
		g, u, v = g.Neg(), u.Neg(), v.Neg()
	}
	return g, u, v
}

// InvMod returns the representative in [0, |m|) of the inverse of x
// modulo m, for m != 0. It reports an error if x has no inverse
// modulo m (i.e. gcd(x, m) != 1); this works for both odd and even m,
// since extended-Euclid makes no assumption about the parity of
// either operand.
func (x *Int) InvMod(m *Int) (*Int, error) {
	if m.IsZero() {
		panic("bigint: InvMod modulus is zero")
	}
	mAbs := m.Abs()
	if mAbs.IsOne() {
		return Zero(), nil
	}
	g, u, _ := x.GCD(mAbs)
	if !g.IsOne() {
		return nil, fmt.Errorf("bigint: %v has no inverse modulo %v", x, mAbs)
	}
	return u.Mod(mAbs), nil
}

// ModPow returns self^e mod |m|, in [0, |m|). If e is negative, self
// is first inverted modulo |m| (panicking if no inverse exists, per
// the package's programmer-error convention — callers are expected to
// ensure invertibility before passing a negative exponent). If |m|==1
// the result is always 0.
//
// For an odd modulus the computation runs entirely in Montgomery
// form. For an even modulus, m is split as m = m1 * 2^t with m1 odd;
// the odd part is computed via Montgomery exponentiation and the
// power-of-two part via truncated (masked) multiplication, and the two
// results are recombined by CRT.
func (x *Int) ModPow(e, m *Int) *Int {
	mAbs := m.Abs()
	if mAbs.IsOne() {
		return Zero()
	}

	base := x
	exp := e
	if e.Sign() < 0 {
		inv, err := x.InvMod(mAbs)
		if err != nil {
			panic("bigint: ModPow: " + err.Error())
		}
		base = inv
		exp = e.Neg()
	}

	if mAbs.IsOdd() {
		return montgomeryPow(base, exp, mAbs)
	}

	t := mAbs.TrailingZeros()
	m1 := mAbs.Rsh(uint(t))
	twoPowT := One().Lsh(uint(t))
	mask := twoPowT.Sub(One())

	var r1 *Int
	if m1.IsOne() {
		r1 = Zero()
	} else {
		r1 = montgomeryPow(base, exp, m1)
	}

	r2 := powTruncated(base, exp, mask)

	// CRT recombination: find z with z == r1 (mod m1), z == r2 (mod 2^t).
	invM1, err := m1.InvMod(twoPowT)
	if err != nil {
		panic("bigint: ModPow: even-modulus CRT split produced non-coprime parts")
	}
	diff := r2.Sub(r1).And(mask)
	z := r1.Add(m1.Mul(diff.Mul(invM1).And(mask)))
	return z.Mod(mAbs)
}

// powTruncated computes base^e mod 2^t via square-and-multiply, where
// mask == 2^t - 1; multiplication is "truncated" by masking off all
// bits above position t-1 after every multiply, matching ordinary
// multiplication modulo 2^t with the high words discarded.
func powTruncated(base, e, mask *Int) *Int {
	if mask.IsZero() {
		return Zero()
	}
	result := One().And(mask)
	b := base.And(mask)
	bitLen := e.BitLen()
	for i := bitLen - 1; i >= 0; i-- {
		result = result.Mul(result).And(mask)
		if e.TestBit(i) {
			result = result.Mul(b).And(mask)
		}
	}
	return result
}
