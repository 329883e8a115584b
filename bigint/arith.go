//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

// addAbs computes a+b for unsigned magnitudes a, b.
func addAbs(a, b []word) []word {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]word, len(a)+1)
	var carry uint64
	for i := range a {
		s := uint64(a[i]) + carry
		if i < len(b) {
			s += uint64(b[i])
		}
		out[i] = word(s)
		carry = s >> wordBits
	}
	out[len(a)] = word(carry)
	return norm(out)
}

// subAbs computes a-b for unsigned magnitudes a, b, requiring a>=b.
func subAbs(a, b []word) []word {
	out := make([]word, len(a))
	var borrow uint64
	for i := range a {
		s := uint64(a[i]) - borrow
		if i < len(b) {
			s -= uint64(b[i])
		}
		out[i] = word(s)
		borrow = (s >> 63) & 1
	}
	return norm(out)
}

// mulAbs computes a*b for unsigned magnitudes via schoolbook
// multiplication.
func mulAbs(a, b []word) []word {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make([]word, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		var carry uint64
		for j, bv := range b {
			s := uint64(av)*uint64(bv) + uint64(out[i+j]) + carry
			out[i+j] = word(s)
			carry = s >> wordBits
		}
		out[i+len(b)] += word(carry)
	}
	return norm(out)
}

// Add returns x+y.
func (x *Int) Add(y *Int) *Int {
	if x.neg == y.neg {
		return fromAbs(x.neg, addAbs(x.abs, y.abs))
	}
	switch cmpAbs(x.abs, y.abs) {
	case 0:
		return Zero()
	case 1:
		return fromAbs(x.neg, subAbs(x.abs, y.abs))
	default:
		return fromAbs(y.neg, subAbs(y.abs, x.abs))
	}
}

// Sub returns x-y.
func (x *Int) Sub(y *Int) *Int {
	return x.Add(y.Neg())
}

// Mul returns x*y.
func (x *Int) Mul(y *Int) *Int {
	return fromAbs(x.neg != y.neg, mulAbs(x.abs, y.abs))
}

// divmodAbs computes the quotient and remainder of unsigned a/b using
// bit-serial binary long division. b must be non-zero. This favors
// simplicity and correctness over throughput; the performance-critical
// path (modular exponentiation) uses Montgomery multiplication
// instead and never calls this routine in its inner loop.
func divmodAbs(a, b []word) (q, r []word) {
	if len(b) == 0 {
		panic("bigint: division by zero")
	}
	n := bitLenAbs(a)
	qbits := make([]word, (n+wordBits)/wordBits)
	var rem []word
	for i := n - 1; i >= 0; i-- {
		rem = shlAbs(rem, 1)
		if testBitAbs(a, i) {
			if len(rem) == 0 {
				rem = []word{1}
			} else {
				rem[0] |= 1
			}
		}
		if cmpAbs(rem, b) >= 0 {
			rem = subAbs(rem, b)
			setBitAbs(qbits, i)
		}
	}
	return norm(qbits), norm(rem)
}

func setBitAbs(x []word, i int) {
	w := i / wordBits
	b := uint(i % wordBits)
	x[w] |= word(1) << b
}

// QuoRem returns the quotient and remainder of truncated division:
// x = q*y + r with |r| < |y| and r taking the sign of x (the dividend).
// Dividing by zero panics; it is a programmer error, not a recoverable
// one.
func (x *Int) QuoRem(y *Int) (q, r *Int) {
	if y.IsZero() {
		panic("bigint: division by zero")
	}
	qa, ra := divmodAbs(x.abs, y.abs)
	q = fromAbs(x.neg != y.neg, qa)
	r = fromAbs(x.neg, ra)
	return q, r
}

// Quo returns the truncated quotient of x/y.
func (x *Int) Quo(y *Int) *Int {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns the truncated remainder of x/y (sign of x).
func (x *Int) Rem(y *Int) *Int {
	_, r := x.QuoRem(y)
	return r
}

// Mod returns the unique representative of x modulo m in [0, |m|).
func (x *Int) Mod(m *Int) *Int {
	if m.IsZero() {
		panic("bigint: modulus is zero")
	}
	_, r := x.QuoRem(m)
	if r.Sign() == 0 {
		return r
	}
	mAbs := m.Abs()
	if r.Sign() < 0 {
		r = r.Add(mAbs)
	}
	return r
}

func shlAbs(x []word, n uint) []word {
	if len(x) == 0 || n == 0 {
		if n == 0 {
			return x
		}
	}
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)
	out := make([]word, len(x)+wordShift+1)
	for i, v := range x {
		out[i+wordShift] = v
	}
	if bitShift > 0 {
		var carry word
		for i := wordShift; i < len(out); i++ {
			v := out[i]
			out[i] = (v << bitShift) | carry
			carry = v >> (wordBits - bitShift)
		}
	}
	return norm(out)
}

func shrAbs(x []word, n uint) []word {
	wordShift := int(n / wordBits)
	bitShift := uint(n % wordBits)
	if wordShift >= len(x) {
		return nil
	}
	src := x[wordShift:]
	out := make([]word, len(src))
	copy(out, src)
	if bitShift > 0 {
		var carry word
		for i := len(out) - 1; i >= 0; i-- {
			v := out[i]
			out[i] = (v >> bitShift) | carry
			carry = v << (wordBits - bitShift)
		}
	}
	return norm(out)
}

// Lsh returns x shifted left by n bits (x * 2^n). Two's-complement
// semantics apply for negative x: shifting left is equivalent to
// multiplying by 2^n regardless of sign.
func (x *Int) Lsh(n uint) *Int {
	return fromAbs(x.neg, shlAbs(x.abs, n))
}

// Rsh returns x shifted right by n bits using two's-complement (i.e.
// arithmetic, floor-dividing) semantics: for negative x this is
// floor(x / 2^n), matching sign-extension of the two's-complement
// representation.
func (x *Int) Rsh(n uint) *Int {
	if !x.neg {
		return fromAbs(false, shrAbs(x.abs, n))
	}
	// Two's complement arithmetic shift of a negative value: take the
	// magnitude, subtract one, shift, then re-complement, matching
	// floor division semantics.
	m := subAbs(x.abs, []word{1})
	m = shrAbs(m, n)
	return fromAbs(true, addAbs(m, []word{1}))
}
