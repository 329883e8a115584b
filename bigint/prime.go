//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bigint

import (
	"crypto/rand"
	"fmt"
	"io"
)

// smallPrimes lists the odd primes below 512, used both for quick
// trial division and, by direct comparison, as the primality answer
// for small inputs.
var smallPrimes = []word{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211,
	223, 227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281,
	283, 293, 307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367,
	373, 379, 383, 389, 397, 401, 409, 419, 421, 431, 433, 439, 443,
	449, 457, 461, 463, 467, 479, 487, 491, 499, 503, 509,
}

// divisibleBySmallPrime reports whether n (n > 1) is divisible by any
// of the precomputed small odd primes below 512.
func divisibleBySmallPrime(n *Int) (prime, composite bool) {
	for _, p := range smallPrimes {
		pv := FromUint64(uint64(p))
		if n.Cmp(pv) == 0 {
			return true, false
		}
		if n.Mod(pv).IsZero() {
			return false, true
		}
	}
	return false, false
}

func randomBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// randomBits returns a uniformly random non-negative integer in
// [0, 2^bits).
func randomBits(r io.Reader, bits int) (*Int, error) {
	if bits <= 0 {
		return Zero(), nil
	}
	nbytes := (bits + 7) / 8
	b, err := randomBytes(r, nbytes)
	if err != nil {
		return nil, err
	}
	excess := uint(nbytes*8 - bits)
	if excess > 0 {
		b[0] &= 0xFF >> excess
	}
	return FromUnsignedBytesBE(b), nil
}

// roundsForBits returns a Miller-Rabin round count appropriate for
// sieving candidates of the given bit size, following the shape of
// the standard tables that trade fewer rounds for larger, already
// more improbable-to-be-pseudoprime candidates (e.g. FIPS 186-4 Table
// C.3). RandomPrime accepts a candidate after this many rounds; it
// does not re-run IsPrime's 50 rounds on it.
func roundsForBits(bits int) int {
	switch {
	case bits >= 1536:
		return 4
	case bits >= 1024:
		return 5
	case bits >= 512:
		return 8
	case bits >= 256:
		return 12
	case bits >= 128:
		return 20
	default:
		return 30
	}
}

// millerRabin runs `rounds` rounds of the Miller-Rabin primality test
// against n using r as the source of random witnesses. n must be odd
// and greater than 3.
func millerRabin(n *Int, rounds int, r io.Reader) (bool, error) {
	nMinus1 := n.Sub(One())
	s := nMinus1.TrailingZeros()
	d := nMinus1.Rsh(uint(s))

	nMinus2 := n.Sub(FromInt64(2))

	for i := 0; i < rounds; i++ {
		a, err := randomRange(r, FromInt64(2), nMinus2)
		if err != nil {
			return false, err
		}
		x := a.ModPow(d, n)
		if x.IsOne() || x.Eq(nMinus1) {
			continue
		}
		composite := true
		for j := 0; j < s-1; j++ {
			x = x.Mul(x).Mod(n)
			if x.Eq(nMinus1) {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// randomRange returns a uniformly random integer in [lo, hi].
func randomRange(r io.Reader, lo, hi *Int) (*Int, error) {
	span := hi.Sub(lo).Add(One())
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("bigint: empty range")
	}
	bits := span.BitLen()
	for {
		v, err := randomBits(r, bits)
		if err != nil {
			return nil, err
		}
		if v.Cmp(span) < 0 {
			return lo.Add(v), nil
		}
	}
}

// IsPrime reports whether n is prime, using trial division against
// the small odd primes below 512 followed by 50 rounds of
// Miller-Rabin with a cryptographic random source. The probability of
// declaring a composite prime is at most 2^-100.
func (n *Int) IsPrime() bool {
	ok, err := n.isPrimeRounds(50, rand.Reader)
	if err != nil {
		// crypto/rand failure is a fatal environment error, not a
		// recoverable condition for a primality test.
		panic("bigint: IsPrime: " + err.Error())
	}
	return ok
}

func (n *Int) isPrimeRounds(rounds int, r io.Reader) (bool, error) {
	if n.Sign() <= 0 {
		return false, nil
	}
	if n.Cmp(FromInt64(2)) == 0 {
		return true, nil
	}
	if n.IsEven() {
		return false, nil
	}
	if n.Cmp(FromInt64(1)) == 0 {
		return false, nil
	}
	if n.Cmp(FromUint64(509)) <= 0 {
		prime, composite := divisibleBySmallPrime(n)
		if prime {
			return true, nil
		}
		if composite {
			return false, nil
		}
		// n < 509 and not divisible by any prime below 512: n itself
		// must be prime (or 1, already excluded above).
		return true, nil
	}
	if _, composite := divisibleBySmallPrime(n); composite {
		return false, nil
	}
	return millerRabin(n, rounds, r)
}

// RandomPrime returns a random prime p with min <= p < max, optionally
// constrained to satisfy q | (p-1) (pass nil to skip) and/or
// p ≡ 3 (mod 4).
func RandomPrime(r io.Reader, min, max *Int, q *Int, threeMod4 bool) (*Int, error) {
	if min.Cmp(max) >= 0 {
		return nil, fmt.Errorf("bigint: RandomPrime: empty range")
	}
	span := max.Sub(min)
	bits := span.BitLen()
	four := FromInt64(4)
	three := FromInt64(3)

	const maxAttempts = 1 << 20
	for attempt := 0; attempt < maxAttempts; attempt++ {
		delta, err := randomBits(r, bits)
		if err != nil {
			return nil, err
		}
		if delta.Cmp(span) >= 0 {
			continue
		}
		p := min.Add(delta)
		if p.Cmp(max) >= 0 {
			continue
		}
		if p.IsEven() {
			continue
		}
		if threeMod4 && p.Mod(four).Cmp(three) != 0 {
			continue
		}
		if q != nil && !p.Sub(One()).Rem(q).IsZero() {
			continue
		}
		ok, err := p.isPrimeRounds(roundsForBits(p.BitLen()), r)
		if err != nil {
			return nil, err
		}
		if ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("bigint: RandomPrime: no prime found in range after %d attempts", maxAttempts)
}

// NextPrime returns the smallest prime >= n, advancing by odd
// increments from n (or from n+1 if n is even).
func NextPrime(n *Int) *Int {
	c := n
	if c.Cmp(FromInt64(2)) <= 0 {
		return FromInt64(2)
	}
	if c.IsEven() {
		c = c.Add(One())
	}
	for !c.IsPrime() {
		c = c.Add(FromInt64(2))
	}
	return c
}
