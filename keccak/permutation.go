//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package keccak

import "math/bits"

// roundConstants are the ι step round constants for all 24 rounds of
// Keccak-f[1600], as defined by the Keccak/SHA-3 specification.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A,
	0x8000000080008000, 0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008A,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets are the ρ step rotation amounts, indexed the same
// way as lanes: index = x + 5*y.
var rotationOffsets = [25]int{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

func idx(x, y int) int {
	return ((x % 5) + 5) % 5 + 5*((y%5+5)%5)
}

// keccakF1600 applies the 24-round Keccak-f[1600] permutation to the
// 25 64-bit lanes in place.
func keccakF1600(lanes *[laneCount]uint64) {
	var c [5]uint64
	var d [5]uint64
	var b [25]uint64

	for round := 0; round < 24; round++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = lanes[idx(x, 0)] ^ lanes[idx(x, 1)] ^ lanes[idx(x, 2)] ^
				lanes[idx(x, 3)] ^ lanes[idx(x, 4)]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				lanes[idx(x, y)] ^= d[x]
			}
		}

		// ρ and π
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b[idx(y, 2*x+3*y)] = bits.RotateLeft64(lanes[idx(x, y)], rotationOffsets[idx(x, y)])
			}
		}

		// χ
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				lanes[idx(x, y)] = b[idx(x, y)] ^ ((^b[idx(x+1, y)]) & b[idx(x+2, y)])
			}
		}

		// ι
		lanes[0] ^= roundConstants[round]
	}
}
