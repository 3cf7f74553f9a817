package hash

import "math/bits"

// roundConstants holds the 24 round constants XORed into lane (0,0) in the
// iota step.
var roundConstants = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rotationOffsets holds the rho rotation amounts, ordered to match the lane
// walk of piLane below.
var rotationOffsets = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// piLane holds the destination lane order of the pi step.
var piLane = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation to the
// state in place.
//
// Control flow and memory access depend only on the loop counters, never on
// lane values, so the permutation runs in the same time and touches the same
// addresses regardless of the data being hashed. Higher layers compose this
// permutation into secret-dependent constructions and rely on that shape.
func keccakF1600(a *[25]uint64) {
	var c [5]uint64
	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// rho and pi, fused: each lane is rotated on its way to its pi
		// destination, chasing the displaced lane around the state.
		last := a[1]
		for i := 0; i < 24; i++ {
			j := piLane[i]
			last, a[j] = a[j], bits.RotateLeft64(last, rotationOffsets[i])
		}

		// chi
		for y := 0; y < 25; y += 5 {
			a0, a1, a2, a3, a4 := a[y], a[y+1], a[y+2], a[y+3], a[y+4]
			a[y] = a0 ^ (^a1 & a2)
			a[y+1] = a1 ^ (^a2 & a3)
			a[y+2] = a2 ^ (^a3 & a4)
			a[y+3] = a3 ^ (^a4 & a0)
			a[y+4] = a4 ^ (^a0 & a1)
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
