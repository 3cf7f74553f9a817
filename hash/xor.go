package hash

import "encoding/binary"

// xorIn XORs a block of at most one rate of input into the low-order lanes
// of the state, eight bytes per lane, little endian. The byte loop handles
// a trailing partial lane.
func xorIn(a *[25]uint64, block []byte) {
	n := len(block) >> 3
	for i := 0; i < n; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[i<<3:])
	}
	for i := n << 3; i < len(block); i++ {
		a[i>>3] ^= uint64(block[i]) << (uint(i&7) << 3)
	}
}

// copyOut serializes the low-order lanes of the state into out, which must
// not exceed one rate of bytes.
func copyOut(a *[25]uint64, out []byte) {
	var lane [8]byte
	for i := 0; len(out) > 0; i++ {
		binary.LittleEndian.PutUint64(lane[:], a[i])
		n := copy(out, lane[:])
		out = out[n:]
	}
}
