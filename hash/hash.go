// Package hash implements the SHA-3 and SHAKE hash functions as a sponge
// construction over the Keccak-f[1600] permutation.
//
// The package is written for constrained, single-threaded environments: a
// SpongeContext embeds all of its buffers, Update and Final allocate
// nothing, and every operation checks the structural consistency of the
// context before trusting it.
package hash

import (
	"bytes"
	"encoding/hex"
)

//revive:disable:var-naming

// AlgorithmFamily is an identifier for a sponge-based hashing family.
type AlgorithmFamily int

const (
	// Supported hashing families
	UnknownFamily AlgorithmFamily = iota
	SHA3
	SHAKE
)

// String returns the string representation of this hashing family.
func (f AlgorithmFamily) String() string {
	if f < UnknownFamily || f > SHAKE {
		return "INVALID"
	}
	return [...]string{"UNKNOWN", "SHA3", "SHAKE"}[f]
}

const (
	// Lengths of fixed digests in bytes
	HashLenSha3_224 = 28
	HashLenSha3_256 = 32
	HashLenSha3_384 = 48
	HashLenSha3_512 = 64
)

// Hash is the hash algorithms' output type.
type Hash []byte

// Equal checks if a hash is equal to a given hash
func (h Hash) Equal(input Hash) bool {
	return bytes.Equal(h, input)
}

// Hex returns the hex string representation of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h)
}

// String returns the hex string representation of the hash.
func (h Hash) String() string {
	return h.Hex()
}

// spongeParams pins one legal (family, digest length) combination to its
// sponge rate. The rate follows (1600 - 2*capacity)/8 where the capacity is
// the digest length for SHA-3 and the security strength for SHAKE, but the
// values are listed rather than recomputed: context validation is a
// membership check against this table, which is easier to audit for fault
// resistance than re-derivation arithmetic.
type spongeParams struct {
	family     AlgorithmFamily
	digestBits int
	rate       int // block size in bytes
}

var paramsTable = [...]spongeParams{
	{SHA3, 224, 144},
	{SHA3, 256, 136},
	{SHA3, 384, 104},
	{SHA3, 512, 72},
	{SHAKE, 128, 168},
	{SHAKE, 256, 136},
}

// lookupRate returns the sponge rate in bytes for the given family and
// digest length, or 0 if the pair is not a supported variant.
func lookupRate(family AlgorithmFamily, digestBits int) int {
	for _, p := range paramsTable {
		if p.family == family && p.digestBits == digestBits {
			return p.rate
		}
	}
	return 0
}
