// Package random provides a deterministic pseudo random generator seeded
// from caller-supplied entropy and expanded through the SHAKE128
// extendable-output function of this module's hash package.
package random

import (
	"encoding/binary"
	"fmt"
)

// Rand is a deterministic pseudo random number generator.
type Rand interface {
	// Read fills the input slice with pseudo-random bytes.
	Read([]byte)

	// UintN returns a pseudo-random number in [0, n-1]. n must be
	// positive; UintN(0) returns 0.
	UintN(n uint64) uint64

	// Permutation returns a pseudo-random permutation of [0, n-1].
	// Note that the number of possible permutations (n!) quickly dwarfs
	// the generator's seed space as n grows, so only a fraction of them
	// remains reachable for large n.
	// The returned error is non-nil if n is negative.
	Permutation(n int) ([]int, error)

	// SubPermutation returns m distinct elements of [0, n-1] in
	// pseudo-random order. The same seed-space caveat as Permutation
	// applies, with n!/(n-m)! reachable outcomes.
	// The returned error is non-nil if a parameter is negative or m > n.
	SubPermutation(n int, m int) ([]int, error)

	// Shuffle pseudo-randomly permutes a data structure of n elements in
	// place through the swap callback, typically a slice or array.
	// The returned error is non-nil if n is negative.
	Shuffle(n int, swap func(i, j int)) error

	// Samples moves m pseudo-randomly chosen elements of an n-element
	// data structure to indices [0, m-1], swapping in place. The order of
	// the m chosen elements is itself pseudo-random; the order of the
	// remaining n-m elements is unspecified.
	// The returned error is non-nil if a parameter is negative or m > n.
	Samples(n int, m int, swap func(i, j int)) error

	// State returns the internal state of the random generator.
	// The internal state can be used as an input to Restore to rebuild
	// an identical generator positioned at the same point of the stream.
	State() []byte
}

// randCore is a PRG providing the core Read function of a PRG.
// All other Rand methods use the core Read method.
//
// In order to add a new Rand implementation,
// it should be enough to implement randCore.
type randCore interface {
	// Read fills the input slice with random bytes.
	Read([]byte)
}

// genericPRG implements all the Rand methods using the embedded randCore
// method. All implementations of the Rand interface should embed the
// genericPRG struct.
type genericPRG struct {
	randCore
}

// UintN returns an uint64 pseudo-random number in [0,n-1],
// using `p` as an entropy source. UintN(0) returns 0.
func (p *genericPRG) UintN(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	var b [8]byte
	p.Read(b[:])
	return binary.LittleEndian.Uint64(b[:]) % n
}

// Permutation returns a permutation of the set [0,n-1], built with the
// inside-out variant of the Fisher-Yates shuffle driven by `p`.
//
// O(n) space and O(n) time.
func (p *genericPRG) Permutation(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("population size cannot be negative")
	}
	items := make([]int, n)
	for i := 0; i < n; i++ {
		j := p.UintN(uint64(i + 1))
		items[i] = items[j]
		items[j] = i
	}
	return items, nil
}

// SubPermutation returns the first `m` elements of a permutation of
// [0,n-1], by truncating a full Fisher-Yates shuffle driven by `p`.
//
// O(n) space and O(n) time.
func (p *genericPRG) SubPermutation(n int, m int) ([]int, error) {
	if m < 0 {
		return nil, fmt.Errorf("sample size cannot be negative")
	}
	if n < m {
		return nil, fmt.Errorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	// condition n >= 0 is enforced by function Permutation(n)
	items, _ := p.Permutation(n)
	return items[:m], nil
}

// Shuffle permutes the caller's n elements in place through swap, using
// a Fisher-Yates shuffle driven by `p`.
//
// O(1) space and O(n) time.
func (p *genericPRG) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return fmt.Errorf("population size cannot be negative")
	}
	for i := n - 1; i > 0; i-- {
		j := p.UintN(uint64(i + 1))
		swap(i, int(j))
	}
	return nil
}

// Samples moves m pseudo-randomly picked elements out of n to the
// indices [0,m-1], swapping in place: the first m steps of a Fisher-Yates
// shuffle driven by `p`.
//
// O(1) space and O(m) time.
func (p *genericPRG) Samples(n int, m int, swap func(i, j int)) error {
	if m < 0 {
		return fmt.Errorf("inputs cannot be negative")
	}
	if n < m {
		return fmt.Errorf("sample size (%d) cannot be larger than entire population (%d)", m, n)
	}
	for i := 0; i < m; i++ {
		j := p.UintN(uint64(n - i))
		swap(i, i+int(j))
	}
	return nil
}
