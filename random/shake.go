package random

import (
	"encoding/binary"
	"fmt"

	"github.com/selem/selem-go/crypto/hash"
)

const (
	// Shake128SeedMinLen is the minimum seed length, matching the 128-bit
	// security strength of the underlying XOF.
	Shake128SeedMinLen = 16

	// Shake128CustomizerMaxLen bounds the stream customizer so the state
	// encoding stays small and block derivation stays single-pass.
	Shake128CustomizerMaxLen = 24

	// prgBlockLen is the number of output bytes derived per counter value.
	prgBlockLen = 64

	prgStateLen = 8 + 4
)

// shakePRG implements randCore as a counter-mode deterministic stream.
// Each block is SHAKE128(seed || customizer || counter): every refill uses
// a fresh sponge context, so the engine's finalize-once state machine is
// never resumed, and two generators with different customizers produce
// independent streams from the same seed.
type shakePRG struct {
	genericPRG
	seed       []byte
	customizer []byte
	counter    uint64
	block      [prgBlockLen]byte
	used       int
}

// NewShake128PRG returns a new deterministic random generator expanding
// seed through SHAKE128. The seed must be at least 16 bytes; the customizer
// separates independent streams drawn from the same seed and may be empty.
// Both slices are copied, the caller keeps ownership.
func NewShake128PRG(seed []byte, customizer []byte) (Rand, error) {
	if len(seed) < Shake128SeedMinLen {
		return nil, fmt.Errorf("seed should be at least %d bytes, got %d",
			Shake128SeedMinLen, len(seed))
	}
	if len(customizer) > Shake128CustomizerMaxLen {
		return nil, fmt.Errorf("customizer should be at most %d bytes, got %d",
			Shake128CustomizerMaxLen, len(customizer))
	}
	prg := &shakePRG{
		seed:       append([]byte(nil), seed...),
		customizer: append([]byte(nil), customizer...),
		used:       prgBlockLen, // force a refill on the first Read
	}
	prg.genericPRG.randCore = prg
	return prg, nil
}

// Restore rebuilds a generator from a seed, a customizer and a state
// previously returned by State, positioned exactly where the original
// generator was.
func Restore(seed []byte, customizer []byte, state []byte) (Rand, error) {
	if len(state) != prgStateLen {
		return nil, fmt.Errorf("state should be %d bytes, got %d", prgStateLen, len(state))
	}
	counter := binary.BigEndian.Uint64(state[:8])
	used := int(binary.BigEndian.Uint32(state[8:]))
	if used < 0 || used > prgBlockLen {
		return nil, fmt.Errorf("state block offset %d is out of range", used)
	}

	r, err := NewShake128PRG(seed, customizer)
	if err != nil {
		return nil, err
	}
	prg := r.(*shakePRG)
	if used < prgBlockLen {
		// Re-derive the block the original generator was consuming.
		prg.counter = counter
		prg.refill()
		prg.used = used
	} else {
		prg.counter = counter
	}
	return prg, nil
}

// refill derives the next output block from the seed, the customizer and
// the current counter, then advances the counter.
func (p *shakePRG) refill() {
	var counter [8]byte
	binary.BigEndian.PutUint64(counter[:], p.counter)

	// A fresh context per block. The errors are ignored as a freshly
	// constructed context with a positive output length always validates.
	c, _ := hash.NewSHAKE128(prgBlockLen)
	_ = c.Update(p.seed)
	_ = c.Update(p.customizer)
	_ = c.Update(counter[:])
	_ = c.Final(p.block[:])

	p.counter++
	p.used = 0
}

// Read fills the input slice with deterministic pseudo-random bytes.
func (p *shakePRG) Read(out []byte) {
	for len(out) > 0 {
		if p.used == prgBlockLen {
			p.refill()
		}
		n := copy(out, p.block[p.used:])
		p.used += n
		out = out[n:]
	}
}

// State returns the stream position of the generator: the block counter and
// the offset inside the current block. Together with the original seed and
// customizer it is sufficient for Restore to rebuild the generator.
func (p *shakePRG) State() []byte {
	state := make([]byte, prgStateLen)
	if p.used < prgBlockLen {
		// The current block was derived with the previous counter value.
		binary.BigEndian.PutUint64(state[:8], p.counter-1)
	} else {
		binary.BigEndian.PutUint64(state[:8], p.counter)
	}
	binary.BigEndian.PutUint32(state[8:], uint32(p.used))
	return state
}
