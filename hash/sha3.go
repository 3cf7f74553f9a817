package hash

import "fmt"

const (
	// maxRate is the largest sponge rate across the supported variants
	// (SHAKE128). It sizes the partial-block buffer embedded in every
	// context.
	maxRate = 168

	// dsbyteSha3 and dsbyteShake carry the domain-separation suffix of the
	// family merged with the first bit of the pad10*1 padding. Using the
	// little-endian bit convention of FIPS 202, the SHA-3 suffix "01"
	// followed by the first pad bit gives 00000110b (0x06), and the SHAKE
	// suffix "1111" followed by the first pad bit gives 00011111b (0x1f).
	dsbyteSha3  = byte(0x06)
	dsbyteShake = byte(0x1f)
)

// SpongeContext is a streaming SHA-3 / SHAKE hashing context.
//
// A context is bound to one hash computation: construct it, absorb input
// with any number of Update calls, then produce the digest with a single
// Final call. After Final the context is spent and rejects further
// operations; reuse requires a new context.
//
// All buffers are embedded, so a context can live on the stack and no
// operation allocates. A context must not be shared between goroutines.
type SpongeContext struct {
	family     AlgorithmFamily
	digestBits int // digest size for SHA-3, security strength for SHAKE
	rate       int // block size in bytes, pinned by (family, digestBits)

	a      [25]uint64    // the 1600-bit permutation state
	buf    [maxRate]byte // pending input, always shorter than one rate
	bufLen int

	absorbed  uint64 // total bytes absorbed across all Update calls
	outputLen int    // digest length in bytes; caller-chosen for SHAKE
	finalized bool
}

func newSha3(digestBits int) *SpongeContext {
	return &SpongeContext{
		family:     SHA3,
		digestBits: digestBits,
		rate:       lookupRate(SHA3, digestBits),
		outputLen:  digestBits / 8,
	}
}

// NewSHA3_224 returns a new context producing 28-byte SHA3-224 digests.
func NewSHA3_224() *SpongeContext { return newSha3(224) }

// NewSHA3_256 returns a new context producing 32-byte SHA3-256 digests.
func NewSHA3_256() *SpongeContext { return newSha3(256) }

// NewSHA3_384 returns a new context producing 48-byte SHA3-384 digests.
func NewSHA3_384() *SpongeContext { return newSha3(384) }

// NewSHA3_512 returns a new context producing 64-byte SHA3-512 digests.
func NewSHA3_512() *SpongeContext { return newSha3(512) }

func newShake(strengthBits int, outputLen int) (*SpongeContext, error) {
	if outputLen <= 0 {
		return nil, fmt.Errorf("hash: SHAKE%d output length must be positive, got %d",
			strengthBits, outputLen)
	}
	return &SpongeContext{
		family:     SHAKE,
		digestBits: strengthBits,
		rate:       lookupRate(SHAKE, strengthBits),
		outputLen:  outputLen,
	}, nil
}

// NewSHAKE128 returns a new SHAKE128 context configured to produce
// outputLen bytes of output. The output length is an explicit construction
// parameter recorded in the context; no default is assumed.
func NewSHAKE128(outputLen int) (*SpongeContext, error) {
	return newShake(128, outputLen)
}

// NewSHAKE256 returns a new SHAKE256 context configured to produce
// outputLen bytes of output.
func NewSHAKE256(outputLen int) (*SpongeContext, error) {
	return newShake(256, outputLen)
}

// Algorithm returns the hashing family this context was constructed for.
func (c *SpongeContext) Algorithm() AlgorithmFamily { return c.family }

// DigestLengthBits returns the digest size in bits for SHA-3 contexts, or
// the security-strength parameter for SHAKE contexts.
func (c *SpongeContext) DigestLengthBits() int { return c.digestBits }

// BlockSize returns the sponge rate in bytes.
func (c *SpongeContext) BlockSize() int { return c.rate }

// OutputSize returns the number of digest bytes Final writes: the digest
// length for SHA-3 contexts and the configured output length for SHAKE
// contexts. It validates the context itself, so a corrupted context fails
// loudly instead of reporting a plausible-looking size.
func (c *SpongeContext) OutputSize() (int, error) {
	if !ValidateContext(c) {
		return 0, ErrInvalidContext
	}
	return c.outputLen, nil
}

// Update absorbs data into the sponge. It may be called any number of
// times before Final; an empty slice is a no-op. Input is buffered until a
// full rate-sized block is available, then XORed into the state and
// permuted, so splitting the input across calls never changes the digest.
func (c *SpongeContext) Update(data []byte) error {
	if !ValidateContext(c) {
		return ErrInvalidContext
	}
	if c.finalized {
		return ErrInvalidState
	}
	if c.absorbed+uint64(len(data)) < c.absorbed {
		return ErrLengthOverflow
	}
	c.absorbed += uint64(len(data))

	// Top up any pending partial block first.
	if c.bufLen > 0 {
		n := copy(c.buf[c.bufLen:c.rate], data)
		c.bufLen += n
		data = data[n:]
		if c.bufLen == c.rate {
			xorIn(&c.a, c.buf[:c.rate])
			keccakF1600(&c.a)
			c.bufLen = 0
		}
	}

	// Absorb full blocks straight from the input.
	for len(data) >= c.rate {
		xorIn(&c.a, data[:c.rate])
		keccakF1600(&c.a)
		data = data[c.rate:]
	}

	if len(data) > 0 {
		c.bufLen = copy(c.buf[:], data)
	}
	return nil
}

// Final closes the sponge and writes the digest into out, which must hold
// at least OutputSize bytes. Exactly one Final call is permitted per
// context. On failure, out and the context are left untouched, so a caller
// can correct a short buffer and retry.
func (c *SpongeContext) Final(out []byte) error {
	if !ValidateContext(c) {
		return ErrInvalidContext
	}
	if c.finalized {
		return ErrInvalidState
	}
	if len(out) < c.outputLen {
		return ErrShortBuffer
	}

	// Close the bitstream: domain-separation suffix, then pad10*1. The
	// suffix byte lands right after the pending input and the closing pad
	// bit is the MSB of the last rate byte; when the partial block holds
	// rate-1 bytes the two share that byte, which is why both are XORs.
	var block [maxRate]byte
	copy(block[:], c.buf[:c.bufLen])
	dsbyte := dsbyteSha3
	if c.family == SHAKE {
		dsbyte = dsbyteShake
	}
	block[c.bufLen] ^= dsbyte
	block[c.rate-1] ^= 0x80
	xorIn(&c.a, block[:c.rate])
	keccakF1600(&c.a)

	// Squeeze. A fixed SHA-3 digest always fits within the first rate
	// bytes; longer XOF outputs re-permute for each further block.
	out = out[:c.outputLen]
	for {
		n := c.rate
		if n > len(out) {
			n = len(out)
		}
		copyOut(&c.a, out[:n])
		out = out[n:]
		if len(out) == 0 {
			break
		}
		keccakF1600(&c.a)
	}

	c.bufLen = 0
	c.finalized = true
	return nil
}

// ComputeSHA3_224 calculates and returns the SHA3-224 output of the input
// byte array. Errors are ignored as a freshly constructed context always
// validates and the digest buffer is sized by this function.
func ComputeSHA3_224(data []byte) Hash {
	return computeSha3(NewSHA3_224(), HashLenSha3_224, data)
}

// ComputeSHA3_256 calculates and returns the SHA3-256 output of the input
// byte array.
func ComputeSHA3_256(data []byte) Hash {
	return computeSha3(NewSHA3_256(), HashLenSha3_256, data)
}

// ComputeSHA3_384 calculates and returns the SHA3-384 output of the input
// byte array.
func ComputeSHA3_384(data []byte) Hash {
	return computeSha3(NewSHA3_384(), HashLenSha3_384, data)
}

// ComputeSHA3_512 calculates and returns the SHA3-512 output of the input
// byte array.
func ComputeSHA3_512(data []byte) Hash {
	return computeSha3(NewSHA3_512(), HashLenSha3_512, data)
}

func computeSha3(c *SpongeContext, hashLen int, data []byte) Hash {
	digest := make(Hash, hashLen)
	_ = c.Update(data)
	_ = c.Final(digest)
	return digest
}

// ComputeSHAKE128 calculates outputLen bytes of SHAKE128 output for the
// input byte array.
func ComputeSHAKE128(data []byte, outputLen int) (Hash, error) {
	c, err := NewSHAKE128(outputLen)
	if err != nil {
		return nil, err
	}
	return computeShake(c, data, outputLen)
}

// ComputeSHAKE256 calculates outputLen bytes of SHAKE256 output for the
// input byte array.
func ComputeSHAKE256(data []byte, outputLen int) (Hash, error) {
	c, err := NewSHAKE256(outputLen)
	if err != nil {
		return nil, err
	}
	return computeShake(c, data, outputLen)
}

func computeShake(c *SpongeContext, data []byte, outputLen int) (Hash, error) {
	digest := make(Hash, outputLen)
	if err := c.Update(data); err != nil {
		return nil, err
	}
	if err := c.Final(digest); err != nil {
		return nil, err
	}
	return digest, nil
}
