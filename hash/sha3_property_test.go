package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Splitting the input into an arbitrary sequence of chunks must produce the
// same digest as absorbing it in one call, for every variant.
func TestStreamingEquivalence(t *testing.T) {
	newContexts := map[string]func() *SpongeContext{
		"SHA3-224": NewSHA3_224,
		"SHA3-256": NewSHA3_256,
		"SHA3-384": NewSHA3_384,
		"SHA3-512": NewSHA3_512,
		"SHAKE128": mustShake128(32),
		"SHAKE256": mustShake256(64),
	}

	for name, newCtx := range newContexts {
		newCtx := newCtx
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				data := rapid.SliceOfN(rapid.Byte(), 0, 3*maxRate).
					Draw(rt, "data").([]byte)

				whole := newCtx()
				require.NoError(t, whole.Update(data))
				size, err := whole.OutputSize()
				require.NoError(t, err)
				expected := make(Hash, size)
				require.NoError(t, whole.Final(expected))

				chunked := newCtx()
				for rest := data; len(rest) > 0; {
					n := rapid.IntRange(1, len(rest)).Draw(rt, "chunk").(int)
					require.NoError(t, chunked.Update(rest[:n]))
					rest = rest[n:]
				}
				actual := make(Hash, size)
				require.NoError(t, chunked.Final(actual))

				assert.Equal(t, expected, actual)
			})
		})
	}
}

// Freshly constructed, identically configured contexts must agree on every
// input.
func TestDeterminism(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 0, 512).Draw(rt, "data").([]byte)
		assert.Equal(t, ComputeSHA3_256(data), ComputeSHA3_256(data))

		first, err := ComputeSHAKE256(data, 96)
		require.NoError(t, err)
		second, err := ComputeSHAKE256(data, 96)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

// The first n bytes of a longer SHAKE output must equal the full output
// requested at length n: extending the output never rewrites the prefix.
func TestShakePrefixProperty(t *testing.T) {
	compute := map[string]func([]byte, int) (Hash, error){
		"SHAKE128": ComputeSHAKE128,
		"SHAKE256": ComputeSHAKE256,
	}

	for name, computeShake := range compute {
		computeShake := computeShake
		t.Run(name, func(t *testing.T) {
			rapid.Check(t, func(rt *rapid.T) {
				data := rapid.SliceOfN(rapid.Byte(), 0, 300).Draw(rt, "data").([]byte)
				short := rapid.IntRange(1, 2*maxRate).Draw(rt, "short").(int)
				long := rapid.IntRange(short, 3*maxRate).Draw(rt, "long").(int)

				shortOut, err := computeShake(data, short)
				require.NoError(t, err)
				longOut, err := computeShake(data, long)
				require.NoError(t, err)

				assert.Equal(t, shortOut, Hash(longOut[:short]))
			})
		})
	}
}
