package sampling

import (
	"encoding/binary"
	"fmt"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// KeyedPRNG deterministically generates sequences of random bytes from
// a key using the blake2b XOF. Two KeyedPRNG built with the same key
// produce the same stream, which is what makes generated coefficients
// and samples reproducible across test runs.
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}

	prng := &KeyedPRNG{xof: xof}
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	return prng, nil
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// RandFloat64 returns a float uniformly distributed in [min, max) read from prng.
func (prng *KeyedPRNG) RandFloat64(min, max float64) float64 {
	b := make([]byte, 8)
	if _, err := prng.Read(b); err != nil {
		// the blake2b XOF only fails once 2^32 blocks have been read
		panic(err)
	}
	// 53 bits of mantissa
	f := float64(binary.BigEndian.Uint64(b)>>11) / (1 << 53)
	return min + f*(max-min)
}

// RandFloat64s returns n floats uniformly distributed in [min, max).
func (prng *KeyedPRNG) RandFloat64s(n int, min, max float64) (values []float64) {
	values = make([]float64, n)
	for i := range values {
		values[i] = prng.RandFloat64(min, max)
	}
	return
}
