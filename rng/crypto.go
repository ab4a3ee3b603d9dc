package rng

import (
	"crypto/cipher"
	"encoding/binary"

	"go.dedis.ch/kyber/v4/suites"
)

// Crypto is a non-deterministic source reading from the Ed25519 suite random
// stream.
type Crypto struct {
	stream cipher.Stream
	buf    [8]byte
}

var suite suites.Suite = suites.MustFind("Ed25519")

// NewCrypto returns a non-deterministic source
func NewCrypto() *Crypto {
	return &Crypto{stream: suite.RandomStream()}
}

func (c *Crypto) uint63() uint64 {
	clear(c.buf[:])
	c.stream.XORKeyStream(c.buf[:], c.buf[:])
	return binary.BigEndian.Uint64(c.buf[:]) >> 1
}

func (c *Crypto) Next() int {
	return int(c.uint63() & lcgMask)
}

func (c *Crypto) Intn(max int) int {
	checkIntn(max)
	return c.Range(0, max)
}

func (c *Crypto) Range(min, max int) int {
	checkRange(min, max)
	return min + int(c.uint63()%uint64(max-min))
}
