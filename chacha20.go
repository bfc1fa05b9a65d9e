// Package chacha20 implements the ChaCha20 keystream generator from
// RFC 7539: a 256-bit key, a 96-bit nonce, and a 32-bit block counter
// produce a stream of 512-bit pseudo-random blocks.
//
// This package only generates keystream. It does not XOR it with
// plaintext, and it implements neither Poly1305 nor any AEAD mode.
package chacha20

import (
	"errors"
)

const (
	Rounds = 20

	// the ASCII of "expand 32-byte k", four words little-endian
	constant0 = 0x61707865
	constant1 = 0x3320646e
	constant2 = 0x79622d32
	constant3 = 0x6b206574
)

// Generator produces successive ChaCha20 keystream blocks. The sixteen
// state words hold the four constants, eight key words, the block counter
// (word 12), and three nonce words; only the counter changes after
// construction.
//
// A Generator is not safe for concurrent use. Each block depends only on
// the state and its counter value, so callers that want parallel keystream
// production should give each goroutine its own Generator covering a
// disjoint counter range.
type Generator struct {
	state [16]uint32
}

func rotl(a, b uint32) uint32 {
	return (a << b) | (a >> (32 - b))
}

// qr is the ChaCha quarter round: add, xor, rotate by 16/12/8/7, in that
// exact order. All arithmetic wraps mod 2^32.
func qr(a, b, c, d *uint32) {
	*a += *b
	*d = rotl(*d^*a, 16)
	*c += *d
	*b = rotl(*b^*c, 12)
	*a += *b
	*d = rotl(*d^*a, 8)
	*c += *d
	*b = rotl(*b^*c, 7)
}

func chachaBlock(dst, src *[16]uint32) {
	x := *src

	for i := 0; i < Rounds; i += 2 {
		// column round
		qr(&x[0], &x[4], &x[8], &x[12])
		qr(&x[1], &x[5], &x[9], &x[13])
		qr(&x[2], &x[6], &x[10], &x[14])
		qr(&x[3], &x[7], &x[11], &x[15])

		// diagonal round
		qr(&x[0], &x[5], &x[10], &x[15])
		qr(&x[1], &x[6], &x[11], &x[12])
		qr(&x[2], &x[7], &x[8], &x[13])
		qr(&x[3], &x[4], &x[9], &x[14])
	}

	// feed-forward: fold the pre-round state back in
	for i := 0; i < 16; i++ {
		dst[i] = x[i] + src[i]
	}
}

// New builds a Generator from a 32-byte key, a 12-byte nonce, and an
// initial block counter. Any other key or nonce length is an error;
// truncating or padding silently would hand the caller a wrong keystream.
func New(key, nonce []byte, counter uint32) (*Generator, error) {
	if len(key) != 32 {
		return nil, errors.New("keys must be 32 bytes long")
	}

	if len(nonce) != 12 {
		return nil, errors.New("nonces must be 12 bytes long")
	}

	g := &Generator{}

	g.state[0] = constant0
	g.state[1] = constant1
	g.state[2] = constant2
	g.state[3] = constant3

	for i := 0; i < 8; i++ {
		g.state[4+i] = leWord(key[i*4 : i*4+4])
	}

	g.state[12] = counter

	for i := 0; i < 3; i++ {
		g.state[13+i] = leWord(nonce[i*4 : i*4+4])
	}

	return g, nil
}

// Next returns the keystream block for the current counter value, then
// increments the counter. The counter wraps mod 2^32 rather than widening;
// block numbering stays on the RFC's 32-bit counter field.
func (g *Generator) Next() [16]uint32 {
	var out [16]uint32
	chachaBlock(&out, &g.state)
	g.state[12]++
	return out
}
