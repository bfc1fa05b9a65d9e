package chacha20

import "encoding/binary"

// KeystreamReader exposes the raw keystream as an io.Reader. Each block's
// sixteen words are serialized little-endian, so the byte stream matches
// the RFC's keystream byte order.
type KeystreamReader struct {
	gen    *Generator
	output [64]byte
	offset int
}

// NewReader builds a KeystreamReader positioned at the start of the block
// for the given counter. Key and nonce length rules are the same as New's.
func NewReader(key, nonce []byte, counter uint32) (*KeystreamReader, error) {
	gen, err := New(key, nonce, counter)
	if err != nil {
		return nil, err
	}

	return &KeystreamReader{
		gen:    gen,
		offset: 64, // force a block on the first Read
	}, nil
}

// Read fills out with keystream bytes and never fails. Reads of any size
// observe the same contiguous stream; a zero-length read leaves the
// stream position untouched.
func (r *KeystreamReader) Read(out []byte) (int, error) {
	n := 0

	for n < len(out) {
		if r.offset == len(r.output) {
			block := r.gen.Next()
			for i, word := range block {
				binary.LittleEndian.PutUint32(r.output[i*4:], word)
			}
			r.offset = 0
		}

		copied := copy(out[n:], r.output[r.offset:])
		r.offset += copied
		n += copied
	}

	return n, nil
}
