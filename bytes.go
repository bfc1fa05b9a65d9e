package chacha20

import "encoding/binary"

// leWord decodes exactly 4 bytes into a word, byte 0 least significant.
// Any other length is a bug in the caller, not a recoverable condition.
func leWord(b []byte) uint32 {
	if len(b) != 4 {
		panic("chacha20: leWord wants exactly 4 bytes")
	}

	return binary.LittleEndian.Uint32(b)
}

func leWordString(s string) uint32 {
	return leWord([]byte(s))
}

// DeriveKey copies up to 32 bytes of s into a key, zero-padding or
// truncating to fit. This is a convenience for demos and tests only — it
// is not a key-derivation function, and real callers should bring their
// own 32 random bytes.
func DeriveKey(s string) [32]byte {
	var key [32]byte
	copy(key[:], s)
	return key
}

// DeriveNonce is DeriveKey for 12-byte nonces, with the same caveat.
func DeriveNonce(s string) [12]byte {
	var nonce [12]byte
	copy(nonce[:], s)
	return nonce
}
