// Package xormask implements the keystream masking used by the PSSI
// song-structure analysis section, which Rekordbox XOR-obfuscates in newer
// exports with a fixed per-position key.
package xormask

// Bytes XORs every byte of data in place with the single byte key.
func Bytes(data []byte, key byte) {
	if key == 0 {
		return
	}
	for i := range data {
		data[i] ^= key
	}
}

// KeyStream cycles a fixed key vector over successive bytes, XOR-ing each
// byte of a payload with the next key byte and wrapping back to the start of
// the vector once exhausted. It has no notion of stream position beyond the
// call it is used in: the codec only ever masks or unmasks a whole payload in
// one Apply call, never mid-stream, so there is no Seek method.
type KeyStream struct {
	key []byte
}

// NewKeyStream builds a KeyStream from key. An empty key is equivalent to the
// all-zero key (Apply becomes a no-op), matching the empty-key fallback used
// for other cyclic-XOR wrappers in the corpus this masking scheme is modeled
// on.
func NewKeyStream(key []byte) KeyStream {
	if len(key) == 0 {
		return KeyStream{key: []byte{0}}
	}
	cp := make([]byte, len(key))
	copy(cp, key)
	return KeyStream{key: cp}
}

// Apply XORs data in place against the cycling key, starting from the
// beginning of the key vector.
func (ks KeyStream) Apply(data []byte) {
	n := len(ks.key)
	for i := range data {
		data[i] ^= ks.key[i%n]
	}
}
