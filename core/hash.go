package core

import (
	"bytes"
	"encoding/gob"
	"encoding/hex"

	"golang.org/x/crypto/blake2s"
)

// Canonical hashing. A single fixed-output digest (blake2s-256, 32
// bytes) is used for both transaction and block hashing. Fields are
// gob-encoded into a deterministic byte string before digesting.

func gobEncode(v any) []byte {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		// Encoding a plain struct of scalars/pointers/strings never
		// fails; a failure here means gob itself is broken.
		panic(err)
	}
	return buf.Bytes()
}

// digest hashes data with blake2s-256 and hex-encodes the result.
func digest(data []byte) Hash {
	sum := blake2s.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}
