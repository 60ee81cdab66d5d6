// Package display formats public keys as short, human-friendly strings
// for logs and the demo driver's console output. It is purely cosmetic:
// the chain itself (package core) addresses accounts exclusively by the
// hex AccountId and never calls anything here.
package display

import (
	"bytes"
	"crypto/ed25519"
	"crypto/sha256"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // deprecated but still the standard Base58Check address hash
)

const (
	checksumLength = 4
	version        = byte(0x00)
)

// Address derives a Bitcoin-style display address from an ed25519 public
// key: SHA-256, then RIPEMD-160, then a version byte and a double-SHA256
// checksum, Base58-encoded.
func Address(pub ed25519.PublicKey) string {
	versioned := append([]byte{version}, publicKeyHash(pub)...)
	full := append(versioned, checksum(versioned)...)
	return base58.Encode(full)
}

// ValidateAddress reports whether address round-trips through the same
// version-byte-and-checksum scheme Address uses.
func ValidateAddress(address string) bool {
	decoded, err := base58.Decode(address)
	if err != nil || len(decoded) != 1+ripemd160.Size+checksumLength {
		return false
	}
	payload := decoded[:1+ripemd160.Size]
	want := decoded[1+ripemd160.Size:]
	return bytes.Equal(want, checksum(payload))
}

func publicKeyHash(pub ed25519.PublicKey) []byte {
	shaSum := sha256.Sum256(pub)
	hasher := ripemd160.New()
	_, _ = hasher.Write(shaSum[:]) // ripemd160.digest.Write never errors
	return hasher.Sum(nil)
}

func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
