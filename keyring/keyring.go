// Package keyring generates ed25519 keypairs and the AccountIds derived
// from them, and keeps an in-memory registry of both for a single run.
// Keys are never persisted to disk.
package keyring

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"

	"github.com/varex83/awesome-blockchain-go/core"
)

// GenerateAccount creates a fresh ed25519 keypair and derives its
// AccountId as the hex encoding of the public key bytes.
func GenerateAccount() (core.AccountId, core.KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		// A failure here means the platform's CSPRNG is broken, not
		// that the account request itself was invalid.
		return "", core.KeyPair{}, err
	}
	id := core.AccountId(hex.EncodeToString(pub))
	return id, core.KeyPair{PrivateKey: priv, PublicKey: pub}, nil
}

// Keyring is an in-memory map of AccountId to the KeyPair that controls
// it, scoped to a single process run.
type Keyring struct {
	pairs map[core.AccountId]core.KeyPair
}

// New returns an empty Keyring.
func New() *Keyring {
	return &Keyring{pairs: make(map[core.AccountId]core.KeyPair)}
}

// Generate creates a fresh account, remembers its keypair, and returns
// its id.
func (k *Keyring) Generate() (core.AccountId, error) {
	id, kp, err := GenerateAccount()
	if err != nil {
		return "", err
	}
	k.pairs[id] = kp
	return id, nil
}

// KeyPair returns the keypair controlling id, if it was generated through
// this Keyring.
func (k *Keyring) KeyPair(id core.AccountId) (core.KeyPair, bool) {
	kp, ok := k.pairs[id]
	return kp, ok
}
