package core

import "crypto/ed25519"

// KeyPair bundles the private and public halves of an ed25519 signing
// key. It lives in core (rather than package keyring) so Transaction.Sign
// can take one directly without an import cycle; keyring is the package
// responsible for generating and storing them.
type KeyPair struct {
	PrivateKey ed25519.PrivateKey
	PublicKey  ed25519.PublicKey
}
