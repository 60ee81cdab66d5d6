package core

import "crypto/ed25519"

// WorldState is the narrow capability a Transaction needs to execute: it
// can create an account and look accounts up by id, mutably. Defining it
// as an interface, rather than hard-wiring Transaction.Execute to
// *Blockchain, lets tests substitute a mock store instead of a full
// Blockchain.
type WorldState interface {
	// CreateAccount inserts a new account with zero balance, failing if
	// id is already present.
	CreateAccount(id AccountId, accountType AccountType, publicKey ed25519.PublicKey) error

	// GetAccount returns a mutable pointer to the account for id, and
	// whether it exists.
	GetAccount(id AccountId) (*Account, bool)
}
