package core

import (
	"crypto/ed25519"

	"github.com/holiman/uint256"
)

// Hash is lowercase hex text of a blake2s-256 digest.
type Hash string

// AccountId is an opaque identifier string. This implementation derives it
// as the hex encoding of an account's public key (see package keyring), but
// nothing in this package relies on that — it is treated as opaque here.
type AccountId string

// AccountType distinguishes the two account kinds the chain knows about.
// Only User accounts are ever created; Contract is reserved for a future
// virtual machine, explicitly out of scope for this core.
type AccountType int

const (
	AccountUser AccountType = iota
	AccountContract
)

func (t AccountType) String() string {
	switch t {
	case AccountUser:
		return "User"
	case AccountContract:
		return "Contract"
	default:
		return "Unknown"
	}
}

// Account is a ledger entry: a type tag, a balance, and the public key
// bound to it for signature verification. Created once by a
// CreateAccount transaction and mutated only by transaction execution.
type Account struct {
	Type      AccountType
	Balance   *uint256.Int
	PublicKey ed25519.PublicKey
}
