package core

import "errors"

// Sentinel errors for the signature and transaction-execution taxonomy.
// The exact text matters: callers and tests match on these strings
// rather than on wrapped, structured error types.
var (
	ErrMsgShouldBeSigned       = errors.New("Error: msg should be signed")
	ErrMsgShouldHaveSender     = errors.New("Error: msg should have sender to sign it")
	ErrSignatureVerifyFailed   = errors.New("Error: error occurred while verifying signature")
	ErrInvalidAccount          = errors.New("Invalid account.")
	ErrGenesisOnlyMint         = errors.New("Initial supply can be minted only in genesis block.")
	ErrAccountAlreadyExists    = errors.New("AccountId already exist")
	ErrTransferFromNonExisting = errors.New("You can't make transfer from non-existing account")
	ErrTransferToNonExisting   = errors.New("You can't make transfer to non-existing account")
	ErrInsufficientFunds       = errors.New("You can't transfer more tokens than you have")

	ErrBlockInvalidHash  = errors.New("Block has invalid hash")
	ErrBlockNoTxs        = errors.New("Block has 0 transactions.")
	ErrGenesisHasPrev    = errors.New("Genesis block shouldn't have prev_hash")
)
