package core

import (
	"crypto/ed25519"
	"fmt"
)

// TransactionData is a closed sum type with exactly three cases. Each
// case is its own small type implementing a private marker method;
// Transaction.Execute is the single switch site over all three.
//
// TransactionData is implemented by CreateAccountData,
// MintInitialSupplyData and TransferData, and no others.
type TransactionData interface {
	isTransactionData()
	canonicalBytes() []byte
}

// CreateAccountData registers a new account bound to publicKey.
type CreateAccountData struct {
	AccountID AccountId
	PublicKey ed25519.PublicKey
}

func (CreateAccountData) isTransactionData() {}

func (d CreateAccountData) canonicalBytes() []byte {
	return gobEncode(struct {
		Kind      byte
		AccountID AccountId
		PublicKey []byte
	}{0, d.AccountID, []byte(d.PublicKey)})
}

// MintInitialSupplyData creates tokens out of nothing. Only valid inside
// the genesis block.
type MintInitialSupplyData struct {
	To     AccountId
	Amount *Balance
}

func (MintInitialSupplyData) isTransactionData() {}

func (d MintInitialSupplyData) canonicalBytes() []byte {
	return gobEncode(struct {
		Kind   byte
		To     AccountId
		Amount []byte
	}{1, d.To, d.Amount.Bytes()})
}

// TransferData moves tokens between two already-existing accounts. It is
// the only case that requires a signature.
type TransferData struct {
	To     AccountId
	Amount *Balance
}

func (TransferData) isTransactionData() {}

func (d TransferData) canonicalBytes() []byte {
	return gobEncode(struct {
		Kind   byte
		To     AccountId
		Amount []byte
	}{2, d.To, d.Amount.Bytes()})
}

// Transaction is a single state mutation: who it's from (if anyone), what
// it does, and — for transfers — the signature proving the sender
// authorized it.
type Transaction struct {
	Nonce     uint64
	Timestamp uint64 // ms since Unix epoch; NewTransaction leaves it 0 and nothing in this package sets it
	From      *AccountId
	Data      TransactionData
	Signature *[ed25519.SignatureSize]byte
}

// NewTransaction constructs a Transaction with nonce 0, timestamp 0, and
// no signature.
func NewTransaction(data TransactionData, from *AccountId) *Transaction {
	return &Transaction{Data: data, From: from}
}

// Hash is the canonical digest of (nonce, timestamp, from, data). The
// signature deliberately does not participate — it signs this hash, so
// it cannot also be an input to it.
func (tx *Transaction) Hash() Hash {
	head := gobEncode(struct {
		Nonce     uint64
		Timestamp uint64
		From      *AccountId
	}{tx.Nonce, tx.Timestamp, tx.From})
	head = append(head, tx.Data.canonicalBytes()...)
	return digest(head)
}

// Sign sets Signature to the keypair's signature over Hash(). Any later
// mutation of a hashed field invalidates the resulting signature — the
// caller is expected to sign last.
func (tx *Transaction) Sign(kp KeyPair) {
	sig := ed25519.Sign(kp.PrivateKey, []byte(tx.Hash()))
	var fixed [ed25519.SignatureSize]byte
	copy(fixed[:], sig)
	tx.Signature = &fixed
}

// VerifySignature checks that Signature is present, From is set, the
// sender account exists, and the signature validates against the
// sender's bound public key over Hash().
func (tx *Transaction) VerifySignature(ws WorldState) error {
	if tx.Signature == nil {
		return ErrMsgShouldBeSigned
	}
	if tx.From == nil {
		return ErrMsgShouldHaveSender
	}
	sender, ok := ws.GetAccount(*tx.From)
	if !ok {
		return ErrSignatureVerifyFailed
	}
	if !ed25519.Verify(sender.PublicKey, []byte(tx.Hash()), tx.Signature[:]) {
		return ErrSignatureVerifyFailed
	}
	return nil
}

// Execute applies the transaction to ws, atomically: on any precondition
// failure no mutation occurs. isGenesis gates MintInitialSupply.
func (tx *Transaction) Execute(ws WorldState, isGenesis bool) error {
	switch data := tx.Data.(type) {
	case CreateAccountData:
		if _, exists := ws.GetAccount(data.AccountID); exists {
			return ErrAccountAlreadyExists
		}
		return ws.CreateAccount(data.AccountID, AccountUser, data.PublicKey)

	case MintInitialSupplyData:
		if !isGenesis {
			return ErrGenesisOnlyMint
		}
		account, ok := ws.GetAccount(data.To)
		if !ok {
			return ErrInvalidAccount
		}
		newBalance, err := AddChecked(account.Balance, data.Amount)
		if err != nil {
			return err
		}
		account.Balance = newBalance
		return nil

	case TransferData:
		if tx.From == nil {
			return ErrTransferFromNonExisting
		}
		from, ok := ws.GetAccount(*tx.From)
		if !ok {
			return ErrTransferFromNonExisting
		}
		to, ok := ws.GetAccount(data.To)
		if !ok {
			return ErrTransferToNonExisting
		}
		if err := tx.VerifySignature(ws); err != nil {
			return fmt.Errorf("Error while verifying signature: %w", err)
		}
		if from.Balance.Cmp(data.Amount) < 0 {
			return ErrInsufficientFunds
		}
		newFrom, err := SubChecked(from.Balance, data.Amount)
		if err != nil {
			return err
		}
		newTo, err := AddChecked(to.Balance, data.Amount)
		if err != nil {
			return err
		}
		from.Balance = newFrom
		to.Balance = newTo
		return nil

	default:
		return fmt.Errorf("core: unknown transaction data case %T", data)
	}
}
