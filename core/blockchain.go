package core

import (
	"crypto/ed25519"
	"fmt"
	"math/big"

	"github.com/varex83/awesome-blockchain-go/chain"
)

// Blockchain is the aggregate root: the chain of blocks, the account map
// (world state), and a pending-transaction buffer. It owns both
// exclusively.
type Blockchain struct {
	chain    *chain.Chain[Block]
	accounts map[AccountId]*Account
	pending  []Transaction
}

// NewBlockchain returns an empty Blockchain: no blocks, no accounts.
func NewBlockchain() *Blockchain {
	return &Blockchain{
		chain:    chain.New[Block](),
		accounts: make(map[AccountId]*Account),
	}
}

// LastBlockHash returns the tip's hash, or nil if the chain is empty.
func (bc *Blockchain) LastBlockHash() *Hash {
	head, ok := bc.chain.Head()
	if !ok {
		return nil
	}
	h := head.Hash
	return &h
}

// LastBlockNumber returns the tip's block number, or nil if the chain is
// empty.
func (bc *Blockchain) LastBlockNumber() *uint64 {
	head, ok := bc.chain.Head()
	if !ok {
		return nil
	}
	n := head.BlockNumber
	return &n
}

// GetTarget returns the target block blockNumber had to beat: the target
// in force after its predecessor, which is what AppendBlock mined it
// against. Genesis had to beat InitialTarget.
func (bc *Blockchain) GetTarget(blockNumber uint64) *big.Int {
	if blockNumber == 0 {
		return Retarget(bc.chain, 0)
	}
	return Retarget(bc.chain, blockNumber-1)
}

// GetLatestTarget returns the target the next block to be appended must
// beat.
func (bc *Blockchain) GetLatestTarget() *big.Int {
	return Retarget(bc.chain, uint64(bc.chain.Len()))
}

// Len reports the number of blocks currently in the chain.
func (bc *Blockchain) Len() int {
	return bc.chain.Len()
}

// GetAccount implements WorldState.
func (bc *Blockchain) GetAccount(id AccountId) (*Account, bool) {
	a, ok := bc.accounts[id]
	return a, ok
}

// CreateAccount implements WorldState.
func (bc *Blockchain) CreateAccount(id AccountId, accountType AccountType, publicKey ed25519.PublicKey) error {
	if _, exists := bc.accounts[id]; exists {
		return ErrAccountAlreadyExists
	}
	bc.accounts[id] = &Account{
		Type:      accountType,
		Balance:   ZeroBalance(),
		PublicKey: publicKey,
	}
	return nil
}

// AddPending appends tx to the pending-transaction buffer. This core never
// drains it itself; it exists for callers to stage transactions before
// building a block.
func (bc *Blockchain) AddPending(tx Transaction) {
	bc.pending = append(bc.pending, tx)
}

// DrainPending empties and returns the pending-transaction buffer.
func (bc *Blockchain) DrainPending() []Transaction {
	out := bc.pending
	bc.pending = nil
	return out
}

func (bc *Blockchain) snapshotAccounts() map[AccountId]*Account {
	out := make(map[AccountId]*Account, len(bc.accounts))
	for id, acct := range bc.accounts {
		clone := *acct
		clone.Balance = new(Balance).Set(acct.Balance)
		out[id] = &clone
	}
	return out
}

// AppendBlock mines block against the current target (discarding any
// nonce the caller already set), verifies the proof-of-work, executes
// every transaction against the live account map, and on the first
// failure restores a pre-call snapshot before returning the error.
//
// block's BlockNumber is always overwritten with the current chain
// length and any nonce the caller already computed is discarded by the
// re-mine — callers should not rely on a block they built themselves
// surviving AppendBlock unchanged.
func (bc *Blockchain) AppendBlock(block *Block) error {
	block.BlockNumber = uint64(bc.chain.Len())
	target := bc.GetLatestTarget()
	block.Mine(target)

	if !block.Verify(target) {
		return ErrBlockInvalidHash
	}
	if len(block.Transactions) == 0 {
		return ErrBlockNoTxs
	}

	snapshot := bc.snapshotAccounts()
	isGenesis := bc.chain.Len() == 0

	for _, tx := range block.Transactions {
		if err := tx.Execute(bc, isGenesis); err != nil {
			bc.accounts = snapshot
			return fmt.Errorf("Error during tx execution: %w", err)
		}
	}

	if !block.Verify(target) {
		bc.accounts = snapshot
		return ErrBlockInvalidHash
	}

	bc.chain.Append(*block)
	return nil
}

// Validate walks the chain newest-to-oldest, checking each block's
// proof-of-work against its own retargeted threshold and the
// genesis/non-genesis prev_hash shape. It returns the first violation
// found, or nil.
//
// The adjacency scan below starts at index 1 of the newest-to-oldest
// block list, so the chain tip's own prev_hash linkage to its
// predecessor is never asserted by this pass.
func (bc *Blockchain) Validate() error {
	var blocks []*Block
	it := bc.chain.Iterator()
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		blocks = append(blocks, b)
	}

	for _, b := range blocks {
		target := bc.GetTarget(b.BlockNumber)
		if !b.Verify(target) {
			return fmt.Errorf("Block %d has invalid hash", b.BlockNumber)
		}
		if b.BlockNumber == 0 {
			if b.PrevHash != nil {
				return ErrGenesisHasPrev
			}
		} else if b.PrevHash == nil {
			return fmt.Errorf("Block %d doesn't have prev_hash", b.BlockNumber)
		}
	}

	for i := 1; i+1 < len(blocks); i++ {
		newer, older := blocks[i], blocks[i+1]
		if newer.PrevHash == nil || *newer.PrevHash != older.Hash {
			return fmt.Errorf("Block %d prev_hash doesn't match Block %d hash", newer.BlockNumber, older.BlockNumber)
		}
	}

	return nil
}
