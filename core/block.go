package core

import (
	"math/big"
	"time"
)

// Block is an ordered list of transactions linked to its predecessor by
// hash, sealed by a proof-of-work nonce.
type Block struct {
	Nonce        uint64
	BlockNumber  uint64
	Timestamp    uint64 // ms since Unix epoch, sampled once at Mine
	Hash         Hash
	PrevHash     *Hash
	Transactions []Transaction
}

// NewBlock constructs a block referencing prevHash/prevBlockNumber.
// BlockNumber is prevBlockNumber+1, or 0 if prevBlockNumber is nil
// (genesis). The block starts with no transactions and its hash already
// reflects that empty state.
func NewBlock(prevHash *Hash, prevBlockNumber *uint64) *Block {
	b := &Block{PrevHash: prevHash}
	if prevBlockNumber != nil {
		b.BlockNumber = *prevBlockNumber + 1
	}
	b.Hash = b.ComputeHash()
	return b
}

// SetNonce sets the nonce and recomputes the stored hash.
func (b *Block) SetNonce(nonce uint64) {
	b.Nonce = nonce
	b.Hash = b.ComputeHash()
}

// AddTransaction appends tx in insertion order and recomputes the stored
// hash.
func (b *Block) AddTransaction(tx Transaction) {
	b.Transactions = append(b.Transactions, tx)
	b.Hash = b.ComputeHash()
}

// ComputeHash is the pure function of the block's current fields: the
// canonical encoding of (prevHash, nonce, timestamp, blockNumber)
// followed by the concatenated transaction hashes, in insertion order.
func (b *Block) ComputeHash() Hash {
	head := gobEncode(struct {
		PrevHash    *Hash
		Nonce       uint64
		Timestamp   uint64
		BlockNumber uint64
	}{b.PrevHash, b.Nonce, b.Timestamp, b.BlockNumber})
	for _, tx := range b.Transactions {
		head = append(head, []byte(tx.Hash())...)
	}
	return digest(head)
}

// Verify reports whether the stored Hash matches ComputeHash() and is,
// interpreted as a big-endian hex integer, strictly below target.
func (b *Block) Verify(target *big.Int) bool {
	if b.Hash != b.ComputeHash() {
		return false
	}
	n, ok := new(big.Int).SetString(string(b.Hash), 16)
	if !ok {
		return false
	}
	return n.Cmp(target) < 0
}

// Mine samples the wall-clock timestamp once, then scans nonces from 0
// until ComputeHash() falls below target. The transaction list and
// prev_hash must be frozen by the caller before calling Mine — mining
// only ever touches Nonce and Timestamp.
func (b *Block) Mine(target *big.Int) {
	b.Timestamp = uint64(time.Now().UnixMilli())
	for nonce := uint64(0); ; nonce++ {
		b.SetNonce(nonce)
		n, ok := new(big.Int).SetString(string(b.Hash), 16)
		if ok && n.Cmp(target) < 0 {
			return
		}
	}
}
