package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func easyTarget() *big.Int {
	// Large enough that Mine terminates in a handful of iterations during
	// tests, while still exercising the scan loop.
	t, _ := new(big.Int).SetString("f000000000000000000000000000000000000000000000000000000000000000", 16)
	return t
}

func TestNewBlockGenesisHasNoPrevHash(t *testing.T) {
	b := NewBlock(nil, nil)
	assert.Nil(t, b.PrevHash)
	assert.Equal(t, uint64(0), b.BlockNumber)
}

func TestNewBlockChildIncrementsNumber(t *testing.T) {
	prevHash := Hash("deadbeef")
	prevNum := uint64(4)
	b := NewBlock(&prevHash, &prevNum)
	assert.Equal(t, uint64(5), b.BlockNumber)
	assert.Equal(t, prevHash, *b.PrevHash)
}

func TestMineProducesVerifiableBlock(t *testing.T) {
	b := NewBlock(nil, nil)
	target := easyTarget()
	b.Mine(target)
	assert.True(t, b.Verify(target))
}

func TestVerifyFailsAfterTamperingWithTransactions(t *testing.T) {
	b := NewBlock(nil, nil)
	target := easyTarget()
	b.Mine(target)
	assert.True(t, b.Verify(target))

	id, kp := genKeyPair(t)
	b.Transactions = append(b.Transactions, *NewTransaction(CreateAccountData{AccountID: id, PublicKey: kp.PublicKey}, nil))

	assert.False(t, b.Verify(target))
}

func TestAddTransactionUpdatesStoredHash(t *testing.T) {
	b := NewBlock(nil, nil)
	before := b.Hash

	id, kp := genKeyPair(t)
	b.AddTransaction(*NewTransaction(CreateAccountData{AccountID: id, PublicKey: kp.PublicKey}, nil))

	assert.NotEqual(t, before, b.Hash)
	assert.Equal(t, b.ComputeHash(), b.Hash)
}
