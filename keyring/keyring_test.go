package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAccountProducesMatchingKeyPair(t *testing.T) {
	id, kp, err := GenerateAccount()
	assert.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NotEmpty(t, kp.PrivateKey)
	assert.NotEmpty(t, kp.PublicKey)
}

func TestKeyringGenerateThenLookup(t *testing.T) {
	k := New()
	id, err := k.Generate()
	assert.NoError(t, err)

	kp, ok := k.KeyPair(id)
	assert.True(t, ok)
	assert.NotEmpty(t, kp.PublicKey)
}

func TestKeyringLookupMissingAccount(t *testing.T) {
	k := New()
	_, ok := k.KeyPair("nonexistent")
	assert.False(t, ok)
}

func TestKeyringGeneratesDistinctAccounts(t *testing.T) {
	k := New()
	a, err := k.Generate()
	assert.NoError(t, err)
	b, err := k.Generate()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
