package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddCheckedOrdinary(t *testing.T) {
	sum, err := AddChecked(BalanceFromUint64(10), BalanceFromUint64(20))
	assert.NoError(t, err)
	assert.Equal(t, BalanceFromUint64(30), sum)
}

func TestAddCheckedRejectsAboveMaxBalance(t *testing.T) {
	_, err := AddChecked(MaxBalance, BalanceFromUint64(1))
	assert.Error(t, err)
}

func TestSubCheckedUnderflow(t *testing.T) {
	_, err := SubChecked(BalanceFromUint64(5), BalanceFromUint64(6))
	assert.Error(t, err)
}

func TestSubCheckedOrdinary(t *testing.T) {
	diff, err := SubChecked(BalanceFromUint64(30), BalanceFromUint64(12))
	assert.NoError(t, err)
	assert.Equal(t, BalanceFromUint64(18), diff)
}
