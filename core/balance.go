package core

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

// Balance is an unsigned token count backed by github.com/holiman/uint256
// rather than math/big: AddOverflow/SubOverflow report overflow/underflow
// directly, without the allocation churn of arbitrary-precision math for
// a value that's bounded by construction. Balance is bounded to 128 bits;
// the backing uint256.Int has 256-bit headroom so overflow of the
// underlying word never silently wraps before MaxBalance rejects it.
type Balance = uint256.Int

// MaxBalance is 2^128 - 1, the largest value a Balance may hold.
var MaxBalance = mustMaxBalance()

func mustMaxBalance() *Balance {
	max128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	b, overflow := uint256.FromBig(max128)
	if overflow {
		panic("core: 2^128-1 unexpectedly overflowed uint256")
	}
	return b
}

// ZeroBalance returns a fresh zero-valued Balance.
func ZeroBalance() *Balance {
	return new(uint256.Int)
}

// BalanceFromUint64 constructs a Balance from a small literal amount.
func BalanceFromUint64(v uint64) *Balance {
	return uint256.NewInt(v)
}

// AddChecked returns a+b, failing if the result wraps the 256-bit word or
// exceeds MaxBalance.
func AddChecked(a, b *Balance) (*Balance, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow || sum.Cmp(MaxBalance) > 0 {
		return nil, errors.New("balance overflow")
	}
	return sum, nil
}

// SubChecked returns a-b, failing on underflow.
func SubChecked(a, b *Balance) (*Balance, error) {
	diff, underflow := new(uint256.Int).SubOverflow(a, b)
	if underflow {
		return nil, errors.New("balance underflow")
	}
	return diff, nil
}
