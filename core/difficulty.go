package core

import (
	"math/big"

	"github.com/varex83/awesome-blockchain-go/chain"
)

// Retargeting adjusts the proof-of-work target after every block so
// that mining time tracks ExpectedTimeMillis, clamped per block by
// MaxTargetChange. math/big.Int is used for Target rather than a
// fixed-width integer because repeated lopsided retargets can in
// principle push it past 256 bits.

const (
	// ExpectedTimeMillis is the target milliseconds per block —
	// intentionally fast for didactic runs.
	ExpectedTimeMillis int64 = 1000

	// MaxTargetChange is the symmetrical per-block multiplicative clamp:
	// the target may move at most ×4 up or ÷4 down from one block to the
	// next.
	MaxTargetChange int64 = 4
)

// InitialTarget is the seed target used before any retargeting has
// happened: 5 * 10^73.
var InitialTarget = new(big.Int).Mul(big.NewInt(5), new(big.Int).Exp(big.NewInt(10), big.NewInt(73), nil))

// Retarget computes the target in force after the block numbered
// blockNumber, i.e. the target the block following it has to beat (so,
// if blockNumber equals the chain's current length, the target for the
// next block to be mined). It walks the chain oldest-to-newest up to and
// including blockNumber, adjusting the target by each block's observed
// mining time relative to ExpectedTimeMillis, clamped by MaxTargetChange.
// Block 0 never adjusts the target, so Retarget(c, 0) is InitialTarget.
func Retarget(c *chain.Chain[Block], blockNumber uint64) *big.Int {
	var ordered []*Block
	it := c.Iterator()
	for {
		b, ok := it.Next()
		if !ok {
			break
		}
		if b.BlockNumber <= blockNumber {
			ordered = append(ordered, b)
		}
	}
	// ordered is currently newest-to-oldest; reverse it in place.
	for i, j := 0, len(ordered)-1; i < j; i, j = i+1, j-1 {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	}

	target := new(big.Int).Set(InitialTarget)
	var prevTimestamp uint64
	for _, b := range ordered {
		if b.BlockNumber > 0 {
			elapsed := big.NewInt(int64(b.Timestamp - prevTimestamp))
			raw := new(big.Int).Mul(target, elapsed)
			raw.Div(raw, big.NewInt(ExpectedTimeMillis))

			lower := new(big.Int).Div(target, big.NewInt(MaxTargetChange))
			upper := new(big.Int).Mul(target, big.NewInt(MaxTargetChange))
			target = clampBig(raw, lower, upper)
		}
		prevTimestamp = b.Timestamp
	}
	return target
}

func clampBig(v, lower, upper *big.Int) *big.Int {
	if v.Cmp(lower) < 0 {
		return new(big.Int).Set(lower)
	}
	if v.Cmp(upper) > 0 {
		return new(big.Int).Set(upper)
	}
	return v
}
