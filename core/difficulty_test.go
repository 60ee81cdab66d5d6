package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/varex83/awesome-blockchain-go/chain"
)

func TestRetargetOnEmptyChainReturnsInitialTarget(t *testing.T) {
	c := chain.New[Block]()
	target := Retarget(c, 0)
	assert.Equal(t, 0, target.Cmp(InitialTarget))
}

func TestRetargetClampsToMaxChange(t *testing.T) {
	c := chain.New[Block]()
	c.Append(Block{BlockNumber: 0, Timestamp: 0})
	// A block mined instantly (0ms elapsed) would ask for an arbitrarily
	// tiny target; the retarget must clamp the drop to InitialTarget/4.
	c.Append(Block{BlockNumber: 1, Timestamp: 0})

	target := Retarget(c, 1)
	lower := new(big.Int).Div(InitialTarget, big.NewInt(MaxTargetChange))
	assert.Equal(t, 0, target.Cmp(lower))
}
