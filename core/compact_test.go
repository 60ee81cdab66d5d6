package core

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCompactWorkedExample(t *testing.T) {
	target, ok := new(big.Int).SetString("161578008857017275969393492955354620126364423170461532160", 10)
	assert.True(t, ok)
	assert.Equal(t, "0x180696f4", FormatCompact(target))
}

func TestFormatCompactSmallValuePadsMantissa(t *testing.T) {
	target := big.NewInt(0x1a)
	assert.Equal(t, "0x011a0000", FormatCompact(target))
}
