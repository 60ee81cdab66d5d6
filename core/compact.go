package core

import (
	"fmt"
	"math/big"
)

// FormatCompact renders target in Bitcoin-style compact ("nBits") form:
// 0x followed by a one-byte length (the padded hex representation's byte
// count) and the most-significant three bytes (six hex digits) of the
// target, short mantissas zero-padded on the right.
func FormatCompact(target *big.Int) string {
	hexStr := target.Text(16)
	if len(hexStr)%2 != 0 {
		hexStr = "0" + hexStr
	}
	sizeBytes := len(hexStr) / 2

	mantissa := hexStr
	if len(mantissa) > 6 {
		mantissa = mantissa[:6]
	} else if len(mantissa) < 6 {
		mantissa = mantissa + padZeros(6-len(mantissa))
	}

	return fmt.Sprintf("0x%02x%s", sizeBytes, mantissa)
}

func padZeros(n int) string {
	z := make([]byte, n)
	for i := range z {
		z[i] = '0'
	}
	return string(z)
}
