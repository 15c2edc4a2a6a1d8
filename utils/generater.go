package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP returns an unbiased 6-digit one-time code.
func GenerateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
