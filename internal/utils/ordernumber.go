package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderNumber produces the client-side order number carried on the
// order-creation request. The 5-digit suffix is random, not a uniqueness
// guarantee.
func GenerateOrderNumber() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(time.Now().UnixNano() % 100000)
	}

	return fmt.Sprintf("ORD-%05d", n.Int64())
}
