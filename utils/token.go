package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const base36 = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewQRToken builds the public table token: creation timestamp plus a random
// base36 suffix. Tokens must not be derivable from row ids, so the suffix
// comes from crypto/rand.
func NewQRToken() string {
	return fmt.Sprintf("table_%d_%s", time.Now().UnixMilli(), randBase36(9))
}

func randBase36(n int) string {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(base36)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform RNG is broken
			panic(err)
		}
		buf[i] = base36[idx.Int64()]
	}
	return string(buf)
}
