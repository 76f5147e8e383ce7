package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync/atomic"
	"time"
)

var txnSequence atomic.Uint64

// GenerateTransactionID returns TXN-<unix millis><4-digit sequence><4 random digits>.
// The sequence separates calls in the same millisecond within a process and the
// random suffix separates processes.
func GenerateTransactionID() string {
	return generateTransactionID(time.Now())
}

func generateTransactionID(now time.Time) string {
	seq := txnSequence.Add(1) % 10000
	return fmt.Sprintf("TXN-%d%04d%04d", now.UnixMilli(), seq, randomDigits())
}

func randomDigits() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return time.Now().UnixNano() % 10000
	}
	return n.Int64()
}
