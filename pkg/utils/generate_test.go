package utils

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var txnPattern = regexp.MustCompile(`^TXN-\d{21}$`)

func TestGenerateTransactionID_Format(t *testing.T) {
	id := GenerateTransactionID()
	assert.Regexp(t, txnPattern, id)
}

func TestGenerateTransactionID_SameMillisecond(t *testing.T) {
	now := time.UnixMilli(1734220800000)
	a := generateTransactionID(now)
	b := generateTransactionID(now)
	assert.NotEqual(t, a, b)
}

func TestGenerateTransactionID_Concurrent(t *testing.T) {
	const n = 1000

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = make(map[string]struct{}, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := GenerateTransactionID()
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, ids, n)
}
