package storeforward

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/storeforward/envelope"
)

func TestSafStoreInsertAndIter(t *testing.T) {
	store := NewSafStore(10)
	msg := envelope.StoredMessage{Version: 1, EncryptedBody: []byte("a")}

	store.Insert("k1", msg, time.Hour)

	live := store.Iter()
	require.Len(t, live, 1)
	assert.Equal(t, []byte("a"), live[0].EncryptedBody)
	assert.Equal(t, 1, store.Len())
}

func TestSafStoreExpiredEntriesArePruned(t *testing.T) {
	store := NewSafStore(10)
	store.Insert("expired", envelope.StoredMessage{EncryptedBody: []byte("old")}, -time.Second)
	store.Insert("fresh", envelope.StoredMessage{EncryptedBody: []byte("new")}, time.Hour)

	live := store.Iter()
	require.Len(t, live, 1)
	assert.Equal(t, []byte("new"), live[0].EncryptedBody)

	// Iter's pruning is reflected in Len afterward.
	assert.Equal(t, 1, store.Len())
}

func TestSafStoreEvictsOldestOnOverflow(t *testing.T) {
	store := NewSafStore(2)

	store.Insert("first", envelope.StoredMessage{EncryptedBody: []byte("1")}, time.Hour)
	time.Sleep(time.Millisecond)
	store.Insert("second", envelope.StoredMessage{EncryptedBody: []byte("2")}, time.Hour)
	time.Sleep(time.Millisecond)
	store.Insert("third", envelope.StoredMessage{EncryptedBody: []byte("3")}, time.Hour)

	assert.Equal(t, 2, store.Len())

	live := store.Iter()
	bodies := make([]string, 0, len(live))
	for _, m := range live {
		bodies = append(bodies, string(m.EncryptedBody))
	}
	assert.NotContains(t, bodies, "1")
	assert.Contains(t, bodies, "2")
	assert.Contains(t, bodies, "3")
}

func TestSafStoreInsertReplacesExistingKeyWithoutEviction(t *testing.T) {
	store := NewSafStore(1)
	store.Insert("only", envelope.StoredMessage{EncryptedBody: []byte("v1")}, time.Hour)
	store.Insert("only", envelope.StoredMessage{EncryptedBody: []byte("v2")}, time.Hour)

	assert.Equal(t, 1, store.Len())
	live := store.Iter()
	require.Len(t, live, 1)
	assert.Equal(t, []byte("v2"), live[0].EncryptedBody)
}

func TestSafStoreDepositGeneratesUniqueKeys(t *testing.T) {
	store := NewSafStore(10)

	key1 := store.Deposit(envelope.StoredMessage{EncryptedBody: []byte("a")}, time.Hour)
	key2 := store.Deposit(envelope.StoredMessage{EncryptedBody: []byte("b")}, time.Hour)

	assert.NotEqual(t, key1, key2)
	assert.Equal(t, 2, store.Len())
}

func TestSafStoreWithInnerRunsOutsideLock(t *testing.T) {
	store := NewSafStore(10)
	store.Insert("k1", envelope.StoredMessage{EncryptedBody: []byte("a")}, time.Hour)

	done := make(chan struct{})
	store.WithInner(func(messages []envelope.StoredMessage) {
		// Calling another store method from within fn would deadlock if
		// WithInner still held the lock here.
		go func() {
			store.Len()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("WithInner appears to hold the lock while fn runs")
		}
	})
}
