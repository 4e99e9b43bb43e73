package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHistory_AppendOrder(t *testing.T) {
	history := NewQueryHistory()
	history.Append(HistoryEntry{Timestamp: time.Now(), Query: "PREDICT a FOR b", RowCount: 1})
	history.Append(HistoryEntry{Timestamp: time.Now(), Query: "PREDICT c FOR d", RowCount: 3})

	entries := history.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "PREDICT a FOR b", entries[0].Query)
	assert.Equal(t, "PREDICT c FOR d", entries[1].Query)
}

func TestQueryHistory_EntriesReturnsCopy(t *testing.T) {
	history := NewQueryHistory()
	history.Append(HistoryEntry{Query: "PREDICT a FOR b"})

	entries := history.Entries()
	entries[0].Query = "mutated"
	assert.Equal(t, "PREDICT a FOR b", history.Entries()[0].Query)
}

func TestQueryHistory_ConcurrentAppends(t *testing.T) {
	history := NewQueryHistory()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			history.Append(HistoryEntry{Query: "PREDICT x FOR y"})
		}()
	}
	wg.Wait()
	assert.Len(t, history.Entries(), 20)
}
