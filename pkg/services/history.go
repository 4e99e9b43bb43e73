package services

import (
	"sync"
	"time"
)

// HistoryEntry records one executed query.
type HistoryEntry struct {
	Timestamp  time.Time  `json:"timestamp"`
	Query      string     `json:"pql_query"`
	AnchorTime *time.Time `json:"anchor_time,omitempty"`
	RowCount   int        `json:"num_results"`
}

// QueryHistory is an append-only log of executed queries. It lives outside
// the schema snapshot and is the only state retained across utterances.
type QueryHistory struct {
	mu      sync.Mutex
	entries []HistoryEntry
}

// NewQueryHistory creates an empty history log.
func NewQueryHistory() *QueryHistory {
	return &QueryHistory{}
}

// Append records an executed query.
func (h *QueryHistory) Append(entry HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
}

// Entries returns a copy of the log in append order.
func (h *QueryHistory) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
