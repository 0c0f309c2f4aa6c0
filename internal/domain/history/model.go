package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is one logged practice event. ID, Count and Timestamp are fixed at
// creation; Deleted and Synced/ServerID are the only mutable fields and are
// mutated independently of each other.
type Record struct {
	ID        string `json:"id"`
	Count     int    `json:"count"`
	Timestamp int64  `json:"timestamp"`
	Deleted   bool   `json:"deleted,omitempty"`
	Synced    bool   `json:"synced,omitempty"`
	ServerID  string `json:"serverId,omitempty"`
}

// History maps a meditation id to its records in insertion order. It is
// persisted as a single JSON document and rewritten wholesale on every
// mutation.
type History map[string][]Record

// NewRecord builds a record for a freshly logged event. The id is generated
// client-side and never reused; the timestamp is milliseconds since epoch.
func NewRecord(count int) Record {
	return Record{
		ID:        uuid.NewString(),
		Count:     count,
		Timestamp: time.Now().UnixMilli(),
	}
}
