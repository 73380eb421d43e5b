package sqlite

import "time"

// collectionRow is one stored entry of the task_collections table.
type collectionRow struct {
	Key       string
	OwnerID   string
	Payload   []byte
	UpdatedAt time.Time
}
