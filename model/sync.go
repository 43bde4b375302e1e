// model/sync.go
package model

import "time"

// SyncStatus records when a remote source was last imported
// successfully. One row per distinct source; updated only after the
// data commit succeeds.
type SyncStatus struct {
	Source   string    `json:"source"`
	LastSync time.Time `json:"last_sync"`
}
