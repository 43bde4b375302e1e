// audit/model.go
package audit

import "time"

// SyncLog is one sync attempt of a remote source.
type SyncLog struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Source    string    `json:"source"`
	Records   int       `json:"records"`
	Forced    bool      `json:"forced"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// VerificationLog is one chat signature verification outcome. Message
// bodies are never indexed, only their size.
type VerificationLog struct {
	Timestamp time.Time `json:"timestamp"`
	Valid     bool      `json:"valid"`
	BodyBytes int       `json:"body_bytes"`
}
