package model

import "time"

const (
	EntityName = "session"

	CacheKeyPrefix = "session"
)

// Session is the per-viewer state the browser reports once after page load.
// Timezone is stored verbatim and untrusted; it is resolved against the IANA
// database at render time so every render gets its own diagnostics.
type Session struct {
	ID        string    `json:"id"`
	Timezone  string    `json:"timezone"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
