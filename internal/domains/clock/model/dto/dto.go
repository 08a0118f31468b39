package dto

// RenderRequest carries one render invocation for a single viewer.
type RenderRequest struct {
	// Value is the timestamp input: time.Time, *time.Time, a slice of either,
	// epoch seconds, or an RFC 3339 string. Nil renders as the empty string.
	Value any

	// Timezone is an explicit candidate override (e.g. the X-Timezone
	// header). Untrusted; resolved before use.
	Timezone string

	// SessionID names the viewer session to read the candidate from when no
	// explicit override is given. Empty with no override means no per-viewer
	// context is available at all.
	SessionID string

	// Format replaces the surface's default strftime template when set.
	Format string

	// Locale is accepted for forward compatibility and currently has no effect.
	Locale string

	// AppendZone appends the zone abbreviation in effect at the instant.
	AppendZone bool

	// Formatter names a registered custom formatter that replaces template
	// rendering entirely.
	Formatter string
}

// RenderResponse is the rendered text plus the resolution outcome.
type RenderResponse struct {
	Text         string `json:"text"`
	Timezone     string `json:"timezone"`
	FallbackUsed bool   `json:"fallback_used"`
}
