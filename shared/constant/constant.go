package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySessionID contextKey = "session_id"
)

const (
	RequestParamID       = "id"
	RequestParamAt       = "at"
	RequestParamTimezone = "tz"
	RequestParamFormat   = "format"
	RequestParamAbbrev   = "abbrev"
	RequestParamSession  = "session"
)

const (
	OtelServiceScopeName = "service"
	OtelHandlerScopeName = "handler"
	OtelCacheScopeName   = "cache"
)

const (
	RequestHeaderUserAgent    = "User-Agent"
	RequestHeaderContentType  = "Content-Type"
	RequestHeaderTimezone     = "X-Timezone"
	RequestHeaderSessionID    = "X-Session-ID"
	RequestHeaderForwardedFor = "X-Forwarded-For"
	RequestHeaderRealIP       = "X-Real-IP"

	HeaderRateLimit          = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRateLimitWindow    = "X-RateLimit-Window"
)

const (
	ContentTypeJSON      = "application/json"
	ContentTypePlainText = "text/plain; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
