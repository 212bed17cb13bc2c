package constant

// Tracer names, one per layer.
const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelStateScopeName      = "state"
	OtelS3ScopeName         = "s3"
	OtelAIScopeName         = "ai"
	OtelJWTScopeName        = "jwt"
)

const OtelQueryAttributeKey = "db.statement"
