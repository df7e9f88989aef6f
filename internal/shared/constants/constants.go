package constants

const (
	AppName    = "toolbox"
	AppVersion = "1.0.0"

	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderUserAgent       = "User-Agent"
	HeaderStripeSignature = "Stripe-Signature"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers        = "users"
	TableLinks        = "links"
	TableClickEvents  = "click_events"
	TableQRCodes      = "qr_codes"
	TableClients      = "clients"
	TableSites        = "monitored_sites"
	TableCheckResults = "uptime_checks"

	// Public paths
	PathLinkDisabled = "/link-disabled"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
