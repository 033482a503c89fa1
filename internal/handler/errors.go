package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam  = "Missing %s query parameter"
	ErrMsgInvalidLimit       = "Invalid limit parameter"
	ErrMsgInvalidBannerQuery = "Invalid banner_type parameter"
)

// Success messages for API responses
const (
	MsgBannersReloadedSuccess = "Banner catalog reloaded successfully"
)

// Operation names used in logs
const (
	OpPull          = "Wish pull"
	OpSetWishTarget = "Set wish target"
	OpGetInfo       = "Get gacha info"
	OpGetHistory    = "Get wish history"
	OpSimulate      = "Simulate wishes"
	OpReloadBanners = "Reload banners"
)
