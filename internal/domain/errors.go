package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Engine errors
	ErrMsgIllegalArgument = "illegal argument"
	ErrMsgInvalidTimes    = "invalid number of pulls"

	// Banner errors
	ErrMsgBannerNotFound     = "banner not found"
	ErrMsgBannerInactive     = "banner is not active"
	ErrMsgInvalidBannerType  = "invalid banner type"
	ErrMsgInvalidWishTarget  = "invalid wish target"
	ErrMsgEpitomizedDisabled = "banner has no epitomized path"

	// Player errors
	ErrMsgPlayerIDRequired = "player id is required"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgShuttingDown  = "service is shutting down"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrIllegalArgument marks a corrupt banner configuration: a rarity outside {4,5} or a
	// negative roulette weight. It is never recovered internally.
	ErrIllegalArgument = errors.New(ErrMsgIllegalArgument)

	// ErrInvalidTimes is returned when a batch size other than 1 or 10 is requested.
	ErrInvalidTimes = errors.New(ErrMsgInvalidTimes)

	// Banner errors
	ErrBannerNotFound     = errors.New(ErrMsgBannerNotFound)
	ErrBannerInactive     = errors.New(ErrMsgBannerInactive)
	ErrInvalidBannerType  = errors.New(ErrMsgInvalidBannerType)
	ErrInvalidWishTarget  = errors.New(ErrMsgInvalidWishTarget)
	ErrEpitomizedDisabled = errors.New(ErrMsgEpitomizedDisabled)

	// Player errors
	ErrPlayerIDRequired = errors.New(ErrMsgPlayerIDRequired)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrShuttingDown  = errors.New(ErrMsgShuttingDown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
