package bootstrap

// Log messages for startup
const (
	LogMsgStartingWishBot     = "Starting WishBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgStoreOpened         = "Store opened"
	LogMsgBannersLoaded       = "Banners loaded"
	LogMsgSeededRNG           = "Using seeded random source, pulls are replayable"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Store close failed"
)
