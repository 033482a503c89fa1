package wish

import "time"

// CacheSchemaVersion is bumped whenever PlayerGachaInfo changes shape so stale cache
// entries are dropped instead of served.
const CacheSchemaVersion = "1.0"

// Cache defaults
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// History limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

// Simulation limits
const (
	MaxSimulationTrials = 100000
	MaxSimulationPulls  = 2000
)

// Log messages
const (
	LogMsgPullCompleted     = "Wish pull completed"
	LogMsgStateLoaded       = "Loaded gacha info from store"
	LogMsgCacheHit          = "Gacha info cache hit"
	LogMsgSaveFailed        = "Failed to persist wish pull"
	LogMsgWishTargetSet     = "Wish target updated"
	LogMsgSimulationDone    = "Simulation finished"
	LogMsgShutdownWaiting   = "Waiting for in-flight writes"
	LogMsgShutdownCompleted = "Wish service shut down"
)
