package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything that drains in-flight work before exiting
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the server first, so in-flight pulls are persisted,
// then releases the store. Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, srv Stopper, store *Store) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if store != nil && store.Close != nil {
		if err := store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
