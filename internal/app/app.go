package app

import (
	"context"
	"time"

	"github.com/poofware/revenue-service/internal/config"
	"github.com/poofware/revenue-service/internal/utils"
)

const (
	maxConnectRetries = 5
	connectTimeout    = 5 * time.Second
	initialBackoff    = 500 * time.Millisecond
)

type App struct {
	Config *config.Config
	Store  *Store
}

// NewApp builds the store handle and makes a best-effort first connection.
// A failed connect is not fatal here: the service starts degraded and serves
// fallback data until the store comes up (a cron retries in the background,
// and every request re-attempts lazy initialization).
func NewApp(cfg *config.Config) *App {
	store := NewStore(cfg.DBUrl)

	backoff := initialBackoff
	for i := 1; i <= maxConnectRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		err := store.EnsureReady(ctx)
		cancel()
		if err == nil {
			utils.Logger.Infof("revenue-service connected to DB on attempt %d", i)
			break
		}

		utils.Logger.WithError(err).Warnf(
			"Failed DB connect on attempt %d/%d. Retrying in %v...",
			i, maxConnectRetries, backoff,
		)

		if i == maxConnectRetries {
			utils.Logger.Warn("Store unavailable after all attempts; starting in degraded mode")
			break
		}
		time.Sleep(backoff)
		backoff *= 2
	}

	return &App{
		Config: cfg,
		Store:  store,
	}
}

func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
		utils.Logger.Info("revenue-service DB connection closed.")
	}
}
