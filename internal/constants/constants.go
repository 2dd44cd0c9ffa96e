package constants

import "time"

const (
	DefaultCurrency = "USD"
	DefaultTimezone = "UTC"

	MinMonth = 1
	MaxMonth = 12
	MinYear  = 2000
	MaxYear  = 2100

	// Windowless summaries are cheap to serve stale; month-scoped requests
	// always hit the store.
	SummaryCacheTTL             = 5 * time.Minute
	SummaryCacheCleanupInterval = 10 * time.Minute

	// StoreRetryCronSpec re-attempts store initialization while degraded.
	StoreRetryCronSpec = "@every 1m"
	StoreRetryTimeout  = 10 * time.Second

	CORSAllowedOriginLocalhost = "http://localhost:3000"
)
