package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueSummary is the engine's answer to "total revenue for property P of
// tenant T". Total stays an exact decimal string until the HTTP boundary.
type RevenueSummary struct {
	PropertyID string `json:"property_id"`
	TenantID   string `json:"tenant_id"`
	Total      string `json:"total"`
	Currency   string `json:"currency"`
	Count      int64  `json:"count"`
}

// RevenueAggregate is the raw result of a scoped aggregation query.
// Count can be 0 while Total is non-zero only by convention in the store;
// callers must not assume the two are linked.
type RevenueAggregate struct {
	Total    decimal.Decimal
	Count    int64
	Currency string
}

// TimeWindow is a half-open UTC instant range [StartUTC, EndUTC).
// Computed fresh per request, never persisted.
type TimeWindow struct {
	StartUTC time.Time
	EndUTC   time.Time
}
