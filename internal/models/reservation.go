package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reservation is read-only from this service's perspective; bookings are
// written by the reservations pipeline, we only aggregate them.
type Reservation struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    string          `json:"tenant_id"`
	PropertyID  string          `json:"property_id"`
	CheckIn     time.Time       `json:"check_in"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
}
