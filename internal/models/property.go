package models

import (
	"time"
)

type Property struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	TimeZone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

// PropertyItem is the slim projection returned by the properties listing.
type PropertyItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
