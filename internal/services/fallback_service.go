package services

import (
	"github.com/poofware/revenue-service/internal/constants"
	"github.com/poofware/revenue-service/internal/models"
)

// FallbackService supplies fixed synthetic revenue data when the store is
// unreachable or never initialized. It is a degraded-mode substitute only:
// its output is never merged with live rows, and a legitimate empty result
// from the store does not come through here.
type FallbackService struct{}

func NewFallbackService() *FallbackService {
	return &FallbackService{}
}

type fallbackRevenue struct {
	total string
	count int64
}

// Keyed tenant-first so the degraded path honors the same
// (tenant_id, property_id) scoping as live queries. tenant-b/prop-001 is
// deliberately distinct from tenant-a/prop-001.
var fallbackRevenueByTenant = map[string]map[string]fallbackRevenue{
	"tenant-a": {
		"prop-001": {total: "2250.667", count: 4},
		"prop-002": {total: "4975.50", count: 4},
		"prop-003": {total: "6100.50", count: 2},
	},
	"tenant-b": {
		"prop-001": {total: "0.00", count: 0},
		"prop-004": {total: "1776.50", count: 4},
		"prop-005": {total: "3256.00", count: 3},
	},
}

var fallbackPropertiesByTenant = map[string][]models.PropertyItem{
	"tenant-a": {
		{ID: "prop-001", Name: "Beach House Alpha"},
		{ID: "prop-002", Name: "City Apartment Downtown"},
		{ID: "prop-003", Name: "Country Villa Estate"},
	},
	"tenant-b": {
		{ID: "prop-001", Name: "Mountain Lodge Beta"},
		{ID: "prop-004", Name: "Lakeside Cottage"},
		{ID: "prop-005", Name: "Urban Loft Modern"},
	},
}

// RevenueSummary returns the synthetic summary for a tenant/property pair.
// An unknown tenant, or an unknown property within a known tenant, yields a
// zero summary. Currency is always USD on the degraded path.
func (f *FallbackService) RevenueSummary(tenantID, propertyID string) *models.RevenueSummary {
	entry := fallbackRevenue{total: "0.00", count: 0}
	if byProperty, ok := fallbackRevenueByTenant[tenantID]; ok {
		if e, ok := byProperty[propertyID]; ok {
			entry = e
		}
	}
	return &models.RevenueSummary{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Total:      entry.total,
		Currency:   constants.DefaultCurrency,
		Count:      entry.count,
	}
}

// Properties returns the synthetic property list for a tenant; empty for an
// unknown tenant. Ordering is not guaranteed to match the store path.
func (f *FallbackService) Properties(tenantID string) []models.PropertyItem {
	items := fallbackPropertiesByTenant[tenantID]
	out := make([]models.PropertyItem, len(items))
	copy(out, items)
	return out
}
