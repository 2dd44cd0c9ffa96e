package services

import (
	"context"

	gocache "github.com/patrickmn/go-cache"

	"github.com/poofware/revenue-service/internal/constants"
	"github.com/poofware/revenue-service/internal/models"
	"github.com/poofware/revenue-service/internal/repositories"
	"github.com/poofware/revenue-service/internal/utils"
)

// RevenueService answers "total revenue for property P of tenant T", with an
// optional calendar-month window interpreted in the property's timezone.
//
// Both entry points never fail: any store-layer error switches the whole
// response to the fallback dataset. Masking real errors as degraded data is
// a deliberate availability tradeoff; the only hard rejection a caller sees
// is missing tenant context, handled upstream.
type RevenueService struct {
	propRepo repositories.PropertyRepository
	resvRepo repositories.ReservationRepository
	fallback *FallbackService
	cache    *gocache.Cache
}

func NewRevenueService(
	propRepo repositories.PropertyRepository,
	resvRepo repositories.ReservationRepository,
	fallback *FallbackService,
) *RevenueService {
	return &RevenueService{
		propRepo: propRepo,
		resvRepo: resvRepo,
		fallback: fallback,
		cache:    gocache.New(constants.SummaryCacheTTL, constants.SummaryCacheCleanupInterval),
	}
}

// GetTotalRevenue aggregates revenue for one property of one tenant. When
// both month and year are given, the window is resolved in the property's
// timezone (looked up under the same tenant scope) before aggregating;
// otherwise the aggregate is unscoped by time and a cached summary may be
// served. The summary's Total stays an exact decimal string; float
// conversion happens only at the HTTP boundary.
func (s *RevenueService) GetTotalRevenue(ctx context.Context, tenantID, propertyID string, month, year *int) *models.RevenueSummary {
	windowed := month != nil && year != nil

	if !windowed {
		if cached, ok := s.cache.Get(summaryCacheKey(tenantID, propertyID)); ok {
			summary := cached.(models.RevenueSummary)
			return &summary
		}
	}

	var window *models.TimeWindow
	if windowed {
		tz, err := s.propRepo.GetTimeZone(ctx, tenantID, propertyID)
		if err != nil {
			return s.degrade(tenantID, propertyID, err)
		}
		if tz == "" {
			tz = constants.DefaultTimezone
		}
		w := utils.MonthWindowInTZ(*month, *year, tz)
		window = &w
	}

	agg, err := s.resvRepo.AggregateRevenue(ctx, tenantID, propertyID, window)
	if err != nil {
		return s.degrade(tenantID, propertyID, err)
	}

	summary := &models.RevenueSummary{
		PropertyID: propertyID,
		TenantID:   tenantID,
		Total:      agg.Total.String(),
		Currency:   agg.Currency,
		Count:      agg.Count,
	}
	if summary.Currency == "" {
		summary.Currency = constants.DefaultCurrency
	}

	// Only live results are cached; fallback data must never outlive the
	// outage that produced it.
	if !windowed {
		s.cache.Set(summaryCacheKey(tenantID, propertyID), *summary, gocache.DefaultExpiration)
	}
	return summary
}

// ListProperties returns the properties visible to a tenant, ordered by name
// ascending on the store path. On store failure the per-tenant fallback list
// is returned instead (ordering not guaranteed there).
func (s *RevenueService) ListProperties(ctx context.Context, tenantID string) []models.PropertyItem {
	props, err := s.propRepo.ListByTenantID(ctx, tenantID)
	if err != nil {
		utils.Logger.WithError(err).Warnf("Store unavailable listing properties (tenant: %s); serving fallback list", tenantID)
		return s.fallback.Properties(tenantID)
	}

	items := make([]models.PropertyItem, 0, len(props))
	for _, p := range props {
		items = append(items, models.PropertyItem{ID: p.ID, Name: p.Name})
	}
	return items
}

// degrade logs the store failure and answers from the synthetic dataset.
func (s *RevenueService) degrade(tenantID, propertyID string, err error) *models.RevenueSummary {
	utils.Logger.WithError(err).Warnf("Store unavailable for %s (tenant: %s); serving fallback revenue", propertyID, tenantID)
	return s.fallback.RevenueSummary(tenantID, propertyID)
}

func summaryCacheKey(tenantID, propertyID string) string {
	return tenantID + "/" + propertyID
}
