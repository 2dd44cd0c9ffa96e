package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/poofware/revenue-service/internal/models"
	"github.com/poofware/revenue-service/internal/utils"
)

/* ------------------------------------------------------------------
   Fakes
------------------------------------------------------------------ */

type fakePropertyRepo struct {
	timeZone string
	tzErr    error
	props    []*models.Property
	listErr  error

	tzCalls        int
	lastTenantID   string
	lastPropertyID string
}

func (f *fakePropertyRepo) Create(ctx context.Context, p *models.Property) error { return nil }

func (f *fakePropertyRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) GetTimeZone(ctx context.Context, tenantID, id string) (string, error) {
	f.tzCalls++
	f.lastTenantID = tenantID
	f.lastPropertyID = id
	return f.timeZone, f.tzErr
}

func (f *fakePropertyRepo) ListByTenantID(ctx context.Context, tenantID string) ([]*models.Property, error) {
	f.lastTenantID = tenantID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.props, nil
}

type fakeReservationRepo struct {
	agg *models.RevenueAggregate
	err error

	calls          int
	lastTenantID   string
	lastPropertyID string
	lastWindow     *models.TimeWindow
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *models.Reservation) error { return nil }

func (f *fakeReservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservationRepo) AggregateRevenue(ctx context.Context, tenantID, propertyID string, window *models.TimeWindow) (*models.RevenueAggregate, error) {
	f.calls++
	f.lastTenantID = tenantID
	f.lastPropertyID = propertyID
	f.lastWindow = window
	if f.err != nil {
		return nil, f.err
	}
	return f.agg, nil
}

func newService(propRepo *fakePropertyRepo, resvRepo *fakeReservationRepo) *RevenueService {
	return NewRevenueService(propRepo, resvRepo, NewFallbackService())
}

func intPtr(v int) *int { return &v }

/* ------------------------------------------------------------------
   Summary
------------------------------------------------------------------ */

func TestGetTotalRevenueStoreFailureServesFallback(t *testing.T) {
	resvRepo := &fakeReservationRepo{err: utils.ErrStoreUnavailable}
	svc := newService(&fakePropertyRepo{}, resvRepo)

	s := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", nil, nil)
	require.Equal(t, "2250.667", s.Total)
	require.Equal(t, int64(4), s.Count)
	require.Equal(t, "USD", s.Currency)

	// Fallback stays tenant-scoped.
	s = svc.GetTotalRevenue(context.Background(), "tenant-b", "prop-001", nil, nil)
	require.Equal(t, "0.00", s.Total)
	require.Equal(t, int64(0), s.Count)
}

func TestGetTotalRevenueEmptyResultIsNotFallback(t *testing.T) {
	// No matching reservations is a legitimate zero, not a degraded answer:
	// tenant-a/prop-001 must NOT show the synthetic 2250.667.
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.Zero, Count: 0, Currency: "USD"},
	}
	svc := newService(&fakePropertyRepo{timeZone: "UTC"}, resvRepo)

	s := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", intPtr(7), intPtr(2025))
	require.Equal(t, "0", s.Total)
	require.Equal(t, int64(0), s.Count)
	require.Equal(t, "USD", s.Currency)
}

func TestGetTotalRevenueWindowUsesPropertyTimezone(t *testing.T) {
	propRepo := &fakePropertyRepo{timeZone: "America/New_York"}
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.RequireFromString("100.00"), Count: 1, Currency: "USD"},
	}
	svc := newService(propRepo, resvRepo)

	svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", intPtr(3), intPtr(2024))

	require.Equal(t, "tenant-a", propRepo.lastTenantID)
	require.Equal(t, "prop-001", propRepo.lastPropertyID)

	require.NotNil(t, resvRepo.lastWindow)
	want := utils.MonthWindowInTZ(3, 2024, "America/New_York")
	require.True(t, want.StartUTC.Equal(resvRepo.lastWindow.StartUTC))
	require.True(t, want.EndUTC.Equal(resvRepo.lastWindow.EndUTC))
}

func TestGetTotalRevenueMissingTimezoneDefaultsToUTC(t *testing.T) {
	propRepo := &fakePropertyRepo{timeZone: ""}
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.Zero, Count: 0, Currency: "USD"},
	}
	svc := newService(propRepo, resvRepo)

	svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", intPtr(6), intPtr(2024))

	require.NotNil(t, resvRepo.lastWindow)
	want := utils.MonthWindowInTZ(6, 2024, "UTC")
	require.True(t, want.StartUTC.Equal(resvRepo.lastWindow.StartUTC))
	require.True(t, want.EndUTC.Equal(resvRepo.lastWindow.EndUTC))
}

func TestGetTotalRevenueUnwindowedSkipsTimezoneLookup(t *testing.T) {
	propRepo := &fakePropertyRepo{}
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.RequireFromString("50"), Count: 2, Currency: "USD"},
	}
	svc := newService(propRepo, resvRepo)

	svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-002", nil, nil)
	require.Zero(t, propRepo.tzCalls)
	require.Nil(t, resvRepo.lastWindow)
}

func TestGetTotalRevenueWindowlessServedFromCache(t *testing.T) {
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.RequireFromString("123.45"), Count: 3, Currency: "USD"},
	}
	svc := newService(&fakePropertyRepo{}, resvRepo)

	first := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-002", nil, nil)
	second := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-002", nil, nil)

	require.Equal(t, 1, resvRepo.calls)
	require.Equal(t, first, second)
}

func TestGetTotalRevenueFallbackIsNotCached(t *testing.T) {
	resvRepo := &fakeReservationRepo{err: utils.ErrStoreUnavailable}
	svc := newService(&fakePropertyRepo{}, resvRepo)

	degraded := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", nil, nil)
	require.Equal(t, "2250.667", degraded.Total)

	// Store recovers; the next request must hit it, not a cached fallback.
	resvRepo.err = nil
	resvRepo.agg = &models.RevenueAggregate{Total: decimal.RequireFromString("999.99"), Count: 1, Currency: "USD"}

	live := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-001", nil, nil)
	require.Equal(t, "999.99", live.Total)
	require.Equal(t, 2, resvRepo.calls)
}

func TestGetTotalRevenueIdempotent(t *testing.T) {
	propRepo := &fakePropertyRepo{timeZone: "Europe/Rome"}
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.RequireFromString("6100.50"), Count: 2, Currency: "USD"},
	}
	svc := newService(propRepo, resvRepo)

	first := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-003", intPtr(5), intPtr(2025))
	second := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-003", intPtr(5), intPtr(2025))
	require.Equal(t, first, second)
}

func TestGetTotalRevenueReportsStoreCurrency(t *testing.T) {
	resvRepo := &fakeReservationRepo{
		agg: &models.RevenueAggregate{Total: decimal.RequireFromString("10"), Count: 1, Currency: "EUR"},
	}
	svc := newService(&fakePropertyRepo{}, resvRepo)

	s := svc.GetTotalRevenue(context.Background(), "tenant-a", "prop-003", nil, nil)
	require.Equal(t, "EUR", s.Currency)
}

/* ------------------------------------------------------------------
   Properties
------------------------------------------------------------------ */

func TestListPropertiesStorePath(t *testing.T) {
	propRepo := &fakePropertyRepo{
		props: []*models.Property{
			{ID: "prop-001", TenantID: "tenant-a", Name: "Beach House Alpha"},
			{ID: "prop-002", TenantID: "tenant-a", Name: "City Apartment Downtown"},
		},
	}
	svc := newService(propRepo, &fakeReservationRepo{})

	items := svc.ListProperties(context.Background(), "tenant-a")
	require.Equal(t, "tenant-a", propRepo.lastTenantID)
	require.Equal(t, []models.PropertyItem{
		{ID: "prop-001", Name: "Beach House Alpha"},
		{ID: "prop-002", Name: "City Apartment Downtown"},
	}, items)
}

func TestListPropertiesStoreFailureServesFallback(t *testing.T) {
	propRepo := &fakePropertyRepo{listErr: utils.ErrStoreUnavailable}
	svc := newService(propRepo, &fakeReservationRepo{})

	items := svc.ListProperties(context.Background(), "tenant-b")
	require.Len(t, items, 3)
	for _, item := range items {
		require.NotEmpty(t, item.ID)
		require.NotEmpty(t, item.Name)
	}
}
