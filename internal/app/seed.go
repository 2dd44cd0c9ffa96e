package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poofware/revenue-service/internal/models"
	"github.com/poofware/revenue-service/internal/repositories"
	"github.com/poofware/revenue-service/internal/utils"
)

// SentinelReservationID is used to check if seeding has already occurred.
const SentinelReservationID = "dddddddd-dddd-4ddd-dddd-000000000001"

type seedReservation struct {
	id      string
	checkIn time.Time
	total   string
}

type seedProperty struct {
	property     models.Property
	reservations []seedReservation
}

// SeedAllTestData seeds dev/demo tenants whose aggregates match the
// degraded-mode dataset, so the dashboard reads the same either way.
// Idempotent: skips everything once the sentinel reservation exists.
func SeedAllTestData(
	ctx context.Context,
	propRepo repositories.PropertyRepository,
	resvRepo repositories.ReservationRepository,
) error {
	existing, err := resvRepo.GetByID(ctx, uuid.MustParse(SentinelReservationID))
	if err != nil {
		return fmt.Errorf("failed to check for sentinel reservation: %w", err)
	}
	if existing != nil {
		utils.Logger.Info("revenue-service: Seed data already present; skipping seeding.")
		return nil
	}

	for _, sp := range seedData() {
		if err := propRepo.Create(ctx, &sp.property); err != nil {
			return fmt.Errorf("seed property %s/%s: %w", sp.property.TenantID, sp.property.ID, err)
		}
		for _, sr := range sp.reservations {
			total, err := decimal.NewFromString(sr.total)
			if err != nil {
				return fmt.Errorf("seed reservation %s: %w", sr.id, err)
			}
			resv := &models.Reservation{
				ID:          uuid.MustParse(sr.id),
				TenantID:    sp.property.TenantID,
				PropertyID:  sp.property.ID,
				CheckIn:     sr.checkIn,
				TotalAmount: total,
				Currency:    "USD",
			}
			if err := resvRepo.Create(ctx, resv); err != nil {
				return fmt.Errorf("seed reservation %s: %w", sr.id, err)
			}
		}
	}

	utils.Logger.Info("revenue-service: Seeding completed successfully.")
	return nil
}

func seedID(n int) string {
	return fmt.Sprintf("dddddddd-dddd-4ddd-dddd-%012d", n)
}

func seedData() []seedProperty {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 16, 0, 0, 0, time.UTC)
	}

	return []seedProperty{
		{
			property: models.Property{ID: "prop-001", TenantID: "tenant-a", Name: "Beach House Alpha", TimeZone: "America/New_York"},
			reservations: []seedReservation{
				{id: seedID(1), checkIn: day(2025, time.July, 3), total: "500.00"},
				{id: seedID(2), checkIn: day(2025, time.July, 11), total: "650.50"},
				{id: seedID(3), checkIn: day(2025, time.July, 19), total: "700.167"},
				{id: seedID(4), checkIn: day(2025, time.August, 2), total: "400.00"},
			},
		},
		{
			property: models.Property{ID: "prop-002", TenantID: "tenant-a", Name: "City Apartment Downtown", TimeZone: "America/Chicago"},
			reservations: []seedReservation{
				{id: seedID(5), checkIn: day(2025, time.June, 6), total: "1200.00"},
				{id: seedID(6), checkIn: day(2025, time.June, 20), total: "1300.50"},
				{id: seedID(7), checkIn: day(2025, time.July, 4), total: "1250.00"},
				{id: seedID(8), checkIn: day(2025, time.July, 25), total: "1225.00"},
			},
		},
		{
			property: models.Property{ID: "prop-003", TenantID: "tenant-a", Name: "Country Villa Estate", TimeZone: "Europe/Rome"},
			reservations: []seedReservation{
				{id: seedID(9), checkIn: day(2025, time.May, 9), total: "3000.25"},
				{id: seedID(10), checkIn: day(2025, time.August, 15), total: "3100.25"},
			},
		},
		{
			// Same property id as tenant-a's beach house, different tenant:
			// exercises the isolation invariant end to end.
			property:     models.Property{ID: "prop-001", TenantID: "tenant-b", Name: "Mountain Lodge Beta", TimeZone: "America/Denver"},
			reservations: nil,
		},
		{
			property: models.Property{ID: "prop-004", TenantID: "tenant-b", Name: "Lakeside Cottage", TimeZone: "UTC"},
			reservations: []seedReservation{
				{id: seedID(11), checkIn: day(2025, time.June, 13), total: "400.00"},
				{id: seedID(12), checkIn: day(2025, time.June, 27), total: "450.50"},
				{id: seedID(13), checkIn: day(2025, time.July, 12), total: "476.00"},
				{id: seedID(14), checkIn: day(2025, time.July, 30), total: "450.00"},
			},
		},
		{
			property: models.Property{ID: "prop-005", TenantID: "tenant-b", Name: "Urban Loft Modern", TimeZone: "Asia/Tokyo"},
			reservations: []seedReservation{
				{id: seedID(15), checkIn: day(2025, time.July, 5), total: "1000.00"},
				{id: seedID(16), checkIn: day(2025, time.July, 18), total: "1128.00"},
				{id: seedID(17), checkIn: day(2025, time.August, 8), total: "1128.00"},
			},
		},
	}
}
