package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"

	"github.com/poofware/revenue-service/internal/models"
)

// ReservationRepository aggregates reservation revenue. Both tenant_id and
// property_id are mandatory predicates on every query; the window predicate
// is the only optional part.
type ReservationRepository interface {
	Create(ctx context.Context, res *models.Reservation) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	AggregateRevenue(ctx context.Context, tenantID, propertyID string, window *models.TimeWindow) (*models.RevenueAggregate, error)
}

type reservationRepo struct {
	db DB
}

func NewReservationRepository(db DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) Create(ctx context.Context, res *models.Reservation) error {
	q := `
		INSERT INTO reservations (
			id, tenant_id, property_id, check_in, total_amount, currency, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, q, res.ID, res.TenantID, res.PropertyID, res.CheckIn, res.TotalAmount.String(), res.Currency)
	return err
}

func (r *reservationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	row := r.db.QueryRow(ctx, baseSelectReservation()+" WHERE id=$1", id)
	return r.scanReservation(row)
}

// AggregateRevenue sums reservation totals for one property of one tenant,
// optionally restricted to check-ins inside the half-open window
// [StartUTC, EndUTC). An empty match is a success: {0, 0, "USD"}.
//
// When reservations carry mixed currencies the minimum currency code present
// is reported. That is a documented placeholder, not multi-currency support.
func (r *reservationRepo) AggregateRevenue(ctx context.Context, tenantID, propertyID string, window *models.TimeWindow) (*models.RevenueAggregate, error) {
	// SUM is cast to text so the numeric total reaches Go without ever
	// passing through a float.
	q := `
		SELECT
			COALESCE(SUM(total_amount), 0)::text AS total_revenue,
			COUNT(*) AS reservation_count,
			COALESCE(MIN(currency), 'USD') AS currency
		FROM reservations
		WHERE property_id = $1
		  AND tenant_id = $2
	`
	args := []interface{}{propertyID, tenantID}
	if window != nil {
		q += " AND check_in >= $3 AND check_in < $4"
		args = append(args, window.StartUTC, window.EndUTC)
	}

	var (
		totalStr string
		count    int64
		currency string
	)
	if err := r.db.QueryRow(ctx, q, args...).Scan(&totalStr, &count, &currency); err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(strings.TrimSpace(totalStr))
	if err != nil {
		return nil, err
	}

	return &models.RevenueAggregate{
		Total:    total,
		Count:    count,
		Currency: strings.TrimSpace(currency),
	}, nil
}

func baseSelectReservation() string {
	return `
		SELECT
			id, tenant_id, property_id, check_in, total_amount::text, currency, created_at
		FROM reservations
	`
}

func (r *reservationRepo) scanReservation(row pgx.Row) (*models.Reservation, error) {
	var (
		res      models.Reservation
		totalStr string
	)
	err := row.Scan(
		&res.ID,
		&res.TenantID,
		&res.PropertyID,
		&res.CheckIn,
		&totalStr,
		&res.Currency,
		&res.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	res.TotalAmount, err = decimal.NewFromString(strings.TrimSpace(totalStr))
	if err != nil {
		return nil, err
	}
	res.Currency = strings.TrimSpace(res.Currency)
	return &res, nil
}
