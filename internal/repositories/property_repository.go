package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/poofware/revenue-service/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// PropertyRepository reads properties for a tenant. Every lookup is keyed by
// (tenant_id, id); a property of tenant A must never be reachable through a
// query made on behalf of tenant B.
type PropertyRepository interface {
	Create(ctx context.Context, p *models.Property) error

	GetByID(ctx context.Context, tenantID, id string) (*models.Property, error)
	GetTimeZone(ctx context.Context, tenantID, id string) (string, error)
	ListByTenantID(ctx context.Context, tenantID string) ([]*models.Property, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *models.Property) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO properties (
            id, tenant_id, name, time_zone, created_at
        ) VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (tenant_id, id) DO NOTHING
    `,
		p.ID,
		p.TenantID,
		p.Name,
		p.TimeZone,
	)
	return err
}

func (r *propertyRepo) GetByID(ctx context.Context, tenantID, id string) (*models.Property, error) {
	row := r.db.QueryRow(ctx, baseSelectProperty()+" WHERE tenant_id=$1 AND id=$2", tenantID, id)
	return scanProperty(row)
}

// GetTimeZone returns the property's IANA timezone name, or "" when the
// property is unknown for this tenant. Callers default "" to UTC.
func (r *propertyRepo) GetTimeZone(ctx context.Context, tenantID, id string) (string, error) {
	var tz string
	err := r.db.QueryRow(ctx, `
        SELECT time_zone FROM properties
        WHERE tenant_id=$1 AND id=$2
        LIMIT 1
    `, tenantID, id).Scan(&tz)
	if err == pgx.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tz, nil
}

func (r *propertyRepo) ListByTenantID(ctx context.Context, tenantID string) ([]*models.Property, error) {
	rows, err := r.db.Query(ctx, baseSelectProperty()+" WHERE tenant_id=$1 ORDER BY name", tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func baseSelectProperty() string {
	return `
        SELECT
            id, tenant_id, name, time_zone, created_at
        FROM properties
    `
}

func scanProperty(row pgx.Row) (*models.Property, error) {
	var p models.Property
	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.TimeZone,
		&p.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
