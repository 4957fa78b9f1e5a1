// Package repositories is the persistence boundary of the seeding pipeline.
// Every repository exposes a single idempotent Upsert keyed by the entity's
// natural key (environment + tenant + name); repeated runs update the
// existing row in place and return the same identity. Repositories read
// their connection from the tenant scope pinned in the context, so no call
// can ever touch more than one tenant.
package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// TenantRepository defines upsert access to tenant rows.
type TenantRepository interface {
	// Upsert creates or updates the tenant keyed by (environment, slug)
	// and returns its stable identity.
	Upsert(ctx context.Context, tenant *models.Tenant) (uuid.UUID, error)
}

type tenantRepository struct{}

// NewTenantRepository creates a new tenant repository.
func NewTenantRepository() TenantRepository {
	return &tenantRepository{}
}

func (r *tenantRepository) Upsert(ctx context.Context, tenant *models.Tenant) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	marketplace, err := json.Marshal(tenant.Marketplace)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal marketplace policy: %w", err)
	}
	visibility, err := json.Marshal(tenant.Visibility)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal visibility defaults: %w", err)
	}

	query := `
		INSERT INTO tenants (id, environment, slug, display_name, theme, marketplace, visibility, species, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (environment, slug) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			theme        = EXCLUDED.theme,
			marketplace  = EXCLUDED.marketplace,
			visibility   = EXCLUDED.visibility,
			species      = EXCLUDED.species,
			updated_at   = now()
		RETURNING id`

	var id uuid.UUID
	err = scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		tenant.Environment,
		tenant.Slug,
		tenant.DisplayName,
		tenant.Theme,
		marketplace,
		visibility,
		tenant.Species,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert tenant %s: %w", tenant.Slug, err)
	}

	return id, nil
}

var _ TenantRepository = (*tenantRepository)(nil)
