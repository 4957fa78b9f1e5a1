package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// OrganizationRepository defines upsert access to per-tenant organizations.
type OrganizationRepository interface {
	// Upsert creates or updates the organization keyed by
	// (environment, tenant_id, name) and returns its stable identity.
	Upsert(ctx context.Context, org *models.Organization) (uuid.UUID, error)
}

type organizationRepository struct{}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository() OrganizationRepository {
	return &organizationRepository{}
}

func (r *organizationRepository) Upsert(ctx context.Context, org *models.Organization) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	query := `
		INSERT INTO organizations (id, tenant_id, environment, name, public_program, marketplace_slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (environment, tenant_id, name) DO UPDATE SET
			public_program   = EXCLUDED.public_program,
			marketplace_slug = EXCLUDED.marketplace_slug,
			updated_at       = now()
		RETURNING id`

	var id uuid.UUID
	err := scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		org.TenantID,
		org.Environment,
		org.Name,
		org.PublicProgram,
		org.MarketplaceSlug,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert organization %s: %w", org.Name, err)
	}

	return id, nil
}

var _ OrganizationRepository = (*organizationRepository)(nil)
