package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// BreedingPlanRepository defines upsert access to breeding-plan rows.
type BreedingPlanRepository interface {
	// Upsert creates or updates the plan keyed by
	// (environment, tenant_id, name) and returns its stable identity.
	Upsert(ctx context.Context, plan *models.BreedingPlan) (uuid.UUID, error)
}

type breedingPlanRepository struct{}

// NewBreedingPlanRepository creates a new breeding-plan repository.
func NewBreedingPlanRepository() BreedingPlanRepository {
	return &breedingPlanRepository{}
}

func (r *breedingPlanRepository) Upsert(ctx context.Context, plan *models.BreedingPlan) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	query := `
		INSERT INTO breeding_plans (id, tenant_id, environment, name, species, dam_id, sire_id, status, expected_cycle, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (environment, tenant_id, name) DO UPDATE SET
			species        = EXCLUDED.species,
			dam_id         = EXCLUDED.dam_id,
			sire_id        = EXCLUDED.sire_id,
			status         = EXCLUDED.status,
			expected_cycle = EXCLUDED.expected_cycle,
			updated_at     = now()
		RETURNING id`

	var id uuid.UUID
	err := scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		plan.TenantID,
		plan.Environment,
		plan.Name,
		plan.Species,
		plan.DamID,
		plan.SireID,
		plan.Status,
		plan.ExpectedCycle,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert breeding plan %s: %w", plan.Name, err)
	}

	return id, nil
}

var _ BreedingPlanRepository = (*breedingPlanRepository)(nil)
