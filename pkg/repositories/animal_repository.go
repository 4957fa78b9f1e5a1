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

// AnimalRepository defines upsert access to animal rows. Callers must hold
// the identities of both resolved ancestors before upserting a descendant;
// the sequencer's ancestor-first order guarantees that.
type AnimalRepository interface {
	// Upsert creates or updates the animal keyed by
	// (environment, tenant_id, name) and returns its stable identity.
	Upsert(ctx context.Context, animal *models.Animal) (uuid.UUID, error)

	// CountByTenant returns the number of animal rows for one tenant.
	// Used by the seeding report and reseed verification.
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error)
}

type animalRepository struct{}

// NewAnimalRepository creates a new animal repository.
func NewAnimalRepository() AnimalRepository {
	return &animalRepository{}
}

func (r *animalRepository) Upsert(ctx context.Context, animal *models.Animal) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	genetics, err := json.Marshal(animal.Genetics)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal genetics payload: %w", err)
	}
	titles, err := json.Marshal(animal.Titles)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal titles: %w", err)
	}
	competitions, err := json.Marshal(animal.Competitions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal competitions: %w", err)
	}
	visibility, err := json.Marshal(animal.Visibility)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal visibility: %w", err)
	}

	query := `
		INSERT INTO animals (id, tenant_id, environment, name, species, sex, breed, generation,
			sire_id, dam_id, birth_year, genetics, titles, competitions, visibility, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now(), now())
		ON CONFLICT (environment, tenant_id, name) DO UPDATE SET
			species      = EXCLUDED.species,
			sex          = EXCLUDED.sex,
			breed        = EXCLUDED.breed,
			generation   = EXCLUDED.generation,
			sire_id      = EXCLUDED.sire_id,
			dam_id       = EXCLUDED.dam_id,
			birth_year   = EXCLUDED.birth_year,
			genetics     = EXCLUDED.genetics,
			titles       = EXCLUDED.titles,
			competitions = EXCLUDED.competitions,
			visibility   = EXCLUDED.visibility,
			updated_at   = now()
		RETURNING id`

	var id uuid.UUID
	err = scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		animal.TenantID,
		animal.Environment,
		animal.Name,
		animal.Species,
		animal.Sex,
		animal.Breed,
		animal.Generation,
		animal.SireID,
		animal.DamID,
		animal.BirthYear,
		genetics,
		titles,
		competitions,
		visibility,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert animal %s: %w", animal.Name, err)
	}

	return id, nil
}

func (r *animalRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID) (int, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return 0, apperrors.ErrNoTenantScope
	}

	var count int
	err := scope.Conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM animals WHERE tenant_id = $1`, tenantID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count animals: %w", err)
	}
	return count, nil
}

var _ AnimalRepository = (*animalRepository)(nil)
