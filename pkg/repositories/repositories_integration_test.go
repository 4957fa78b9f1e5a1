package repositories_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
	"github.com/pedigreehq/fixture-seeder/pkg/repositories"
	"github.com/pedigreehq/fixture-seeder/pkg/seeding"
	"github.com/pedigreehq/fixture-seeder/pkg/testhelpers"
)

func allRepositories() seeding.Repositories {
	return seeding.Repositories{
		Tenants:  repositories.NewTenantRepository(),
		Users:    repositories.NewUserRepository(),
		Contacts: repositories.NewContactRepository(),
		Orgs:     repositories.NewOrganizationRepository(),
		Animals:  repositories.NewAnimalRepository(),
		Plans:    repositories.NewBreedingPlanRepository(),
		Listings: repositories.NewListingRepository(),
	}
}

func TestUpsert_RequiresTenantScope(t *testing.T) {
	repo := repositories.NewTenantRepository()
	_, err := repo.Upsert(context.Background(), &models.Tenant{
		Environment: models.EnvDev,
		Slug:        "unscoped-dev",
	})
	require.ErrorIs(t, err, apperrors.ErrNoTenantScope)
}

func TestTenantUpsert_IdentityIsStable(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	ctx := context.Background()

	scope, err := tdb.DB.WithTenant(ctx, models.EnvDev, "stability-dev")
	require.NoError(t, err)
	defer scope.Close()
	ctx = database.SetTenantScope(ctx, scope)

	repo := repositories.NewTenantRepository()
	tenant := &models.Tenant{
		Environment: models.EnvDev,
		Slug:        "stability-dev",
		DisplayName: "Stability Check",
		Theme:       "evergreen",
		Species:     []string{"dog"},
	}

	first, err := repo.Upsert(ctx, tenant)
	require.NoError(t, err)

	tenant.DisplayName = "Stability Check Renamed"
	second, err := repo.Upsert(ctx, tenant)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same natural key must keep the same row identity")
}

func TestSeedEnvironment_EndToEnd(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	ctx := context.Background()

	reg, err := fixtures.ForEnvironment(models.EnvDev)
	require.NoError(t, err)

	orch := seeding.NewOrchestrator(tdb.DB, allRepositories(), zap.NewNop())

	report, err := orch.Run(ctx, reg)
	require.NoError(t, err)
	require.False(t, report.Failed(), "first seed must complete: %+v", report.Tenants)

	counts := animalCounts(t, tdb.DB, report)

	// Reseeding is a pure upsert replay: same rows, same counts.
	report2, err := orch.Run(ctx, reg)
	require.NoError(t, err)
	require.False(t, report2.Failed())
	assert.Equal(t, counts, animalCounts(t, tdb.DB, report2))

	for i, res := range report2.Tenants {
		assert.Equal(t, report.Tenants[i].Animals, res.Animals)
		assert.Equal(t, report.Tenants[i].Plans, res.Plans)
	}
}

func TestSeedEnvironment_BothEnvironmentsCoexist(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	ctx := context.Background()

	orch := seeding.NewOrchestrator(tdb.DB, allRepositories(), zap.NewNop())

	for _, env := range models.ValidEnvironments {
		reg, err := fixtures.ForEnvironment(env)
		require.NoError(t, err)
		report, err := orch.Run(ctx, reg)
		require.NoError(t, err)
		require.False(t, report.Failed(), "environment %s", env)
	}

	// winterfell is seeded in both environments; the qualified slugs keep
	// the rows fully apart.
	scope, err := tdb.DB.WithTenant(ctx, models.EnvDev, "winterfell-dev")
	require.NoError(t, err)
	defer scope.Close()

	var devRows, prodRows int
	require.NoError(t, scope.Conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE slug = 'winterfell-dev' AND environment = 'dev'`).Scan(&devRows))
	require.NoError(t, scope.Conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM tenants WHERE slug = 'winterfell-prod' AND environment = 'prod'`).Scan(&prodRows))
	assert.Equal(t, 1, devRows)
	assert.Equal(t, 1, prodRows)
}

// animalCounts reads the per-tenant animal row count for every tenant in a
// report, through a fresh scope per tenant.
func animalCounts(t *testing.T, db *database.DB, report *seeding.Report) map[string]int {
	t.Helper()
	ctx := context.Background()
	repo := repositories.NewAnimalRepository()

	counts := make(map[string]int, len(report.Tenants))
	for _, res := range report.Tenants {
		scope, err := db.WithTenant(ctx, report.Environment, res.Slug)
		require.NoError(t, err)

		var tenantID uuid.UUID
		require.NoError(t, scope.Conn.QueryRow(ctx,
			`SELECT id FROM tenants WHERE environment = $1 AND slug = $2`,
			report.Environment, res.Slug).Scan(&tenantID))

		n, err := repo.CountByTenant(database.SetTenantScope(ctx, scope), tenantID)
		scope.Close()
		require.NoError(t, err)
		counts[res.Slug] = n
	}
	return counts
}
