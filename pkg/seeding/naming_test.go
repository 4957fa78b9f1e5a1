package seeding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

func TestNewNamer_RejectsUnknownEnvironment(t *testing.T) {
	_, err := NewNamer("staging")
	require.Error(t, err)
}

func TestNamer_QualifiesIdentifiers(t *testing.T) {
	namer, err := NewNamer(models.EnvDev)
	require.NoError(t, err)

	assert.Equal(t, "rivendell-dev", namer.TenantSlug("rivendell"))
	assert.Equal(t, "elrond+dev@rivendell.example", namer.Email("elrond@rivendell.example"))
	assert.Equal(t, "eriador-kc-dev", namer.OrgSlug("eriador-kc"))
	assert.Equal(t, "", namer.OrgSlug(""))
}

func TestNamer_EnvironmentsAreDisjoint(t *testing.T) {
	dev, err := NewNamer(models.EnvDev)
	require.NoError(t, err)
	prod, err := NewNamer(models.EnvProd)
	require.NoError(t, err)

	// Same base identifier never qualifies to the same natural key in the
	// other environment.
	assert.NotEqual(t, dev.TenantSlug("winterfell"), prod.TenantSlug("winterfell"))
	assert.NotEqual(t, dev.Email("ned@winterfell.example"), prod.Email("ned@winterfell.example"))
}

func TestNamer_CheckCollisions(t *testing.T) {
	namer, err := NewNamer(models.EnvDev)
	require.NoError(t, err)

	t.Run("detects tenant slug collision", func(t *testing.T) {
		reg := &fixtures.Registry{
			Environment: models.EnvDev,
			Tenants: []fixtures.TenantDefinition{
				{Slug: "rivendell", Owner: fixtures.UserDefinition{Email: "a@x.example"}},
				{Slug: "rivendell", Owner: fixtures.UserDefinition{Email: "b@x.example"}},
			},
		}

		err := namer.CheckCollisions(reg)
		var collision *IdentityCollisionError
		require.ErrorAs(t, err, &collision)
		assert.Equal(t, "rivendell-dev", collision.Qualified)
	})

	t.Run("detects owner email collision across tenants", func(t *testing.T) {
		reg := &fixtures.Registry{
			Environment: models.EnvDev,
			Tenants: []fixtures.TenantDefinition{
				{Slug: "rivendell", Owner: fixtures.UserDefinition{Email: "shared@x.example"}},
				{Slug: "winterfell", Owner: fixtures.UserDefinition{Email: "shared@x.example"}},
			},
		}

		var collision *IdentityCollisionError
		require.ErrorAs(t, namer.CheckCollisions(reg), &collision)
	})

	t.Run("detects marketplace slug collision", func(t *testing.T) {
		reg := &fixtures.Registry{
			Environment: models.EnvDev,
			Tenants: []fixtures.TenantDefinition{
				{
					Slug:  "rivendell",
					Owner: fixtures.UserDefinition{Email: "a@x.example"},
					Orgs:  []fixtures.OrganizationDefinition{{Name: "A", MarketplaceSlug: "club"}},
				},
				{
					Slug:  "winterfell",
					Owner: fixtures.UserDefinition{Email: "b@x.example"},
					Orgs:  []fixtures.OrganizationDefinition{{Name: "B", MarketplaceSlug: "club"}},
				},
			},
		}

		var collision *IdentityCollisionError
		require.ErrorAs(t, namer.CheckCollisions(reg), &collision)
	})

	t.Run("accepts the shipped registries", func(t *testing.T) {
		for _, env := range models.ValidEnvironments {
			reg, err := fixtures.ForEnvironment(env)
			require.NoError(t, err)
			n, err := NewNamer(env)
			require.NoError(t, err)
			assert.NoError(t, n.CheckCollisions(reg))
		}
	})
}
