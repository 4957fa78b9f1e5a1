package seeding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

func mustResolve(t *testing.T, def *fixtures.TenantDefinition) *ResolvedGraph {
	t.Helper()
	g, err := Resolve(def)
	require.NoError(t, err)
	return g
}

func TestLinearize_AncestorsBeforeDescendants(t *testing.T) {
	g := mustResolve(t, tenantWith([]fixtures.AnimalDefinition{
		animal("Huan the Great", models.SexMale, 0, "", ""),
		animal("Luthien Tinuviel", models.SexFemale, 0, "", ""),
		animal("Carcharoth", models.SexMale, 1, "Huan the Great", "Luthien Tinuviel"),
		animal("Nimloth's Grace", models.SexFemale, 1, "Huan the Great", ""),
		animal("Beren's Companion", models.SexMale, 2, "Carcharoth", "Nimloth's Grace"),
	}, nil))

	seq, err := Linearize(g)
	require.NoError(t, err)
	require.Len(t, seq.Animals, len(g.Animals))

	pos := make(map[int]int, len(seq.Animals))
	for order, idx := range seq.Animals {
		pos[idx] = order
	}
	for i, a := range g.Animals {
		if a.Sire != noParent {
			assert.Less(t, pos[a.Sire], pos[i], "sire of %s must precede it", a.Def.Name)
		}
		if a.Dam != noParent {
			assert.Less(t, pos[a.Dam], pos[i], "dam of %s must precede it", a.Def.Name)
		}
	}
}

func TestLinearize_OrderFollowsEdgesNotDeclaration(t *testing.T) {
	// Descendant declared first; the edges still force the founders ahead
	// of it.
	g := mustResolve(t, tenantWith([]fixtures.AnimalDefinition{
		animal("Carcharoth", models.SexMale, 1, "Huan the Great", "Luthien Tinuviel"),
		animal("Huan the Great", models.SexMale, 0, "", ""),
		animal("Luthien Tinuviel", models.SexFemale, 0, "", ""),
	}, nil))

	seq, err := Linearize(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, seq.Animals)
}

func TestLinearize_TieBreakIsGenerationThenDeclaration(t *testing.T) {
	// All four are founders, so everything is ready at once. The lower
	// generation wins; within a generation, declaration order wins.
	g := mustResolve(t, tenantWith([]fixtures.AnimalDefinition{
		animal("B", models.SexMale, 1, "", ""),
		animal("A", models.SexFemale, 0, "", ""),
		animal("D", models.SexMale, 1, "", ""),
		animal("C", models.SexFemale, 0, "", ""),
	}, nil))

	seq, err := Linearize(g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, seq.Animals)
}

func TestLinearize_IsDeterministic(t *testing.T) {
	reg, err := fixtures.ForEnvironment(models.EnvDev)
	require.NoError(t, err)

	for i := range reg.Tenants {
		def := &reg.Tenants[i]
		g := mustResolve(t, def)

		first, err := Linearize(g)
		require.NoError(t, err)
		for run := 0; run < 5; run++ {
			again, err := Linearize(g)
			require.NoError(t, err)
			assert.Equal(t, first.Animals, again.Animals, "tenant %s", def.Slug)
			assert.Equal(t, first.Plans, again.Plans, "tenant %s", def.Slug)
		}
	}
}

func TestLinearize_PlansFollowAllAnimals(t *testing.T) {
	g := mustResolve(t, tenantWith(
		[]fixtures.AnimalDefinition{
			animal("Huan the Great", models.SexMale, 0, "", ""),
			animal("Luthien Tinuviel", models.SexFemale, 0, "", ""),
		},
		[]fixtures.BreedingPlanDefinition{
			{Name: "Spring Litter", Species: "dog", DamRef: "Luthien Tinuviel", SireRef: "Huan the Great", Status: models.PlanStatusPlanning},
			{Name: "Autumn Litter", Species: "dog", DamRef: "Luthien Tinuviel", SireRef: "Huan the Great", Status: models.PlanStatusCommitted},
		},
	))

	seq, err := Linearize(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, seq.Plans)
}

func TestLinearize_InconsistentGraphFails(t *testing.T) {
	// A hand-built cyclic graph cannot be ordered; Linearize must refuse
	// rather than emit a partial sequence.
	def := tenantWith([]fixtures.AnimalDefinition{
		animal("A", models.SexMale, 1, "", ""),
		animal("B", models.SexMale, 2, "", ""),
	}, nil)
	g := &ResolvedGraph{
		Tenant: def,
		Animals: []ResolvedAnimal{
			{Def: &def.Animals[0], Sire: 1, Dam: noParent},
			{Def: &def.Animals[1], Sire: 0, Dam: noParent},
		},
	}

	_, err := Linearize(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "structural error")
}
