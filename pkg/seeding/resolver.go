package seeding

import (
	"fmt"

	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// noParent marks an absent sire/dam edge in the resolved graph.
const noParent = -1

// ResolvedAnimal is an animal definition with its name references resolved
// to arena indices. Sire and Dam are indices into ResolvedGraph.Animals, or
// noParent when the definition carries no reference.
type ResolvedAnimal struct {
	Def  *fixtures.AnimalDefinition
	Sire int
	Dam  int
}

// ResolvedPlan is a breeding-plan definition with both parent references
// resolved to arena indices.
type ResolvedPlan struct {
	Def  *fixtures.BreedingPlanDefinition
	Dam  int
	Sire int
}

// ResolvedGraph is the immutable per-tenant reference graph. Nodes keep
// their declaration order; edges point from descendant to ancestor. The
// graph is purely in-memory and is discarded after the tenant's run.
type ResolvedGraph struct {
	Tenant  *fixtures.TenantDefinition
	Animals []ResolvedAnimal
	Plans   []ResolvedPlan
}

// Resolve builds the reference graph for a single tenant in two phases:
// first every animal definition is assigned a stable arena index, then each
// name reference is resolved to an index exactly once. All structural
// violations - duplicate names, dangling references, sex mismatches,
// generation-ordering violations, reference cycles - are DefinitionErrors.
func Resolve(tenant *fixtures.TenantDefinition) (*ResolvedGraph, error) {
	g := &ResolvedGraph{
		Tenant:  tenant,
		Animals: make([]ResolvedAnimal, len(tenant.Animals)),
	}

	byName := make(map[string]int, len(tenant.Animals))
	for i := range tenant.Animals {
		def := &tenant.Animals[i]
		if def.Name == "" {
			return nil, &DefinitionError{Tenant: tenant.Slug, Entity: "(unnamed animal)", Reason: "animal has no name"}
		}
		if prev, dup := byName[def.Name]; dup {
			return nil, &DefinitionError{
				Tenant: tenant.Slug, Entity: def.Name,
				Reason: fmt.Sprintf("duplicate animal name (first declared at position %d)", prev),
			}
		}
		byName[def.Name] = i
		g.Animals[i] = ResolvedAnimal{Def: def, Sire: noParent, Dam: noParent}
	}

	for i := range g.Animals {
		def := g.Animals[i].Def
		if def.Generation < 0 {
			return nil, &DefinitionError{Tenant: tenant.Slug, Entity: def.Name, Reason: "negative generation"}
		}
		if !models.IsValidSex(def.Sex) {
			return nil, &DefinitionError{Tenant: tenant.Slug, Entity: def.Name, Reason: "invalid sex " + def.Sex}
		}
		if def.Generation == 0 && (def.SireRef != "" || def.DamRef != "") {
			return nil, &DefinitionError{Tenant: tenant.Slug, Entity: def.Name,
				Reason: "founder (generation 0) must not reference ancestors"}
		}

		if def.SireRef != "" {
			idx, err := resolveParent(tenant, byName, def, def.SireRef, models.SexMale, "sire")
			if err != nil {
				return nil, err
			}
			g.Animals[i].Sire = idx
		}
		if def.DamRef != "" {
			idx, err := resolveParent(tenant, byName, def, def.DamRef, models.SexFemale, "dam")
			if err != nil {
				return nil, err
			}
			g.Animals[i].Dam = idx
		}
	}

	if err := g.checkCycles(); err != nil {
		return nil, err
	}

	for i := range tenant.Plans {
		plan := &tenant.Plans[i]
		rp, err := resolvePlan(tenant, byName, plan)
		if err != nil {
			return nil, err
		}
		g.Plans = append(g.Plans, rp)
	}

	return g, nil
}

// resolveParent resolves one sire/dam reference, validating existence, sex,
// and strict generation monotonicity against the referencing animal.
func resolveParent(tenant *fixtures.TenantDefinition, byName map[string]int, child *fixtures.AnimalDefinition, ref, wantSex, role string) (int, error) {
	idx, ok := byName[ref]
	if !ok {
		return 0, &DefinitionError{Tenant: tenant.Slug, Entity: child.Name, Reference: ref,
			Reason: role + " does not resolve to any animal in this tenant"}
	}

	parent := &tenant.Animals[idx]
	if parent.Sex != wantSex {
		return 0, &DefinitionError{Tenant: tenant.Slug, Entity: child.Name, Reference: ref,
			Reason: role + " resolves to an animal with sex " + parent.Sex}
	}
	if parent.Generation >= child.Generation {
		return 0, &DefinitionError{Tenant: tenant.Slug, Entity: child.Name, Reference: ref,
			Reason: fmt.Sprintf("%s generation %d is not lower than referencing generation %d",
				role, parent.Generation, child.Generation)}
	}
	return idx, nil
}

// resolvePlan resolves a breeding plan's dam/sire references with the same
// existence and sex rules as animal ancestry.
func resolvePlan(tenant *fixtures.TenantDefinition, byName map[string]int, plan *fixtures.BreedingPlanDefinition) (ResolvedPlan, error) {
	if !models.IsValidPlanStatus(plan.Status) {
		return ResolvedPlan{}, &DefinitionError{Tenant: tenant.Slug, Entity: plan.Name,
			Reason: "invalid plan status " + plan.Status}
	}

	dam, ok := byName[plan.DamRef]
	if !ok {
		return ResolvedPlan{}, &DefinitionError{Tenant: tenant.Slug, Entity: plan.Name, Reference: plan.DamRef,
			Reason: "dam does not resolve to any animal in this tenant"}
	}
	if got := tenant.Animals[dam].Sex; got != models.SexFemale {
		return ResolvedPlan{}, &DefinitionError{Tenant: tenant.Slug, Entity: plan.Name, Reference: plan.DamRef,
			Reason: "dam resolves to an animal with sex " + got}
	}

	sire, ok := byName[plan.SireRef]
	if !ok {
		return ResolvedPlan{}, &DefinitionError{Tenant: tenant.Slug, Entity: plan.Name, Reference: plan.SireRef,
			Reason: "sire does not resolve to any animal in this tenant"}
	}
	if got := tenant.Animals[sire].Sex; got != models.SexMale {
		return ResolvedPlan{}, &DefinitionError{Tenant: tenant.Slug, Entity: plan.Name, Reference: plan.SireRef,
			Reason: "sire resolves to an animal with sex " + got}
	}

	return ResolvedPlan{Def: plan, Dam: dam, Sire: sire}, nil
}

// checkCycles rejects self-consistent but impossible pedigrees (A's sire is
// B and B's sire is A, transitively). Generation monotonicity already makes
// cycles unrepresentable, but the check is kept independent of that
// validation so either catches authoring mistakes the other misses.
func (g *ResolvedGraph) checkCycles() error {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make([]int, len(g.Animals))

	var visit func(i int) *DefinitionError
	visit = func(i int) *DefinitionError {
		switch state[i] {
		case done:
			return nil
		case visiting:
			return &DefinitionError{Tenant: g.Tenant.Slug, Entity: g.Animals[i].Def.Name,
				Reason: "reference cycle in pedigree"}
		}
		state[i] = visiting
		for _, parent := range []int{g.Animals[i].Sire, g.Animals[i].Dam} {
			if parent == noParent {
				continue
			}
			if err := visit(parent); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}

	for i := range g.Animals {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}
