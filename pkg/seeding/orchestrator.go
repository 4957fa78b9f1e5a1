package seeding

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/fixtures"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
	"github.com/pedigreehq/fixture-seeder/pkg/repositories"
)

// TenantScoper pins a database connection to one tenant of one environment.
// *database.DB satisfies it; tests substitute a stub.
type TenantScoper interface {
	WithTenant(ctx context.Context, environment, slug string) (*database.TenantScope, error)
}

// Repositories bundles the persistence boundary the orchestrator writes
// through. Every member is an interface so tests can seed in memory.
type Repositories struct {
	Tenants  repositories.TenantRepository
	Users    repositories.UserRepository
	Contacts repositories.ContactRepository
	Orgs     repositories.OrganizationRepository
	Animals  repositories.AnimalRepository
	Plans    repositories.BreedingPlanRepository
	Listings repositories.ListingRepository
}

// TenantResult is the outcome of one tenant's seeding run.
type TenantResult struct {
	Slug     string
	Animals  int
	Plans    int
	Listings int
	Err      error
}

// Report summarizes a full environment run: which tenants succeeded and
// which were aborted mid-run. Aborted tenants are safe to reseed - every
// write is an idempotent upsert, so replay resumes where the failure left
// rows behind.
type Report struct {
	Environment string
	Tenants     []TenantResult
}

// Failed reports whether any tenant run was aborted.
func (r *Report) Failed() bool {
	for _, t := range r.Tenants {
		if t.Err != nil {
			return true
		}
	}
	return false
}

// Orchestrator drives the seeding pipeline for every tenant of one
// environment. Tenants run sequentially and in strict isolation: no
// resolver, sequencer, or upsert call ever sees entities from more than one
// tenant.
type Orchestrator struct {
	scoper     TenantScoper
	repos      Repositories
	logger     *zap.Logger
	bcryptCost int
}

// NewOrchestrator creates an orchestrator writing through the given scoper
// and repositories.
func NewOrchestrator(scoper TenantScoper, repos Repositories, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		scoper:     scoper,
		repos:      repos,
		logger:     logger.Named("orchestrator"),
		bcryptCost: bcrypt.DefaultCost,
	}
}

// preparedTenant is one tenant's validated, ordered seeding plan.
type preparedTenant struct {
	def   *fixtures.TenantDefinition
	graph *ResolvedGraph
	seq   *Sequence
}

// Run seeds every tenant in the registry partition. Phase one validates the
// whole environment - identity collisions and definition errors abort the
// run before any write. Phase two seeds tenant by tenant; a persistence
// failure aborts only that tenant's remaining writes and the run continues
// with the next tenant.
func (o *Orchestrator) Run(ctx context.Context, reg *fixtures.Registry) (*Report, error) {
	namer, err := NewNamer(reg.Environment)
	if err != nil {
		return nil, err
	}
	if err := namer.CheckCollisions(reg); err != nil {
		return nil, err
	}

	prepared := make([]preparedTenant, 0, len(reg.Tenants))
	for i := range reg.Tenants {
		def := &reg.Tenants[i]
		graph, err := Resolve(def)
		if err != nil {
			return nil, err
		}
		seq, err := Linearize(graph)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, preparedTenant{def: def, graph: graph, seq: seq})
	}

	report := &Report{Environment: reg.Environment}
	for _, p := range prepared {
		slug := namer.TenantSlug(p.def.Slug)
		res := o.seedTenant(ctx, namer, p)
		if res.Err != nil {
			o.logger.Error("Tenant seeding aborted",
				zap.String("tenant", slug),
				zap.Error(res.Err))
		} else {
			o.logger.Info("Tenant seeded",
				zap.String("tenant", slug),
				zap.Int("animals", res.Animals),
				zap.Int("plans", res.Plans))
		}
		report.Tenants = append(report.Tenants, res)
	}

	return report, nil
}

// seedTenant persists one tenant's entities in dependency order: tenant row,
// owner user, contacts, organizations, animals (ancestor-first), breeding
// plans, listings. The first failed upsert aborts the remainder.
func (o *Orchestrator) seedTenant(ctx context.Context, namer Namer, p preparedTenant) TenantResult {
	env := namer.Environment()
	slug := namer.TenantSlug(p.def.Slug)
	res := TenantResult{Slug: slug}

	scope, err := o.scoper.WithTenant(ctx, env, slug)
	if err != nil {
		res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "tenant", Name: slug, Err: err}
		return res
	}
	defer scope.Close()
	ctx = database.SetTenantScope(ctx, scope)

	tenantID, err := o.repos.Tenants.Upsert(ctx, &models.Tenant{
		Environment: env,
		Slug:        slug,
		DisplayName: p.def.DisplayName,
		Theme:       p.def.Theme,
		Marketplace: p.def.Marketplace,
		Visibility:  p.def.Visibility,
		Species:     p.def.Species,
	})
	if err != nil {
		res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "tenant", Name: slug, Err: err}
		return res
	}

	if err := o.seedOwner(ctx, namer, tenantID, p.def); err != nil {
		res.Err = err
		return res
	}

	for i := range p.def.Contacts {
		c := &p.def.Contacts[i]
		if _, err := o.repos.Contacts.Upsert(ctx, &models.Contact{
			TenantID:    tenantID,
			Environment: env,
			Name:        c.Name,
			Email:       namer.Email(c.Email),
			Phone:       c.Phone,
			Notes:       c.Notes,
		}); err != nil {
			res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "contact", Name: c.Name, Err: err}
			return res
		}
	}

	for i := range p.def.Orgs {
		org := &p.def.Orgs[i]
		if _, err := o.repos.Orgs.Upsert(ctx, &models.Organization{
			TenantID:        tenantID,
			Environment:     env,
			Name:            org.Name,
			PublicProgram:   org.PublicProgram,
			MarketplaceSlug: namer.OrgSlug(org.MarketplaceSlug),
		}); err != nil {
			res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "organization", Name: org.Name, Err: err}
			return res
		}
	}

	// Ancestor-first: by the time an animal is written, the identities of
	// both of its resolved parents are already in handles.
	handles := make(map[int]uuid.UUID, len(p.graph.Animals))
	for _, idx := range p.seq.Animals {
		node := p.graph.Animals[idx]
		def := node.Def

		animal := &models.Animal{
			TenantID:     tenantID,
			Environment:  env,
			Name:         def.Name,
			Species:      def.Species,
			Sex:          def.Sex,
			Breed:        def.Breed,
			Generation:   def.Generation,
			BirthYear:    def.BirthYear,
			Genetics:     def.Genetics,
			Titles:       def.Titles,
			Competitions: def.Competitions,
			Visibility:   EffectiveVisibility(p.def.Visibility, def.Privacy),
		}
		if node.Sire != noParent {
			id := handles[node.Sire]
			animal.SireID = &id
		}
		if node.Dam != noParent {
			id := handles[node.Dam]
			animal.DamID = &id
		}

		id, err := o.repos.Animals.Upsert(ctx, animal)
		if err != nil {
			res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "animal", Name: def.Name, Err: err}
			return res
		}
		handles[idx] = id
		res.Animals++
	}

	for _, idx := range p.seq.Plans {
		plan := p.graph.Plans[idx]
		if _, err := o.repos.Plans.Upsert(ctx, &models.BreedingPlan{
			TenantID:      tenantID,
			Environment:   env,
			Name:          plan.Def.Name,
			Species:       plan.Def.Species,
			DamID:         handles[plan.Dam],
			SireID:        handles[plan.Sire],
			Status:        plan.Def.Status,
			ExpectedCycle: plan.Def.ExpectedCycle,
		}); err != nil {
			res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "breeding plan", Name: plan.Def.Name, Err: err}
			return res
		}
		res.Plans++
	}

	for i := range p.def.Listings {
		l := &p.def.Listings[i]
		if _, err := o.repos.Listings.Upsert(ctx, &models.MarketplaceListing{
			TenantID:    tenantID,
			Environment: env,
			Title:       l.Title,
			ListingType: l.Type,
			Status:      l.Status,
		}); err != nil {
			res.Err = &PersistenceError{Environment: env, Tenant: slug, EntityType: "listing", Name: l.Title, Err: err}
			return res
		}
		res.Listings++
	}

	return res
}

// seedOwner hashes the fixture credential and upserts the tenant's owner
// account.
func (o *Orchestrator) seedOwner(ctx context.Context, namer Namer, tenantID uuid.UUID, def *fixtures.TenantDefinition) error {
	env := namer.Environment()
	slug := namer.TenantSlug(def.Slug)

	hash, err := bcrypt.GenerateFromPassword([]byte(def.Owner.Password), o.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash owner password for %s: %w", slug, err)
	}

	if _, err := o.repos.Users.Upsert(ctx, &models.User{
		TenantID:     tenantID,
		Environment:  env,
		Email:        namer.Email(def.Owner.Email),
		DisplayName:  def.Owner.DisplayName,
		PasswordHash: string(hash),
		Role:         def.Owner.Role,
	}); err != nil {
		return &PersistenceError{Environment: env, Tenant: slug, EntityType: "user", Name: def.Owner.Email, Err: err}
	}

	return nil
}
