// Package fixtures holds the declarative Definition Registry: the
// human-authored tenant, animal, and breeding-plan definitions that the
// seeding pipeline materializes into database rows. Definitions reference
// relatives by name, never by database identity; resolution happens later in
// pkg/seeding. All definitions are immutable after construction.
package fixtures

import (
	"time"

	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// TenantDefinition declares one tenant and everything seeded under it.
// Slug is the base slug; the Identity Namer qualifies it per environment.
type TenantDefinition struct {
	Slug        string
	DisplayName string
	Theme       string
	Marketplace models.MarketplacePolicy
	// Visibility is the tenant's default lineage-visibility policy.
	// Per-animal Privacy overrides are overlaid on top of it field-by-field.
	Visibility models.LineageVisibility
	Species    []string
	Owner      UserDefinition
	Contacts   []ContactDefinition
	Orgs       []OrganizationDefinition
	Animals    []AnimalDefinition
	Plans      []BreedingPlanDefinition
	Listings   []ListingDefinition
}

// UserDefinition declares a seeded login account. Email is the base email;
// the Identity Namer qualifies it per environment. Password is a fixture
// credential, printed by the credentials command and bcrypt-hashed before
// persistence.
type UserDefinition struct {
	Email       string
	DisplayName string
	Role        string
	Password    string
}

// ContactDefinition is a flat per-tenant contact record.
type ContactDefinition struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// OrganizationDefinition is a flat per-tenant organization record.
type OrganizationDefinition struct {
	Name            string
	PublicProgram   bool
	MarketplaceSlug string
}

// AnimalDefinition declares one animal. SireRef and DamRef name other
// animals in the same tenant; generation 0 founders must not carry either.
// A referenced parent must be declared with a strictly lower generation.
type AnimalDefinition struct {
	Name         string
	Species      string
	Sex          string
	Breed        string
	Generation   int
	SireRef      string
	DamRef       string
	BirthYear    int
	Genetics     models.GeneticsPayload
	Titles       []models.Title
	Competitions []models.Competition
	// Privacy, when non-nil, overrides individual tenant visibility
	// defaults for this animal only.
	Privacy *VisibilityOverrides
}

// VisibilityOverrides is a partial lineage-visibility record. Nil fields
// inherit the tenant default; non-nil fields take precedence unconditionally.
type VisibilityOverrides struct {
	ShowAncestorNames         *bool
	ShowAncestorPhotos        *bool
	ShowDatesOfBirth          *bool
	ShowRegistryIDs           *bool
	ShowHealthTestResults     *bool
	ShowGeneticData           *bool
	ShowBreederNames          *bool
	AllowPedigreeInfoRequests *bool
	AllowBreederContact       *bool
	AllowCrossTenantMatching  *bool
}

// BreedingPlanDefinition declares a breeding plan. DamRef must resolve to a
// FEMALE animal and SireRef to a MALE animal in the same tenant.
type BreedingPlanDefinition struct {
	Name          string
	Species       string
	DamRef        string
	SireRef       string
	Status        string
	ExpectedCycle *time.Time
}

// ListingDefinition declares a marketplace listing.
type ListingDefinition struct {
	Title  string
	Type   string
	Status string
}

// flag returns a pointer to b, for authoring VisibilityOverrides literals.
func flag(b bool) *bool { return &b }

// cycle returns a pointer to an expected-cycle date.
func cycle(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
