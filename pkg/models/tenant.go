// Package models contains domain types for fixture-seeder.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated customer-like partition within one
// environment. Slug is environment-qualified and globally unique within
// the environment.
type Tenant struct {
	ID          uuid.UUID          `json:"id"`
	Environment string             `json:"environment"`
	Slug        string             `json:"slug"`
	DisplayName string             `json:"display_name"`
	Theme       string             `json:"theme"`
	Marketplace MarketplacePolicy  `json:"marketplace"`
	Visibility  LineageVisibility  `json:"visibility"`
	Species     []string           `json:"species"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// MarketplacePolicy describes a tenant's marketplace exposure.
type MarketplacePolicy struct {
	PublicProgram        bool `json:"public_program"`
	ActiveListings       bool `json:"active_listings"`
	EnabledProgramCount  int  `json:"enabled_program_count"`
	SavedProgramCount    int  `json:"saved_program_count"`
}

// Environment constants. The two validation universes are fully disjoint:
// same component logic, disjoint registries, disjoint natural-key namespaces.
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// ValidEnvironments contains all valid environment values.
var ValidEnvironments = []string{EnvDev, EnvProd}

// IsValidEnvironment checks if the given environment is valid.
func IsValidEnvironment(env string) bool {
	for _, e := range ValidEnvironments {
		if e == env {
			return true
		}
	}
	return false
}
