package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a flat per-tenant address-book record with no references into
// the animal graph.
type Contact struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Environment string    `json:"environment"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Organization is a flat per-tenant record (kennel club, registry, breed
// association). It optionally participates in the public marketplace.
type Organization struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	Environment     string    `json:"environment"`
	Name            string    `json:"name"`
	PublicProgram   bool      `json:"public_program"`
	MarketplaceSlug string    `json:"marketplace_slug,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
