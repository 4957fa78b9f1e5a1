package models

import (
	"time"

	"github.com/google/uuid"
)

// MarketplaceListing represents a persisted marketplace listing. Listings
// belong to a tenant and have no referential dependency on animals.
type MarketplaceListing struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Environment string    `json:"environment"`
	Title       string    `json:"title"`
	ListingType string    `json:"listing_type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Listing type constants.
const (
	ListingBreedingProgram = "BREEDING_PROGRAM"
	ListingStudService     = "STUD_SERVICE"
)

// Listing status constants.
const (
	ListingStatusDraft  = "DRAFT"
	ListingStatusActive = "ACTIVE"
	ListingStatusPaused = "PAUSED"
)

// IsValidListingType checks if the given listing type is valid.
func IsValidListingType(t string) bool {
	return t == ListingBreedingProgram || t == ListingStudService
}

// IsValidListingStatus checks if the given listing status is valid.
func IsValidListingStatus(s string) bool {
	return s == ListingStatusDraft || s == ListingStatusActive || s == ListingStatusPaused
}
