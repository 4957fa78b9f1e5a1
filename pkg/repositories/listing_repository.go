package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// ListingRepository defines upsert access to marketplace listings.
type ListingRepository interface {
	// Upsert creates or updates the listing keyed by
	// (environment, tenant_id, title) and returns its stable identity.
	Upsert(ctx context.Context, listing *models.MarketplaceListing) (uuid.UUID, error)
}

type listingRepository struct{}

// NewListingRepository creates a new marketplace-listing repository.
func NewListingRepository() ListingRepository {
	return &listingRepository{}
}

func (r *listingRepository) Upsert(ctx context.Context, listing *models.MarketplaceListing) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	query := `
		INSERT INTO marketplace_listings (id, tenant_id, environment, title, listing_type, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
		ON CONFLICT (environment, tenant_id, title) DO UPDATE SET
			listing_type = EXCLUDED.listing_type,
			status       = EXCLUDED.status,
			updated_at   = now()
		RETURNING id`

	var id uuid.UUID
	err := scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		listing.TenantID,
		listing.Environment,
		listing.Title,
		listing.ListingType,
		listing.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert listing %s: %w", listing.Title, err)
	}

	return id, nil
}

var _ ListingRepository = (*listingRepository)(nil)
