package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// ContactRepository defines upsert access to per-tenant contacts.
type ContactRepository interface {
	// Upsert creates or updates the contact keyed by
	// (environment, tenant_id, name) and returns its stable identity.
	Upsert(ctx context.Context, contact *models.Contact) (uuid.UUID, error)
}

type contactRepository struct{}

// NewContactRepository creates a new contact repository.
func NewContactRepository() ContactRepository {
	return &contactRepository{}
}

func (r *contactRepository) Upsert(ctx context.Context, contact *models.Contact) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	query := `
		INSERT INTO contacts (id, tenant_id, environment, name, email, phone, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (environment, tenant_id, name) DO UPDATE SET
			email      = EXCLUDED.email,
			phone      = EXCLUDED.phone,
			notes      = EXCLUDED.notes,
			updated_at = now()
		RETURNING id`

	var id uuid.UUID
	err := scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		contact.TenantID,
		contact.Environment,
		contact.Name,
		contact.Email,
		contact.Phone,
		contact.Notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert contact %s: %w", contact.Name, err)
	}

	return id, nil
}

var _ ContactRepository = (*contactRepository)(nil)
