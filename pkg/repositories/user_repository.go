package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pedigreehq/fixture-seeder/pkg/apperrors"
	"github.com/pedigreehq/fixture-seeder/pkg/database"
	"github.com/pedigreehq/fixture-seeder/pkg/models"
)

// UserRepository defines upsert access to seeded user accounts.
type UserRepository interface {
	// Upsert creates or updates the user keyed by (environment, email)
	// and returns its stable identity.
	Upsert(ctx context.Context, user *models.User) (uuid.UUID, error)
}

type userRepository struct{}

// NewUserRepository creates a new user repository.
func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) (uuid.UUID, error) {
	scope, ok := database.GetTenantScope(ctx)
	if !ok {
		return uuid.Nil, apperrors.ErrNoTenantScope
	}

	query := `
		INSERT INTO users (id, tenant_id, environment, email, display_name, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT (environment, email) DO UPDATE SET
			tenant_id     = EXCLUDED.tenant_id,
			display_name  = EXCLUDED.display_name,
			password_hash = EXCLUDED.password_hash,
			role          = EXCLUDED.role,
			updated_at    = now()
		RETURNING id`

	var id uuid.UUID
	err := scope.Conn.QueryRow(ctx, query,
		uuid.New(),
		user.TenantID,
		user.Environment,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.Role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert user %s: %w", user.Email, err)
	}

	return id, nil
}

var _ UserRepository = (*userRepository)(nil)
