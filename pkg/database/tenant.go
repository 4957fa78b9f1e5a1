package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TenantScope wraps a single connection pinned to one tenant's seeding run.
// The connection has app.current_tenant set so every write a repository
// issues through it is attributable to exactly one tenant; the pipeline
// never shares a scope between tenants.
type TenantScope struct {
	Conn *pgxpool.Conn
}

// Close resets the tenant pin and releases the connection to the pool.
// This MUST be called to prevent tenant context from leaking to the next run.
func (s *TenantScope) Close() {
	if s.Conn == nil {
		return
	}
	_, _ = s.Conn.Exec(context.Background(), "RESET app.current_tenant")
	s.Conn.Release()
}

// WithTenant acquires a connection and pins it to one tenant of one
// environment. The returned TenantScope MUST be closed with defer
// scope.Close().
func (db *DB) WithTenant(ctx context.Context, environment, tenantSlug string) (*TenantScope, error) {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	_, err = conn.Exec(ctx, "SELECT set_config('app.current_tenant', $1, false)", environment+"/"+tenantSlug)
	if err != nil {
		conn.Release()
		return nil, err
	}

	return &TenantScope{Conn: conn}, nil
}
